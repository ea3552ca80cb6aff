package domain

// OptionSet набор допустимых токенов для поля, подтвержденный сервисом
// доступности для текущей комбинации вышестоящих полей
// Generation - поколение запроса, которым набор был получен
type OptionSet struct {
	Values     []string
	Generation uint64
	Loaded     bool
}

// Contains проверяет принадлежность токена набору
func (o *OptionSet) Contains(v string) bool {
	for _, val := range o.Values {
		if val == v {
			return true
		}
	}
	return false
}

// IsEmpty возвращает true, если набор загружен и пуст
// Пустой набор - не ошибка: "нет доступных дат/слотов" валидное состояние
func (o *OptionSet) IsEmpty() bool {
	return o.Loaded && len(o.Values) == 0
}

// Clear сбрасывает набор в незагруженное состояние
func (o *OptionSet) Clear() {
	o.Values = nil
	o.Loaded = false
	o.Generation = 0
}
