package domain

// ID канонический тип идентификатора сущностей студийного сервиса
// Сравнивается только по значению, без приведения к строке
type ID int64

// Имена полей выбора
// Используются как ключи в ошибках валидации и в ключах guard'а
const (
	FieldService        = "service"
	FieldPhotographer   = "photographer"
	FieldDate           = "date"
	FieldStartTime      = "start_time"
	FieldGuestFirstName = "guest_first_name"
	FieldGuestLastName  = "guest_last_name"
	FieldGuestEmail     = "guest_email"
)

// Ключи каскадов для guard'а устаревших ответов
// Каскады дат и слотов защищаются независимо: смена фотографа отменяет
// запрос дат, не обязательно порождая новый
const (
	CascadeDates = "dates"
	CascadeSlots = "slots"
)

// Форматы токенов даты и времени на проводе
// Движок не интерпретирует токены, форматы нужны только для локальной
// валидации "дата не в прошлом" при отправке
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Статусы бронирования студийного сервиса
// Передаются как есть, движок их не интерпретирует
const (
	StatusPending         = "Очікує підтвердження"
	StatusCancelledByUser = "Скасовано користувачем"
)

// FlowMode режим работы сессии подбора
type FlowMode string

const (
	ModeCreate FlowMode = "create"
	ModeEdit   FlowMode = "edit"
)

// IsValid проверяет, что режим сессии известен
func (m FlowMode) IsValid() bool {
	return m == ModeCreate || m == ModeEdit
}
