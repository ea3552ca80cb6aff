package guard

import "sync"

// Guard счетчик поколений запросов по ключам каскадов
// Гарантирует, что к состоянию применяется только ответ самого свежего
// запроса: ответ с устаревшим поколением отбрасывается молча
//
// Ключи независимы: инвалидация каскада дат не трогает каскад слотов
type Guard struct {
	mu   sync.Mutex
	gens map[string]uint64
}

// New создает новый guard
func New() *Guard {
	return &Guard{
		gens: make(map[string]uint64),
	}
}

// Begin начинает новый запрос для ключа и возвращает его поколение
// Все ранее выданные поколения этого ключа становятся устаревшими
func (g *Guard) Begin(fieldKey string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gens[fieldKey]++
	return g.gens[fieldKey]
}

// IsCurrent проверяет, что поколение все еще актуально для ключа
// Вызывается непосредственно перед применением ответа
func (g *Guard) IsCurrent(fieldKey string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[fieldKey] == gen
}

// Invalidate делает устаревшими все выданные поколения ключа,
// не начиная нового запроса
// Используется, когда смена вышестоящего поля отменяет запрос в полете,
// но новый запрос не нужен (недостаточно данных для него)
func (g *Guard) Invalidate(fieldKey string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gens[fieldKey]++
}
