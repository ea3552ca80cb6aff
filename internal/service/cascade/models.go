package cascade

import "github.com/m04kA/SMC-BookingFlowService/internal/domain"

// Params параметры движка для одной сессии подбора
// Флаг авторизации и скидка передаются явно, а не читаются из
// глобального состояния - движок тестируется без окружения
type Params struct {
	Authenticated bool
	Discount      float64
}

// OptionsView снимок набора опций поля
type OptionsView struct {
	Values []string
	Loaded bool
}

// Snapshot консистентный снимок состояния сессии на момент чтения
// Цена пересчитывается при каждом снимке и не кешируется
type Snapshot struct {
	Selection domain.Selection

	DateOptions OptionsView
	SlotOptions OptionsView

	LoadingDates bool
	LoadingSlots bool

	// Фотографы, отфильтрованные по выбранной услуге
	// Пустой список до выбора услуги
	Photographers []domain.Photographer

	FieldErrors map[string]string
	Notice      string

	Quote domain.PriceQuote
}
