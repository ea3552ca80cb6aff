package domain

// BookingRecord бронирование, как его вернул студийный сервис
// Создается и обновляется только на стороне коллаборатора,
// движок отображает его без доработки
type BookingRecord struct {
	ID             ID
	UserID         *ID
	ServiceID      ID
	PhotographerID ID
	Date           string
	StartTime      string
	EndTime        *string
	Status         string
	Price          float64

	AdditionalServiceIDs []ID

	GuestFirstName *string
	GuestLastName  *string
	GuestEmail     *string
}

// PriceQuote расчет цены для текущего выбора
// Gross - базовая цена плюс дополнительные услуги,
// Net - после применения скидки к общей сумме
type PriceQuote struct {
	BasePrice       float64
	AdditionalPrice float64
	GrossPrice      float64
	DiscountPercent float64
	DiscountAmount  float64
	NetPrice        float64
}
