package pricing

import "github.com/m04kA/SMC-BookingFlowService/internal/domain"

// Calculate считает цену выбора
// Gross = базовая цена + сумма дополнительных услуг
// Net = Gross со скидкой, примененной к общей сумме (не построчно,
// чтобы не накапливать ошибку округления по дополнительным услугам)
// Скидка действует только для авторизованного пользователя
//
// Чистая функция без состояния: пересчитывается на каждое изменение
// выбора и никогда не кешируется
func Calculate(basePrice float64, additionalPrices []float64, discountPercent float64, authenticated bool) domain.PriceQuote {
	additionalPrice := 0.0
	for _, p := range additionalPrices {
		additionalPrice += p
	}

	gross := basePrice + additionalPrice

	discount := clampDiscount(discountPercent)
	if !authenticated {
		discount = 0
	}

	discountAmount := gross * discount / 100

	return domain.PriceQuote{
		BasePrice:       basePrice,
		AdditionalPrice: additionalPrice,
		GrossPrice:      gross,
		DiscountPercent: discount,
		DiscountAmount:  discountAmount,
		NetPrice:        gross - discountAmount,
	}
}

// QuoteSelection считает цену для текущего выбора по каталогу
// Невыбранная услуга дает нулевую котировку
func QuoteSelection(catalog *domain.Catalog, selection *domain.Selection, discountPercent float64, authenticated bool) domain.PriceQuote {
	basePrice := 0.0
	if selection.ServiceID != nil {
		if svc := catalog.ServiceByID(*selection.ServiceID); svc != nil {
			basePrice = svc.Price
		}
	}

	additionalPrices := make([]float64, 0, len(selection.AdditionalServiceIDs))
	for _, id := range selection.AdditionalServiceIDs {
		if ads := catalog.AdditionalServiceByID(id); ads != nil {
			additionalPrices = append(additionalPrices, ads.Price)
		}
	}

	return Calculate(basePrice, additionalPrices, discountPercent, authenticated)
}

// clampDiscount ограничивает скидку диапазоном [0, 100]
// Значение профиля приходит от внешнего сервиса и не перепроверяется там
func clampDiscount(d float64) float64 {
	if d < 0 {
		return 0
	}
	if d > 100 {
		return 100
	}
	return d
}
