package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/pkg/ptr"
)

func TestCalculate_NoDiscount(t *testing.T) {
	quote := Calculate(500, nil, 0, true)

	assert.Equal(t, 500.0, quote.GrossPrice)
	assert.Equal(t, 500.0, quote.NetPrice)
	assert.Equal(t, 0.0, quote.DiscountAmount)
}

func TestCalculate_DiscountOnCombinedTotal(t *testing.T) {
	// Услуга 500 + допуслуга 100, скидка 10%, авторизован:
	// gross = 600, net = 540
	quote := Calculate(500, []float64{100}, 10, true)

	assert.Equal(t, 600.0, quote.GrossPrice)
	assert.Equal(t, 100.0, quote.AdditionalPrice)
	assert.Equal(t, 60.0, quote.DiscountAmount)
	assert.InDelta(t, 540.0, quote.NetPrice, 0.001)
}

func TestCalculate_UnauthenticatedIgnoresDiscount(t *testing.T) {
	quote := Calculate(500, []float64{100}, 10, false)

	assert.Equal(t, 600.0, quote.GrossPrice)
	assert.Equal(t, 600.0, quote.NetPrice)
	assert.Equal(t, 0.0, quote.DiscountPercent)
}

func TestCalculate_FullDiscount(t *testing.T) {
	quote := Calculate(200, nil, 100, true)

	assert.Equal(t, 0.0, quote.NetPrice)
}

func TestCalculate_DiscountClamped(t *testing.T) {
	over := Calculate(100, nil, 150, true)
	assert.Equal(t, 0.0, over.NetPrice)

	under := Calculate(100, nil, -5, true)
	assert.Equal(t, 100.0, under.NetPrice)
}

func TestCalculate_MultipleAdditionalServices(t *testing.T) {
	quote := Calculate(1000, []float64{150, 250.50}, 5, true)

	assert.InDelta(t, 1400.50, quote.GrossPrice, 0.001)
	assert.InDelta(t, 1330.475, quote.NetPrice, 0.001)
}

func TestQuoteSelection_FromCatalog(t *testing.T) {
	catalog := &domain.Catalog{
		Services: []domain.Service{
			{ID: 1, Name: "Фотосесія в студії", Price: 500},
		},
		AdditionalServices: []domain.AdditionalService{
			{ID: 10, Name: "Ретуш", Price: 100},
			{ID: 11, Name: "Друк", Price: 50},
		},
	}
	selection := &domain.Selection{
		ServiceID:            ptr.Ptr(domain.ID(1)),
		AdditionalServiceIDs: []domain.ID{10},
	}

	quote := QuoteSelection(catalog, selection, 10, true)

	assert.Equal(t, 500.0, quote.BasePrice)
	assert.Equal(t, 100.0, quote.AdditionalPrice)
	assert.Equal(t, 600.0, quote.GrossPrice)
	assert.InDelta(t, 540.0, quote.NetPrice, 0.001)
}

func TestQuoteSelection_EmptySelection(t *testing.T) {
	catalog := &domain.Catalog{}
	selection := &domain.Selection{}

	quote := QuoteSelection(catalog, selection, 10, true)

	assert.Equal(t, 0.0, quote.GrossPrice)
	assert.Equal(t, 0.0, quote.NetPrice)
}

func TestQuoteSelection_UnknownAdditionalServiceIgnored(t *testing.T) {
	catalog := &domain.Catalog{
		Services: []domain.Service{{ID: 1, Price: 300}},
	}
	selection := &domain.Selection{
		ServiceID:            ptr.Ptr(domain.ID(1)),
		AdditionalServiceIDs: []domain.ID{99},
	}

	quote := QuoteSelection(catalog, selection, 0, true)

	assert.Equal(t, 300.0, quote.GrossPrice)
}
