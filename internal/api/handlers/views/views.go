// Package views содержит общие HTTP модели сессии и бронирования,
// используемые несколькими обработчиками
package views

import (
	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
)

// SelectionView текущий выбор сессии
type SelectionView struct {
	ServiceID            *int64  `json:"serviceId"`
	PhotographerID       *int64  `json:"photographerId"`
	Date                 *string `json:"date"`
	StartTime            *string `json:"startTime"`
	AdditionalServiceIDs []int64 `json:"additionalServiceIds"`
	GuestFirstName       string  `json:"guestFirstName,omitempty"`
	GuestLastName        string  `json:"guestLastName,omitempty"`
	GuestEmail           string  `json:"guestEmail,omitempty"`
}

// OptionsView набор допустимых значений поля
type OptionsView struct {
	Values []string `json:"values"`
	Loaded bool     `json:"loaded"`
}

// ServiceView услуга каталога
type ServiceView struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// PhotographerView фотограф, доступный для выбранной услуги
type PhotographerView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AdditionalServiceView дополнительная услуга каталога
type AdditionalServiceView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// PriceView расчет цены текущего выбора
type PriceView struct {
	BasePrice       float64 `json:"basePrice"`
	AdditionalPrice float64 `json:"additionalPrice"`
	GrossPrice      float64 `json:"grossPrice"`
	DiscountPercent float64 `json:"discountPercent"`
	DiscountAmount  float64 `json:"discountAmount"`
	NetPrice        float64 `json:"netPrice"`
}

// SessionResponse снимок сессии подбора
type SessionResponse struct {
	ID            string `json:"id"`
	Mode          string `json:"mode"`
	BookingID     *int64 `json:"bookingId,omitempty"`
	Authenticated bool   `json:"authenticated"`

	Selection SelectionView `json:"selection"`

	AvailableDates OptionsView `json:"availableDates"`
	AvailableSlots OptionsView `json:"availableSlots"`
	LoadingDates   bool        `json:"loadingDates"`
	LoadingSlots   bool        `json:"loadingSlots"`

	Services           []ServiceView           `json:"services"`
	Photographers      []PhotographerView      `json:"photographers"`
	AdditionalServices []AdditionalServiceView `json:"additionalServices"`

	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Notice      string            `json:"notice,omitempty"`

	Price PriceView `json:"price"`
}

// BookingResponse бронирование, как его вернул студийный сервис
type BookingResponse struct {
	ID                   int64   `json:"id"`
	ServiceID            int64   `json:"serviceId"`
	PhotographerID       int64   `json:"photographerId"`
	Date                 string  `json:"date"`
	StartTime            string  `json:"startTime"`
	EndTime              *string `json:"endTime,omitempty"`
	Status               string  `json:"status"`
	Price                float64 `json:"price"`
	AdditionalServiceIDs []int64 `json:"additionalServiceIds"`
	GuestFirstName       *string `json:"guestFirstName,omitempty"`
	GuestLastName        *string `json:"guestLastName,omitempty"`
	GuestEmail           *string `json:"guestEmail,omitempty"`
}

// FromSessionView конвертирует снимок сессии в HTTP модель
func FromSessionView(view *flow.SessionView) *SessionResponse {
	snap := view.Snapshot

	resp := &SessionResponse{
		ID:            view.ID,
		Mode:          string(view.Mode),
		BookingID:     idPtr(view.BookingID),
		Authenticated: view.Authenticated,
		Selection: SelectionView{
			ServiceID:            idPtr(snap.Selection.ServiceID),
			PhotographerID:       idPtr(snap.Selection.PhotographerID),
			Date:                 snap.Selection.Date,
			StartTime:            snap.Selection.StartTime,
			AdditionalServiceIDs: ids(snap.Selection.AdditionalServiceIDs),
			GuestFirstName:       snap.Selection.GuestFirstName,
			GuestLastName:        snap.Selection.GuestLastName,
			GuestEmail:           snap.Selection.GuestEmail,
		},
		AvailableDates: OptionsView{Values: values(snap.DateOptions.Values), Loaded: snap.DateOptions.Loaded},
		AvailableSlots: OptionsView{Values: values(snap.SlotOptions.Values), Loaded: snap.SlotOptions.Loaded},
		LoadingDates:   snap.LoadingDates,
		LoadingSlots:   snap.LoadingSlots,
		FieldErrors:    snap.FieldErrors,
		Notice:         snap.Notice,
		Price: PriceView{
			BasePrice:       snap.Quote.BasePrice,
			AdditionalPrice: snap.Quote.AdditionalPrice,
			GrossPrice:      snap.Quote.GrossPrice,
			DiscountPercent: snap.Quote.DiscountPercent,
			DiscountAmount:  snap.Quote.DiscountAmount,
			NetPrice:        snap.Quote.NetPrice,
		},
	}

	resp.Services = make([]ServiceView, 0, len(view.Catalog.Services))
	for _, s := range view.Catalog.Services {
		resp.Services = append(resp.Services, ServiceView{
			ID:              int64(s.ID),
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	resp.Photographers = make([]PhotographerView, 0, len(snap.Photographers))
	for _, p := range snap.Photographers {
		resp.Photographers = append(resp.Photographers, PhotographerView{
			ID:        int64(p.ID),
			FirstName: p.FirstName,
			LastName:  p.LastName,
		})
	}

	resp.AdditionalServices = make([]AdditionalServiceView, 0, len(view.Catalog.AdditionalServices))
	for _, a := range view.Catalog.AdditionalServices {
		resp.AdditionalServices = append(resp.AdditionalServices, AdditionalServiceView{
			ID:          int64(a.ID),
			Name:        a.Name,
			Description: a.Description,
			Price:       a.Price,
		})
	}

	return resp
}

// FromBookingRecord конвертирует бронирование в HTTP модель
func FromBookingRecord(rec *domain.BookingRecord) *BookingResponse {
	return &BookingResponse{
		ID:                   int64(rec.ID),
		ServiceID:            int64(rec.ServiceID),
		PhotographerID:       int64(rec.PhotographerID),
		Date:                 rec.Date,
		StartTime:            rec.StartTime,
		EndTime:              rec.EndTime,
		Status:               rec.Status,
		Price:                rec.Price,
		AdditionalServiceIDs: ids(rec.AdditionalServiceIDs),
		GuestFirstName:       rec.GuestFirstName,
		GuestLastName:        rec.GuestLastName,
		GuestEmail:           rec.GuestEmail,
	}
}

func idPtr(id *domain.ID) *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}

func ids(in []domain.ID) []int64 {
	out := make([]int64, 0, len(in))
	for _, id := range in {
		out = append(out, int64(id))
	}
	return out
}

func values(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
