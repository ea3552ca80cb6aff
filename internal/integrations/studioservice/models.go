package studioservice

import (
	"strconv"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
)

// AvailableDatesResponse ответ сервиса доступности со списком дат
type AvailableDatesResponse struct {
	AvailableDates []string `json:"available_dates"`
}

// AvailableSlotsResponse ответ сервиса доступности со списком слотов
type AvailableSlotsResponse struct {
	Slots []string `json:"slots"`
}

// ServiceModel услуга из каталога студийного сервиса
// Цена приходит строкой (DecimalField на стороне сервиса)
type ServiceModel struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Duration int    `json:"duration"`
}

// PhotographerUser вложенные данные пользователя фотографа
type PhotographerUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
}

// PhotographerModel фотограф из каталога студийного сервиса
type PhotographerModel struct {
	ID       int64            `json:"id"`
	User     PhotographerUser `json:"user"`
	Services []ServiceModel   `json:"services"`
}

// AdditionalServiceModel дополнительная услуга из каталога
type AdditionalServiceModel struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// CreateBookingRequest payload создания бронирования
// Гостевые поля передаются только для неавторизованного пользователя
type CreateBookingRequest struct {
	ServiceID            domain.ID   `json:"service_id"`
	PhotographerID       domain.ID   `json:"photographer_id"`
	Date                 string      `json:"date"`
	StartTime            string      `json:"start_time"`
	AdditionalServiceIDs []domain.ID `json:"additional_service_ids,omitempty"`
	GuestFirstName       *string     `json:"guest_first_name,omitempty"`
	GuestLastName        *string     `json:"guest_last_name,omitempty"`
	GuestEmail           *string     `json:"guest_email,omitempty"`
}

// UpdateBookingRequest частичный payload обновления бронирования
// AdditionalServiceIDs отправляется всегда (даже пустым), иначе
// на стороне сервиса нельзя снять все дополнительные услуги
type UpdateBookingRequest struct {
	ServiceID            *domain.ID  `json:"service_id,omitempty"`
	PhotographerID       *domain.ID  `json:"photographer_id,omitempty"`
	Date                 *string     `json:"date,omitempty"`
	StartTime            *string     `json:"start_time,omitempty"`
	AdditionalServiceIDs []domain.ID `json:"additional_service_ids"`
	Status               *string     `json:"status,omitempty"`
}

// StatusUpdateRequest payload смены статуса бронирования
// Остальные поля бронирования не затрагиваются
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// BookingModel бронирование в ответе студийного сервиса
type BookingModel struct {
	ID                     int64                    `json:"id"`
	User                   *PhotographerUser        `json:"user"`
	ServiceObj             *ServiceModel            `json:"service_obj"`
	Photographer           *PhotographerModel       `json:"photographer"`
	Date                   string                   `json:"date"`
	StartTime              string                   `json:"start_time"`
	EndTime                *string                  `json:"end_time"`
	Status                 string                   `json:"status"`
	Price                  string                   `json:"price"`
	AdditionalServicesData []AdditionalServiceModel `json:"additional_services_data"`
	GuestFirstName         *string                  `json:"guest_first_name"`
	GuestLastName          *string                  `json:"guest_last_name"`
	GuestEmail             *string                  `json:"guest_email"`
}

// ErrorResponse тело ошибки студийного сервиса
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// parsePrice парсит цену из строкового представления
// Некорректная строка трактуется как 0, сервис-источник отвечает за формат
func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ToDomain конвертирует услугу в доменную модель
func (m *ServiceModel) ToDomain() domain.Service {
	return domain.Service{
		ID:              domain.ID(m.ID),
		Name:            m.Name,
		Price:           parsePrice(m.Price),
		DurationMinutes: m.Duration,
	}
}

// ToDomain конвертирует фотографа в доменную модель
func (m *PhotographerModel) ToDomain() domain.Photographer {
	serviceIDs := make([]domain.ID, 0, len(m.Services))
	for _, s := range m.Services {
		serviceIDs = append(serviceIDs, domain.ID(s.ID))
	}
	return domain.Photographer{
		ID:         domain.ID(m.ID),
		FirstName:  m.User.FirstName,
		LastName:   m.User.LastName,
		IsActive:   m.User.IsActive,
		ServiceIDs: serviceIDs,
	}
}

// ToDomain конвертирует дополнительную услугу в доменную модель
func (m *AdditionalServiceModel) ToDomain() domain.AdditionalService {
	return domain.AdditionalService{
		ID:          domain.ID(m.ID),
		Name:        m.Name,
		Description: m.Description,
		Price:       parsePrice(m.Price),
	}
}

// ToDomain конвертирует бронирование в доменную модель
func (m *BookingModel) ToDomain() *domain.BookingRecord {
	rec := &domain.BookingRecord{
		ID:             domain.ID(m.ID),
		Date:           m.Date,
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
		Status:         m.Status,
		Price:          parsePrice(m.Price),
		GuestFirstName: m.GuestFirstName,
		GuestLastName:  m.GuestLastName,
		GuestEmail:     m.GuestEmail,
	}
	if m.ServiceObj != nil {
		rec.ServiceID = domain.ID(m.ServiceObj.ID)
	}
	if m.Photographer != nil {
		rec.PhotographerID = domain.ID(m.Photographer.ID)
	}
	for _, ads := range m.AdditionalServicesData {
		rec.AdditionalServiceIDs = append(rec.AdditionalServiceIDs, domain.ID(ads.ID))
	}
	return rec
}
