package flow

import (
	"context"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/infra/sessions"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/cascade"
	"github.com/m04kA/SMC-BookingFlowService/internal/usecase/submit_booking"
)

// StudioServiceClient интерфейс клиента студийного сервиса
// Каталог и доступность: загрузка каталога при открытии сессии,
// доступность уходит в каскадный контроллер
type StudioServiceClient interface {
	cascade.AvailabilityGateway

	GetServices(ctx context.Context) ([]domain.Service, error)
	GetPhotographers(ctx context.Context) ([]domain.Photographer, error)
	GetAdditionalServices(ctx context.Context) ([]domain.AdditionalService, error)
	GetBooking(ctx context.Context, id domain.ID) (*domain.BookingRecord, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Put(session *sessions.Session)
	Get(id string) (*sessions.Session, error)
	Delete(id string)
}

// SubmitUseCase интерфейс use case отправки бронирования
type SubmitUseCase interface {
	Execute(ctx context.Context, req *submit_booking.Request) (*submit_booking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
