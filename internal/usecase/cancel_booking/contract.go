package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
)

// StudioServiceClient интерфейс клиента студийного сервиса
type StudioServiceClient interface {
	UpdateBookingStatus(ctx context.Context, bookingID domain.ID, status string) (*domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
