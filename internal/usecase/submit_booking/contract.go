package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/integrations/studioservice"
)

// StudioServiceClient интерфейс клиента студийного сервиса
type StudioServiceClient interface {
	CreateBooking(ctx context.Context, req *studioservice.CreateBookingRequest) (*domain.BookingRecord, error)
	UpdateBooking(ctx context.Context, bookingID domain.ID, req *studioservice.UpdateBookingRequest) (*domain.BookingRecord, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для метрик отправок
// Может быть nil
type MetricsRecorder interface {
	IncSubmission(mode, outcome string)
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
