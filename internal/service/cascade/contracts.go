package cascade

import (
	"context"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
)

// AvailabilityGateway интерфейс сервиса доступности
// Возвращает допустимые нижестоящие опции для текущей комбинации
// вышестоящих полей; движок легальность слотов сам не вычисляет
type AvailabilityGateway interface {
	GetAvailableDates(ctx context.Context, photographerID, serviceID domain.ID) ([]string, error)
	GetAvailableSlots(ctx context.Context, photographerID, serviceID domain.ID, date string) ([]string, error)
}

// StaleGuard интерфейс guard'а устаревших ответов
type StaleGuard interface {
	Begin(fieldKey string) uint64
	IsCurrent(fieldKey string, gen uint64) bool
	Invalidate(fieldKey string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для метрик движка
// Может быть nil
type MetricsRecorder interface {
	IncStaleDropped(field string)
}
