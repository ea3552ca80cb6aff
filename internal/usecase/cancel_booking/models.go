package cancel_booking

import "github.com/m04kA/SMC-BookingFlowService/internal/domain"

// Request входные данные для отмены бронирования
type Request struct {
	BookingID domain.ID
}

// Response результат отмены бронирования
type Response struct {
	Booking *domain.BookingRecord
}
