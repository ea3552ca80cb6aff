package submit_booking

import "github.com/m04kA/SMC-BookingFlowService/internal/domain"

// Request входные данные для отправки бронирования
// Selection обязан пройти локальную валидацию до единого сетевого вызова
type Request struct {
	Mode      domain.FlowMode
	BookingID *domain.ID // обязателен в режиме редактирования

	Selection domain.Selection

	Authenticated bool
	UserID        *domain.ID
}

// Response результат отправки бронирования
type Response struct {
	Booking *domain.BookingRecord
}
