package submit_booking

import "github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/views"

// SubmitResponse ответ успешной отправки бронирования
type SubmitResponse struct {
	Booking *views.BookingResponse `json:"booking"`
	Session *views.SessionResponse `json:"session"`
}

// ValidationErrorResponse ответ с ошибками локальной валидации по полям
type ValidationErrorResponse struct {
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors"`
}
