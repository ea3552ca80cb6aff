package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/views"
	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
	submitBooking "github.com/m04kA/SMC-BookingFlowService/internal/usecase/submit_booking"
)

const (
	msgSessionNotFound  = "сессия не найдена или истекла"
	msgBookingNotFound  = "бронирование не найдено"
	msgValidationFailed = "выбор не прошел валидацию"
)

type Handler struct {
	service FlowService
	logger  Logger
}

func NewHandler(service FlowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{id}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	result, err := h.service.Submit(r.Context(), sessionID)
	if err != nil {
		var fieldErr *submitBooking.FieldValidationError
		var rejection *submitBooking.RejectionError
		switch {
		case errors.Is(err, flow.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.As(err, &fieldErr):
			h.logger.Warn("POST /sessions/{id}/submit - Validation failed: session_id=%s, fields=%d",
				sessionID, len(fieldErr.Fields))
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Message:     msgValidationFailed,
				FieldErrors: fieldErr.Fields,
			})

		case errors.As(err, &rejection):
			// Причина отказа сервиса показывается пользователю как есть
			h.logger.Warn("POST /sessions/{id}/submit - Rejected: session_id=%s, detail=%s",
				sessionID, rejection.Detail)
			handlers.RespondError(w, http.StatusConflict, rejection.Detail)

		case errors.Is(err, submitBooking.ErrBookingNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Booking not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.View.Mode == domain.ModeCreate {
		status = http.StatusCreated
	}

	h.logger.Info("POST /sessions/{id}/submit - Booking submitted: session_id=%s, booking_id=%d",
		sessionID, result.Booking.ID)
	handlers.RespondJSON(w, status, SubmitResponse{
		Booking: views.FromBookingRecord(result.Booking),
		Session: views.FromSessionView(&result.View),
	})
}
