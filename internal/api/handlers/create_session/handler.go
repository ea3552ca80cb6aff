package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/views"
	"github.com/m04kA/SMC-BookingFlowService/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMode        = "некорректный режим сессии, ожидается create или edit"
	msgBookingNotFound    = "бронирование не найдено"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	identity := middleware.IdentityFromContext(r.Context())

	view, err := h.service.CreateSession(r.Context(), req.ToServiceRequest(identity))
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMode)

		case errors.Is(err, flow.ErrBookingNotFound):
			h.logger.Warn("POST /sessions - Booking not found: booking_id=%v", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /sessions - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s, mode=%s", view.ID, view.Mode)
	handlers.RespondJSON(w, http.StatusCreated, views.FromSessionView(view))
}
