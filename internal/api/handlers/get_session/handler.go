package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/views"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
)

const msgSessionNotFound = "сессия не найдена или истекла"

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

// Handle GET /api/v1/sessions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	view, err := h.service.GetSession(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.FromSessionView(view))
}

// HandleClose DELETE /api/v1/sessions/{id}
// Закрытие идемпотентно: повторный вызов для закрытой сессии тоже 204
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	h.service.CloseSession(sessionID)

	h.logger.Info("DELETE /sessions/{id} - Session closed: session_id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
