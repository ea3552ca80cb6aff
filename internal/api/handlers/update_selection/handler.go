package update_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingFlowService/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFlowService/internal/api/handlers/views"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/cascade"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
)

const (
	msgInvalidRequestBody       = "некорректное тело запроса"
	msgSessionNotFound          = "сессия не найдена или истекла"
	msgServiceNotFound          = "услуга не найдена"
	msgPhotographerNotFound     = "фотограф не найден"
	msgPhotographerNotAvailable = "фотограф не выполняет выбранную услугу"
	msgUpstreamNotSelected      = "сначала выберите вышестоящие поля"
	msgDateNotAvailable         = "выбранная дата недоступна"
	msgTimeNotAvailable         = "выбранное время недоступно"
	msgAdditionalNotFound       = "дополнительная услуга не найдена"
	msgUnknownGuestField        = "неизвестное гостевое поле"
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

// Handle PATCH /api/v1/sessions/{id}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/selection - Invalid request body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	changes, err := req.ToChanges()
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/selection - Failed to parse request: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.UpdateSelection(sessionID, changes)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/selection - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, cascade.ErrServiceNotFound):
			h.logger.Warn("PATCH /sessions/{id}/selection - Service not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, cascade.ErrPhotographerNotFound):
			h.logger.Warn("PATCH /sessions/{id}/selection - Photographer not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)

		case errors.Is(err, cascade.ErrPhotographerNotAvailable):
			h.logger.Warn("PATCH /sessions/{id}/selection - Photographer not available: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgPhotographerNotAvailable)

		case errors.Is(err, cascade.ErrUpstreamNotSelected):
			h.logger.Warn("PATCH /sessions/{id}/selection - Upstream not selected: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgUpstreamNotSelected)

		case errors.Is(err, cascade.ErrDateNotAvailable):
			h.logger.Warn("PATCH /sessions/{id}/selection - Date not available: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgDateNotAvailable)

		case errors.Is(err, cascade.ErrTimeNotAvailable):
			h.logger.Warn("PATCH /sessions/{id}/selection - Time not available: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgTimeNotAvailable)

		case errors.Is(err, cascade.ErrAdditionalServiceNotFound):
			h.logger.Warn("PATCH /sessions/{id}/selection - Additional service not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgAdditionalNotFound)

		case errors.Is(err, cascade.ErrUnknownGuestField):
			h.logger.Warn("PATCH /sessions/{id}/selection - Unknown guest field: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgUnknownGuestField)

		default:
			h.logger.Error("PATCH /sessions/{id}/selection - Failed to update selection: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.FromSessionView(view))
}
