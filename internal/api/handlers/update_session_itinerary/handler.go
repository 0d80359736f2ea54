package update_session_itinerary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SessionService/internal/api/handlers"
	"github.com/m04kA/SMC-SessionService/internal/api/middleware"
	"github.com/m04kA/SMC-SessionService/internal/service/sessions"
	"github.com/m04kA/SMC-SessionService/internal/service/sessions/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidSessionID    = "некорректный ID сессии"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgNotFound            = "сессия не найдена"
	msgForbidden           = "доступ запрещен"
	msgModeNotSupported    = "режим сессии не поддерживает маршрут"
	msgItineraryIncomplete = "маршрут заполнен не полностью"
	msgInvalidInput        = "некорректные параметры маршрута"
)

// IncompleteItineraryResponse ответ 422 со списком незаполненных полей
type IncompleteItineraryResponse struct {
	Code          int      `json:"code"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields"`
}

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/itinerary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(mux.Vars(r)["sessionId"], 10, 64)
	if err != nil || sessionID <= 0 {
		h.logger.Warn("PUT /sessions/{id}/itinerary - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateItineraryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/itinerary - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.SessionID = sessionID

	result, err := h.service.UpdateItinerary(r.Context(), &req)
	if err != nil {
		var incomplete *sessions.IncompleteItineraryError
		switch {
		case errors.As(err, &incomplete):
			h.logger.Warn("PUT /sessions/{id}/itinerary - Itinerary incomplete: session_id=%d, missing=%v",
				sessionID, incomplete.MissingFields)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, IncompleteItineraryResponse{
				Code:          http.StatusUnprocessableEntity,
				Message:       msgItineraryIncomplete,
				MissingFields: incomplete.MissingFields,
			})

		case errors.Is(err, sessions.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("PUT /sessions/{id}/itinerary - Access denied: session_id=%d, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, sessions.ErrModeNotSupported):
			handlers.RespondBadRequest(w, msgModeNotSupported)

		case errors.Is(err, sessions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /sessions/{id}/itinerary - Failed to update itinerary: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/itinerary - Itinerary updated: session_id=%d", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
