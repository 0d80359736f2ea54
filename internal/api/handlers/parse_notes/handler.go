package parse_notes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SessionService/internal/api/handlers"
	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/service/itinerary"
	"github.com/m04kA/SMC-SessionService/internal/service/itinerary/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgModeNotSupported   = "режим не поддерживает маршрут"
)

type Handler struct {
	service ItineraryService
	logger  Logger
}

func NewHandler(service ItineraryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/modes/{mode}/notes/parse
// Handle POST /api/v1/notes/parse - режим определяется по заголовку блока маршрута
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ParseNotesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notes/parse - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Mode = domain.Mode(mux.Vars(r)["mode"])

	result, err := h.service.ParseNotes(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, itinerary.ErrModeNotSupported):
			h.logger.Warn("POST /notes/parse - Mode not supported: mode=%s", req.Mode)
			handlers.RespondNotFound(w, msgModeNotSupported)

		default:
			h.logger.Error("POST /notes/parse - Failed to parse notes: mode=%s, error=%v", req.Mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notes/parse - Notes parsed: mode=%s, recognized=%t", result.Mode, result.Recognized)
	handlers.RespondJSON(w, http.StatusOK, result)
}
