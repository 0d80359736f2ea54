package format_notes

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
	msgNotesTooLong       = "заметки слишком длинные"
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

// Handle POST /api/v1/modes/{mode}/notes/format
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.FormatNotesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /modes/{mode}/notes/format - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Mode = domain.Mode(mux.Vars(r)["mode"])

	result, err := h.service.FormatNotes(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, itinerary.ErrModeNotSupported):
			h.logger.Warn("POST /modes/{mode}/notes/format - Mode not supported: mode=%s", req.Mode)
			handlers.RespondNotFound(w, msgModeNotSupported)

		case errors.Is(err, itinerary.ErrInvalidInput):
			h.logger.Warn("POST /modes/{mode}/notes/format - Invalid input: mode=%s, error=%v", req.Mode, err)
			handlers.RespondBadRequest(w, msgNotesTooLong)

		default:
			h.logger.Error("POST /modes/{mode}/notes/format - Failed to format notes: mode=%s, error=%v", req.Mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
