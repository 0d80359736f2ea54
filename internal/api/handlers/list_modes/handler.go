package list_modes

import (
	"net/http"

	"github.com/m04kA/SMC-SessionService/internal/api/handlers"
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

// Handle GET /api/v1/modes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Modes(r.Context())

	h.logger.Info("GET /modes - Modes listed: count=%d", len(result.Modes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
