package init_itinerary

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
	paramParentAddress = "parentAddress"

	msgModeNotSupported = "режим не поддерживает маршрут"
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

// Handle GET /api/v1/modes/{mode}/itinerary?parentAddress=...&eventName=...
// Остальные параметры строки запроса предзаполняют поля маршрута
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mode := domain.Mode(mux.Vars(r)["mode"])
	query := r.URL.Query()

	prefill := make(map[string]string, len(query))
	for key := range query {
		if key == paramParentAddress {
			continue
		}
		prefill[key] = query.Get(key)
	}

	result, err := h.service.Initialize(r.Context(), &models.InitializeRequest{
		Mode:          mode,
		ParentAddress: query.Get(paramParentAddress),
		Prefill:       prefill,
	})
	if err != nil {
		switch {
		case errors.Is(err, itinerary.ErrModeNotSupported):
			h.logger.Warn("GET /modes/{mode}/itinerary - Mode not supported: mode=%s", mode)
			handlers.RespondNotFound(w, msgModeNotSupported)

		default:
			h.logger.Error("GET /modes/{mode}/itinerary - Failed to initialize itinerary: mode=%s, error=%v", mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /modes/{mode}/itinerary - Itinerary initialized: mode=%s", mode)
	handlers.RespondJSON(w, http.StatusOK, result)
}
