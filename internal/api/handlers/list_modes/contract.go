package list_modes

import (
	"context"

	"github.com/m04kA/SMC-SessionService/internal/service/itinerary/models"
)

type ItineraryService interface {
	Modes(ctx context.Context) *models.ModeListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
