package preview_itinerary

import (
	"context"

	"github.com/m04kA/SMC-SessionService/internal/service/itinerary/models"
)

type ItineraryService interface {
	Preview(ctx context.Context, req *models.PreviewRequest) (*models.PreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
