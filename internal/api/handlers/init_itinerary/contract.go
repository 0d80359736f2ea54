package init_itinerary

import (
	"context"

	"github.com/m04kA/SMC-SessionService/internal/service/itinerary/models"
)

type ItineraryService interface {
	Initialize(ctx context.Context, req *models.InitializeRequest) (*models.InitializeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
