package update_session_itinerary

import (
	"context"

	"github.com/m04kA/SMC-SessionService/internal/service/sessions/models"
)

type SessionService interface {
	UpdateItinerary(ctx context.Context, req *models.UpdateItineraryRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
