package parse_notes

import (
	"context"

	"github.com/m04kA/SMC-SessionService/internal/service/itinerary/models"
)

type ItineraryService interface {
	ParseNotes(ctx context.Context, req *models.ParseNotesRequest) (*models.ParseNotesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
