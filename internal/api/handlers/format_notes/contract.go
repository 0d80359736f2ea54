package format_notes

import (
	"context"

	"github.com/m04kA/SMC-SessionService/internal/service/itinerary/models"
)

type ItineraryService interface {
	FormatNotes(ctx context.Context, req *models.FormatNotesRequest) (*models.FormatNotesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
