package get_session

import (
	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/records"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/validation"
	"github.com/m04kA/SMC-SessionService/internal/service/sessions/models"
	loadSession "github.com/m04kA/SMC-SessionService/internal/usecase/load_session"
)

// SessionResponse сессия с восстановленным из заметок маршрутом
type SessionResponse struct {
	Session         *models.SessionResponse `json:"session"`
	Recognized      bool                    `json:"recognized"`
	Itinerary       domain.ItineraryData    `json:"itinerary"`
	Record          records.Record          `json:"record,omitempty"`
	AdditionalNotes string                  `json:"additionalNotes"`
	Validation      *validation.Result      `json:"validation,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loadSession.Response) *SessionResponse {
	return &SessionResponse{
		Session:         models.FromDomainSession(resp.Session),
		Recognized:      resp.Recognized,
		Itinerary:       resp.Itinerary,
		Record:          resp.Record,
		AdditionalNotes: resp.AdditionalNotes,
		Validation:      resp.Validation,
	}
}
