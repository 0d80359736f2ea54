package create_session

import (
	"time"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	createSession "github.com/m04kA/SMC-SessionService/internal/usecase/create_session"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	Mode                string               `json:"mode"`
	Date                string               `json:"date"`                // "2026-10-15"
	StartTime           string               `json:"startTime,omitempty"` // "08:00"
	DurationHours       *float64             `json:"durationHours,omitempty"`
	ParentAddress       string               `json:"parentAddress,omitempty"`
	Itinerary           domain.ItineraryData `json:"itinerary"`
	SelectedActivityIDs []int64              `json:"selectedActivityIds,omitempty"`
	CustomActivities    []string             `json:"customActivities,omitempty"`
	TrainerChoice       string               `json:"trainerChoice,omitempty"`
	TrainerID           *int64               `json:"trainerId,omitempty"`
	Notes               string               `json:"notes,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID                  int64    `json:"id"`
	UserID              int64    `json:"userId"`
	Mode                string   `json:"mode"`
	Date                string   `json:"date"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	DurationHours       float64  `json:"durationHours"`
	RemainingHours      float64  `json:"remainingHours"`
	BudgetDegraded      bool     `json:"budgetDegraded"`
	SelectedActivityIDs []int64  `json:"selectedActivityIds"`
	CustomActivities    []string `json:"customActivities"`
	TrainerChoice       string   `json:"trainerChoice"`
	TrainerID           *int64   `json:"trainerId,omitempty"`
	Notes               string   `json:"notes"`
	Summary             string   `json:"summary,omitempty"`
	CreatedAt           string   `json:"createdAt"`
	UpdatedAt           string   `json:"updatedAt"`
}

// IncompleteItineraryResponse ответ 422 со списком незаполненных полей
type IncompleteItineraryResponse struct {
	Code          int      `json:"code"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionRequest) ToUseCaseRequest(userID int64) (*createSession.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Время начала необязательно для режимов с маршрутом
	var startTime types.TimeString
	if r.StartTime != "" {
		startTime, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
	}

	return &createSession.Request{
		UserID:              userID,
		Mode:                domain.Mode(r.Mode),
		Date:                date,
		StartTime:           startTime,
		DurationHours:       r.DurationHours,
		ParentAddress:       r.ParentAddress,
		Itinerary:           r.Itinerary,
		SelectedActivityIDs: r.SelectedActivityIDs,
		CustomActivities:    r.CustomActivities,
		TrainerChoice:       domain.TrainerChoice(r.TrainerChoice),
		TrainerID:           r.TrainerID,
		Notes:               r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:                  resp.ID,
		UserID:              resp.UserID,
		Mode:                resp.Mode.String(),
		Date:                resp.Date.Format(domain.DateFormat),
		StartTime:           resp.StartTime.String(),
		EndTime:             resp.EndTime.String(),
		DurationHours:       resp.DurationHours,
		RemainingHours:      resp.RemainingHours,
		BudgetDegraded:      resp.BudgetDegraded,
		SelectedActivityIDs: resp.SelectedActivityIDs,
		CustomActivities:    resp.CustomActivities,
		TrainerChoice:       string(resp.TrainerChoice),
		TrainerID:           resp.TrainerID,
		Notes:               resp.Notes,
		Summary:             resp.Summary,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}
}
