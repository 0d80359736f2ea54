package models

import (
	"time"

	"github.com/m04kA/SMC-SessionService/internal/domain"
)

// Request модели

// UpdateItineraryRequest запрос на изменение маршрута существующей сессии
type UpdateItineraryRequest struct {
	UserID    int64                `json:"-"`
	SessionID int64                `json:"-"`
	Itinerary domain.ItineraryData `json:"itinerary"`
	Notes     string               `json:"notes"`
}

// Response модели

// SessionResponse сессия в ответе API
type SessionResponse struct {
	ID                  int64     `json:"id"`
	UserID              int64     `json:"userId"`
	Mode                string    `json:"mode"`
	Date                string    `json:"date"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	DurationHours       float64   `json:"durationHours"`
	SelectedActivityIDs []int64   `json:"selectedActivityIds"`
	CustomActivities    []string  `json:"customActivities"`
	TrainerChoice       string    `json:"trainerChoice"`
	TrainerID           *int64    `json:"trainerId,omitempty"`
	Notes               string    `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// SessionListResponse список сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

// FromDomainSession конвертирует domain.Session в SessionResponse
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		ID:                  s.ID,
		UserID:              s.UserID,
		Mode:                s.Mode.String(),
		Date:                s.Date.Format(domain.DateFormat),
		StartTime:           s.StartTime.String(),
		EndTime:             s.EndTime.String(),
		DurationHours:       s.DurationHours,
		SelectedActivityIDs: s.SelectedActivityIDs,
		CustomActivities:    s.CustomActivities,
		TrainerChoice:       string(s.TrainerChoice),
		TrainerID:           s.TrainerID,
		Notes:               s.Notes,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

// FromDomainSessionList конвертирует список сессий
func FromDomainSessionList(list []*domain.Session) *SessionListResponse {
	sessions := make([]SessionResponse, 0, len(list))
	for _, s := range list {
		sessions = append(sessions, *FromDomainSession(s))
	}

	return &SessionListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	}
}
