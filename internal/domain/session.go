package domain

import (
	"time"

	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// TrainerChoice describes how the trainer for a session is picked
type TrainerChoice string

const (
	TrainerChoiceAny      TrainerChoice = "any"
	TrainerChoicePrevious TrainerChoice = "previous"
	TrainerChoiceSpecific TrainerChoice = "specific"
)

// IsValid returns true for a known trainer choice
func (c TrainerChoice) IsValid() bool {
	switch c {
	case TrainerChoiceAny, TrainerChoicePrevious, TrainerChoiceSpecific:
		return true
	}
	return false
}

// Session represents a booked supervised session.
// Notes holds the freeform notes with the itinerary block appended.
type Session struct {
	ID                  int64
	UserID              int64
	Mode                Mode
	Date                time.Time
	StartTime           types.TimeString
	DurationHours       float64
	EndTime             types.TimeString
	SelectedActivityIDs []int64
	CustomActivities    []string
	TrainerChoice       TrainerChoice
	TrainerID           *int64
	Notes               string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RequiresTrainerID returns true if a specific trainer must be set
func (s *Session) RequiresTrainerID() bool {
	return s.TrainerChoice == TrainerChoiceSpecific
}

// BelongsTo returns true if the session was booked by the user
func (s *Session) BelongsTo(userID int64) bool {
	return s.UserID == userID
}
