package create_session

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Mode == "" {
		return fmt.Errorf("%w: mode is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Время начала необязательно, но если указано - должно быть корректным
	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.DurationHours != nil {
		h := *req.DurationHours
		if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
			return fmt.Errorf("%w: durationHours must be positive", ErrInvalidInput)
		}
	}

	if !req.TrainerChoice.IsValid() {
		return fmt.Errorf("%w: unknown trainerChoice %q", ErrInvalidInput, req.TrainerChoice)
	}
	if req.TrainerChoice == domain.TrainerChoiceSpecific && (req.TrainerID == nil || *req.TrainerID <= 0) {
		return fmt.Errorf("%w: trainerId is required for a specific trainer", ErrInvalidInput)
	}

	for _, id := range req.SelectedActivityIDs {
		if id <= 0 {
			return fmt.Errorf("%w: activity IDs must be positive", ErrInvalidInput)
		}
	}

	if len(req.CustomActivities) > domain.MaxCustomActivities {
		return fmt.Errorf("%w: at most %d custom activities", ErrInvalidInput, domain.MaxCustomActivities)
	}
	for _, a := range req.CustomActivities {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: custom activity must not be blank", ErrInvalidInput)
		}
		if utf8.RuneCountInString(a) > domain.MaxCustomActivityLength {
			return fmt.Errorf("%w: custom activity exceeds %d characters", ErrInvalidInput, domain.MaxCustomActivityLength)
		}
	}

	if utf8.RuneCountInString(req.Notes) > domain.MaxFreeformNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxFreeformNotesLength)
	}

	return nil
}

// endTime вычисляет время окончания; сессия должна закончиться до полуночи
func endTime(start types.TimeString, hours float64) (types.TimeString, error) {
	end, err := start.AddMinutes(int(math.Round(hours * 60)))
	if err != nil {
		return "", fmt.Errorf("%w: session starting at %s for %.2fh ends after midnight", ErrInvalidInput, start, hours)
	}
	return end, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
