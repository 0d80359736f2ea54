package create_session

import (
	"time"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// Request модель запроса на создание сессии
type Request struct {
	UserID int64       // ID пользователя
	Mode   domain.Mode // Режим бронирования
	Date   time.Time   // Дата сессии (без времени)

	// StartTime время начала; для режимов с маршрутом по умолчанию - время выезда
	StartTime types.TimeString
	// DurationHours длительность для режимов без маршрута
	DurationHours *float64

	ParentAddress string               // Адрес родителя, подставляется как адрес выезда
	Itinerary     domain.ItineraryData // Поля маршрута (частичное обновление поверх пустого маршрута)

	SelectedActivityIDs []int64
	CustomActivities    []string
	TrainerChoice       domain.TrainerChoice
	TrainerID           *int64
	Notes               string // Свободные заметки без блока маршрута
}

// Response модель ответа с созданной сессией
type Response struct {
	ID                  int64
	UserID              int64
	Mode                domain.Mode
	Date                time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	DurationHours       float64
	RemainingHours      float64 // Остаток часов, по которому ограничивалась длительность
	BudgetDegraded      bool    // true, если остаток взят по умолчанию из-за недоступности BudgetService
	SelectedActivityIDs []int64
	CustomActivities    []string
	TrainerChoice       domain.TrainerChoice
	TrainerID           *int64
	Notes               string // Заметки вместе с блоком маршрута
	Summary             string // Краткое описание маршрута
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
