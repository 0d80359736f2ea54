package load_session

import (
	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/records"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/validation"
)

// Request модель запроса на загрузку сессии для редактирования
type Request struct {
	UserID    int64
	SessionID int64
}

// Response сессия с восстановленным маршрутом
type Response struct {
	Session *domain.Session

	// Recognized true, если в заметках найден блок маршрута
	Recognized      bool
	Itinerary       domain.ItineraryData
	Record          records.Record     // nil, если маршрут не распознан
	AdditionalNotes string             // Свободные заметки без блока маршрута
	Validation      *validation.Result // nil для режимов без маршрута
}
