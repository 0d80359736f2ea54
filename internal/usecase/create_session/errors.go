package create_session

import (
	"errors"
	"strings"
)

var (
	// ErrItineraryIncomplete возвращается, когда маршрут заполнен не полностью
	ErrItineraryIncomplete = errors.New("create_session: itinerary is incomplete")

	// ErrNoHoursPackage возвращается, когда у пользователя нет оплаченных часов
	ErrNoHoursPackage = errors.New("create_session: user has no hours package")

	// ErrInvalidDate возвращается при дате сессии в прошлом
	ErrInvalidDate = errors.New("create_session: invalid session date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_session: internal error")
)

// IncompleteItineraryError перечисляет незаполненные поля маршрута
// errors.Is(err, ErrItineraryIncomplete) для неё истинно
type IncompleteItineraryError struct {
	MissingFields []string
}

func (e *IncompleteItineraryError) Error() string {
	return ErrItineraryIncomplete.Error() + ": missing " + strings.Join(e.MissingFields, ", ")
}

func (e *IncompleteItineraryError) Unwrap() error {
	return ErrItineraryIncomplete
}
