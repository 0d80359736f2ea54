package sessions

import (
	"errors"
	"strings"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrModeNotSupported возвращается для режима сессии без маршрута
	ErrModeNotSupported = errors.New("mode has no itinerary")

	// ErrItineraryIncomplete возвращается, когда маршрут заполнен не полностью
	ErrItineraryIncomplete = errors.New("itinerary is incomplete")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// IncompleteItineraryError перечисляет незаполненные поля маршрута
type IncompleteItineraryError struct {
	MissingFields []string
}

func (e *IncompleteItineraryError) Error() string {
	return ErrItineraryIncomplete.Error() + ": missing " + strings.Join(e.MissingFields, ", ")
}

func (e *IncompleteItineraryError) Unwrap() error {
	return ErrItineraryIncomplete
}
