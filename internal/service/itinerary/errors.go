package itinerary

import "errors"

var (
	// ErrModeNotSupported возвращается для режима без маршрута
	ErrModeNotSupported = errors.New("booking mode has no itinerary")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("itinerary service: internal error")
)
