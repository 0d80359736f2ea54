package itinerary

import (
	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/strategy"
)

// StrategyFactory источник стратегий режимов бронирования
type StrategyFactory interface {
	Get(mode domain.Mode) (*strategy.Strategy, bool)
	List() []*strategy.Strategy
}

// MetricsRecorder счетчики операций с маршрутом
type MetricsRecorder interface {
	ObserveEstimate(mode string)
	ObserveValidation(mode string, valid bool)
	ObserveNotesParsed(mode string, recognized bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
