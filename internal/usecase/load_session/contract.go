package load_session

import (
	"context"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/strategy"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
}

// StrategyFactory источник стратегий режимов бронирования
type StrategyFactory interface {
	Get(mode domain.Mode) (*strategy.Strategy, bool)
}

// MetricsRecorder счетчики use case
type MetricsRecorder interface {
	ObserveNotesParsed(mode string, recognized bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
