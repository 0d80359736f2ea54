package sessions

import (
	"context"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/strategy"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Session, error)
	UpdateNotes(ctx context.Context, id int64, notes string) error
}

// StrategyFactory интерфейс фабрики стратегий режимов
type StrategyFactory interface {
	Get(mode domain.Mode) (*strategy.Strategy, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
