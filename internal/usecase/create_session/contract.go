package create_session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/strategy"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
}

// StrategyFactory источник стратегий режимов бронирования
type StrategyFactory interface {
	Get(mode domain.Mode) (*strategy.Strategy, bool)
}

// BudgetServiceClient интерфейс клиента для BudgetService
type BudgetServiceClient interface {
	GetRemainingHoursWithGracefulDegradation(ctx context.Context, userID int64) (float64, error)
}

// MetricsRecorder счетчики use case
type MetricsRecorder interface {
	ObserveSessionCreated(mode string)
	ObserveBudgetDegraded()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
