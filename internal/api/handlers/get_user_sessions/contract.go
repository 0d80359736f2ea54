package get_user_sessions

import (
	"context"

	"github.com/m04kA/SMC-SessionService/internal/service/sessions/models"
)

type SessionService interface {
	GetUserSessions(ctx context.Context, userID int64) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
