package get_session

import (
	"context"

	loadSession "github.com/m04kA/SMC-SessionService/internal/usecase/load_session"
)

type LoadSessionUseCase interface {
	Execute(ctx context.Context, req *loadSession.Request) (*loadSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
