package create_session

import (
	"context"

	"github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
)

type FlowService interface {
	CreateSession(ctx context.Context, req *flow.CreateSessionRequest) (*flow.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
