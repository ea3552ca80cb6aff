package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
)

type FlowService interface {
	Submit(ctx context.Context, id string) (*flow.SubmitResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
