package get_session

import "github.com/m04kA/SMC-BookingFlowService/internal/service/flow"

type FlowService interface {
	GetSession(id string) (*flow.SessionView, error)
	CloseSession(id string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
