package update_selection

import "github.com/m04kA/SMC-BookingFlowService/internal/service/flow"

type FlowService interface {
	UpdateSelection(id string, changes *flow.SelectionChanges) (*flow.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
