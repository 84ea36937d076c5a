package deactivate_court

import "context"

type CourtService interface {
	Deactivate(ctx context.Context, courtID, callerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
