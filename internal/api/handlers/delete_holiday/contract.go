package delete_holiday

import "context"

type SettingsService interface {
	DeleteHoliday(ctx context.Context, callerID, holidayID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
