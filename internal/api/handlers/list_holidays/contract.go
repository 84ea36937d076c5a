package list_holidays

import (
	"context"
	"time"

	"github.com/padelio/PDL-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	ListHolidays(ctx context.Context, callerID int64, start, end time.Time) (*models.HolidayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
