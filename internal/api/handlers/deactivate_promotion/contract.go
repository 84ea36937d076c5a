package deactivate_promotion

import "context"

type SettingsService interface {
	DeactivatePromotion(ctx context.Context, callerID, promotionID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
