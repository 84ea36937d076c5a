package list_promotions

import (
	"context"

	"github.com/padelio/PDL-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	ListPromotions(ctx context.Context, callerID int64) (*models.PromotionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
