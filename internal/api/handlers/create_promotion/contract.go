package create_promotion

import (
	"context"

	"github.com/padelio/PDL-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	CreatePromotion(ctx context.Context, req *models.CreatePromotionRequest) (*models.PromotionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
