package update_court

import (
	"context"

	"github.com/padelio/PDL-BookingService/internal/service/courts/models"
)

type CourtService interface {
	Update(ctx context.Context, req *models.UpdateCourtRequest) (*models.CourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
