package respond_participation

import (
	"context"

	"github.com/padelio/PDL-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	RespondParticipation(ctx context.Context, req *models.RespondParticipationRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
