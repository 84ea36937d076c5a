package export_bookings

import (
	"context"

	exportBookings "github.com/padelio/PDL-BookingService/internal/usecase/export_bookings"
)

type ExportBookingsUseCase interface {
	Execute(ctx context.Context, req *exportBookings.Request) (*exportBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
