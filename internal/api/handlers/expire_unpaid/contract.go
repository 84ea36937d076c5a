package expire_unpaid

import (
	"context"

	expireUnpaid "github.com/padelio/PDL-BookingService/internal/usecase/expire_unpaid_bookings"
)

type ExpireUnpaidUseCase interface {
	Execute(ctx context.Context, req *expireUnpaid.Request) (*expireUnpaid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
