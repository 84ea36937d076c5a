package get_stats

import (
	"context"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	CountActive(ctx context.Context) (int, error)
}

// ScheduleRepository интерфейс репозитория расписания клуба
type ScheduleRepository interface {
	GetOpeningHours(ctx context.Context) ([]*domain.OpeningHours, error)
	GetHolidaysInRange(ctx context.Context, start, end time.Time) ([]*domain.Holiday, error)
}

// ProfileRepository интерфейс репозитория профилей пользователей
type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
