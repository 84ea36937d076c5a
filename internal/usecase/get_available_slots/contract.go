package get_available_slots

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
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Court, error)
}

// ScheduleRepository интерфейс репозитория расписания клуба
type ScheduleRepository interface {
	GetOpeningHours(ctx context.Context) ([]*domain.OpeningHours, error)
	GetHolidaysInRange(ctx context.Context, start, end time.Time) ([]*domain.Holiday, error)
}

// PromotionRepository интерфейс репозитория акций
type PromotionRepository interface {
	GetActiveOn(ctx context.Context, at time.Time) ([]*domain.Promotion, error)
}

// SettingsRepository интерфейс репозитория настроек клуба
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ClubSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
