package settings

import (
	"context"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек клуба
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ClubSettings, error)
	Upsert(ctx context.Context, settings *domain.ClubSettings) (*domain.ClubSettings, error)
}

// ScheduleRepository интерфейс репозитория расписания клуба
type ScheduleRepository interface {
	GetOpeningHours(ctx context.Context) ([]*domain.OpeningHours, error)
	UpsertOpeningHours(ctx context.Context, oh *domain.OpeningHours) error
	GetHolidaysInRange(ctx context.Context, start, end time.Time) ([]*domain.Holiday, error)
	CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error)
	DeleteHoliday(ctx context.Context, id int64) error
}

// PromotionRepository интерфейс репозитория акций
type PromotionRepository interface {
	Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error)
	List(ctx context.Context) ([]*domain.Promotion, error)
	Deactivate(ctx context.Context, id int64) error
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
