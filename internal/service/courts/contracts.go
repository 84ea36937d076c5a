package courts

import (
	"context"

	"github.com/padelio/PDL-BookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
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
