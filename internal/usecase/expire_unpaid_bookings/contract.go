package expire_unpaid_bookings

import (
	"context"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetExpiredUnpaid(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
	CancelBulk(ctx context.Context, ids []int64) (int64, error)
	GetParticipants(ctx context.Context, bookingID int64) ([]*domain.Participant, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// ProfileRepository интерфейс репозитория профилей пользователей
type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Profile, error)
}

// SettingsRepository интерфейс репозитория настроек клуба
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ClubSettings, error)
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	BookingCancelled(ctx context.Context, booking *domain.Booking, court *domain.Court, organizer *domain.Profile, participants []*domain.Profile)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
