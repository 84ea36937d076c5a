package create_booking

import (
	"context"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/internal/integrations/paymentservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	AddParticipants(ctx context.Context, bookingID int64, userIDs []int64) ([]*domain.Participant, error)
	UpdatePaymentIntent(ctx context.Context, id int64, intentID string) error
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
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

// ProfileRepository интерфейс репозитория профилей пользователей
type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Profile, error)
}

// PaymentClient интерфейс платежного клиента
type PaymentClient interface {
	CreateIntent(ctx context.Context, bookingID int64, amountCents int64) (*paymentservice.Intent, error)
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking, court *domain.Court, organizer *domain.Profile, participants []*domain.Profile)
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
