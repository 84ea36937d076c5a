package bookings

import (
	"context"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, paymentStatus domain.PaymentStatus) error
	GetParticipants(ctx context.Context, bookingID int64) ([]*domain.Participant, error)
	GetParticipant(ctx context.Context, bookingID, userID int64) (*domain.Participant, error)
	UpdateParticipantStatus(ctx context.Context, bookingID, userID int64, status domain.ParticipantStatus) error
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

// PaymentClient интерфейс платежного клиента
type PaymentClient interface {
	CancelIntent(ctx context.Context, intentID string) error
}

// Notifier интерфейс диспетчера уведомлений
type Notifier interface {
	BookingCancelled(ctx context.Context, booking *domain.Booking, court *domain.Court, organizer *domain.Profile, participants []*domain.Profile)
	ParticipantResponded(ctx context.Context, booking *domain.Booking, court *domain.Court, organizer *domain.Profile, participant *domain.Profile, accepted bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
