package expire_unpaid_bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
)

// Request модель запроса на очистку неоплаченных бронирований
type Request struct {
	CallerID int64
}

// Response результат очистки
type Response struct {
	Count      int64   `json:"count"`
	BookingIDs []int64 `json:"bookingIds"`
}

// UseCase use case отмены просроченных неоплаченных бронирований.
// Операция идемпотентна: повторный запуск не находит уже отмененные
// бронирования. Вся пачка отменяется в одной транзакции - либо целиком,
// либо никак.
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	profileRepo  ProfileRepository
	settingsRepo SettingsRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	profileRepo ProfileRepository,
	settingsRepo SettingsRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		profileRepo:  profileRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case очистки неоплаченных бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExpireUnpaidBookings: started by user=%d", req.CallerID)

	// 1. Доступ только администраторам
	if err := uc.requireAdmin(ctx, req.CallerID); err != nil {
		return nil, err
	}

	// 2. Таймаут оплаты обязан быть настроен явно
	clubSettings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("ExpireUnpaidBookings: club settings are not configured, aborting")
			return nil, ErrNotConfigured
		}
		uc.logger.Error("ExpireUnpaidBookings: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	cutoff := uc.timeProvider.Now().Add(-time.Duration(clubSettings.PaymentTimeoutHours) * time.Hour)
	uc.logger.Info("ExpireUnpaidBookings: cancelling unpaid bookings created before %s", cutoff.Format(time.RFC3339))

	// 3. Выборка и отмена в одной транзакции
	var expired []*domain.Booking

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		expired, err = uc.bookingRepo.GetExpiredUnpaid(txCtx, cutoff)
		if err != nil {
			uc.logger.Error("ExpireUnpaidBookings: failed to get expired bookings: %v", err)
			return fmt.Errorf("%w: failed to get expired bookings: %v", ErrInternal, err)
		}

		if len(expired) == 0 {
			return nil
		}

		ids := bookingIDs(expired)
		cancelled, err := uc.bookingRepo.CancelBulk(txCtx, ids)
		if err != nil {
			uc.logger.Error("ExpireUnpaidBookings: failed to cancel bookings: %v", err)
			return fmt.Errorf("%w: failed to cancel bookings: %v", ErrInternal, err)
		}

		if cancelled != int64(len(ids)) {
			// Состояние изменилось между выборкой и отменой - откатываем всю пачку
			uc.logger.Error("ExpireUnpaidBookings: expected to cancel %d bookings, cancelled %d", len(ids), cancelled)
			return fmt.Errorf("%w: concurrent modification during bulk cancel", ErrInternal)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Уведомления best-effort после фиксации
	for _, booking := range expired {
		booking.Status = domain.StatusCancelled
		booking.PaymentStatus = domain.PaymentCancelled
		uc.notifyCancellation(ctx, booking)
	}

	uc.logger.Info("ExpireUnpaidBookings: cancelled %d bookings", len(expired))

	return &Response{
		Count:      int64(len(expired)),
		BookingIDs: bookingIDs(expired),
	}, nil
}

// requireAdmin проверяет, что вызывающий - администратор клуба
func (uc *UseCase) requireAdmin(ctx context.Context, userID int64) error {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return ErrAccessDenied
		}
		uc.logger.Error("ExpireUnpaidBookings: failed to load profile user=%d: %v", userID, err)
		return fmt.Errorf("%w: profile lookup error: %v", ErrInternal, err)
	}
	if !profile.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}

// notifyCancellation отправляет уведомления об отмене best-effort
func (uc *UseCase) notifyCancellation(ctx context.Context, booking *domain.Booking) {
	court, err := uc.courtRepo.GetByID(ctx, booking.CourtID)
	if err != nil {
		uc.logger.Error("ExpireUnpaidBookings: failed to load court id=%d: %v", booking.CourtID, err)
		court = nil
	}

	organizer, err := uc.profileRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		uc.logger.Error("ExpireUnpaidBookings: failed to load organizer user=%d: %v", booking.UserID, err)
		return
	}

	participants, err := uc.bookingRepo.GetParticipants(ctx, booking.ID)
	if err != nil {
		uc.logger.Error("ExpireUnpaidBookings: failed to load participants for booking id=%d: %v", booking.ID, err)
		participants = nil
	}

	ids := make([]int64, 0, len(participants))
	for _, p := range participants {
		if p.Status != domain.ParticipantDeclined {
			ids = append(ids, p.UserID)
		}
	}

	profiles, err := uc.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("ExpireUnpaidBookings: failed to load participant profiles: %v", err)
		profiles = nil
	}

	uc.notifier.BookingCancelled(ctx, booking, court, organizer, profiles)
}

func bookingIDs(bookings []*domain.Booking) []int64 {
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}
