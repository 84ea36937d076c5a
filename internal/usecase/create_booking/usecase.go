package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/padelio/PDL-BookingService/internal/domain"
	bookingRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/court"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
	"github.com/padelio/PDL-BookingService/pkg/ptr"
	"github.com/padelio/PDL-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	courtRepo     CourtRepository
	scheduleRepo  ScheduleRepository
	promotionRepo PromotionRepository
	settingsRepo  SettingsRepository
	profileRepo   ProfileRepository
	paymentClient PaymentClient
	notifier      Notifier
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	scheduleRepo ScheduleRepository,
	promotionRepo PromotionRepository,
	settingsRepo SettingsRepository,
	profileRepo ProfileRepository,
	paymentClient PaymentClient,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		courtRepo:     courtRepo,
		scheduleRepo:  scheduleRepo,
		promotionRepo: promotionRepo,
		settingsRepo:  settingsRepo,
		profileRepo:   profileRepo,
		paymentClient: paymentClient,
		notifier:      notifier,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверки и вставка выполняются в сериализуемой транзакции с блокировкой
// бронирований дня (FOR UPDATE) - два конкурирующих запроса на один слот
// не могут пройти проверку пересечения одновременно.
// Платежный интент создается после фиксации транзакции: его ошибка не
// откатывает бронирование, оно остается в ожидании оплаты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, date=%s, time=%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	var (
		result       *domain.Booking
		organizer    *domain.Profile
		court        *domain.Court
		participants []*domain.Profile
	)

	// 2. Проверки и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Клуб должен работать в эту дату
		window, err := uc.resolveWindow(txCtx, req)
		if err != nil {
			return err
		}

		// 2.2. Организатор должен существовать
		organizer, err = uc.profileRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, profileRepo.ErrProfileNotFound) {
				uc.logger.Warn("CreateBooking: organizer user=%d not found", req.UserID)
				return ErrOrganizerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get organizer user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get organizer: %v", ErrInternal, err)
		}

		// 2.3. Корт должен существовать и быть активным
		court, err = uc.resolveCourt(txCtx, req.CourtID)
		if err != nil {
			return err
		}

		// 2.4. Вместимость: организатор + уникальные участники без организатора
		participantIDs := domain.DedupParticipants(req.UserID, req.Participants)
		playersCount := 1 + len(participantIDs)
		if playersCount > court.Capacity {
			uc.logger.Warn("CreateBooking: %d players exceed capacity %d of court id=%d",
				playersCount, court.Capacity, court.ID)
			return ErrCapacityExceeded
		}

		participants, err = uc.resolveParticipants(txCtx, participantIDs)
		if err != nil {
			return err
		}

		// 2.5. Длительность игры из настроек клуба
		duration := domain.DefaultGameDurationMinutes
		clubSettings, err := uc.settingsRepo.Get(txCtx)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		if clubSettings != nil {
			duration = clubSettings.GameDurationMinutes
		}

		endTime, err := req.StartTime.AddMinutes(duration)
		if err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}

		if err := validateSlotWindow(window, req.StartTime, endTime); err != nil {
			uc.logger.Warn("CreateBooking: slot window validation failed: %v", err)
			return err
		}

		// 2.6. Пересечение с активными бронированиями (строки дня заблокированы FOR UPDATE)
		filter := domain.BookingsFilter{
			CourtID:   ptr.Ptr(req.CourtID),
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if conflicting := domain.HasOverlap(bookings, req.CourtID, req.StartTime, endTime); conflicting != nil {
			uc.logger.Warn("CreateBooking: slot conflicts with booking id=%d", conflicting.ID)
			return ErrSlotConflict
		}

		// 2.7. Цена: акция применяется в момент создания и фиксируется в строке
		booking, err := uc.buildBooking(txCtx, req, court, organizer, endTime, playersCount)
		if err != nil {
			return err
		}

		// 2.8. Сохраняем бронирование и участников
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if _, err := uc.bookingRepo.AddParticipants(txCtx, created.ID, participantIDs); err != nil {
			uc.logger.Error("CreateBooking: failed to add participants: %v", err)
			return fmt.Errorf("%w: failed to add participants: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d code=%s total=%d",
		result.ID, result.BookingCode, result.TotalAmountCents)

	// 3. Платежный интент после фиксации транзакции
	clientSecret := uc.createPaymentIntent(ctx, result)

	// 4. Уведомления best-effort
	uc.notifier.BookingCreated(ctx, result, court, organizer, participants)

	participantIDs := make([]int64, 0, len(participants))
	for _, p := range participants {
		participantIDs = append(participantIDs, p.ID)
	}

	return fromDomainBooking(result, participantIDs, clientSecret), nil
}

// resolveWindow определяет окно работы клуба на дату запроса
func (uc *UseCase) resolveWindow(ctx context.Context, req *Request) (*domain.DayWindow, error) {
	hours, err := uc.scheduleRepo.GetOpeningHours(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get opening hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get opening hours: %v", ErrInternal, err)
	}

	holidays, err := uc.scheduleRepo.GetHolidaysInRange(ctx, req.Date, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	window := domain.ResolveDayWindow(req.Date, hours, holidays)
	if window == nil {
		uc.logger.Warn("CreateBooking: club is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrClubClosed
	}

	return window, nil
}

// resolveCourt проверяет существование и активность корта
func (uc *UseCase) resolveCourt(ctx context.Context, courtID int64) (*domain.Court, error) {
	court, err := uc.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", courtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("CreateBooking: court id=%d is inactive", courtID)
		return nil, ErrCourtNotFound
	}

	return court, nil
}

// resolveParticipants проверяет, что все приглашенные участники существуют
func (uc *UseCase) resolveParticipants(ctx context.Context, ids []int64) ([]*domain.Profile, error) {
	if len(ids) == 0 {
		return []*domain.Profile{}, nil
	}

	profiles, err := uc.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get participant profiles: %v", err)
		return nil, fmt.Errorf("%w: failed to get participants: %v", ErrInternal, err)
	}

	if len(profiles) != len(ids) {
		found := make(map[int64]struct{}, len(profiles))
		for _, p := range profiles {
			found[p.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				uc.logger.Warn("CreateBooking: participant user=%d not found", id)
			}
		}
		return nil, ErrParticipantNotFound
	}

	return profiles, nil
}

// buildBooking собирает строку бронирования с расчетом цены.
// Административные бронирования бесплатны. Для пользовательских применяется
// акция, действующая на дату игры, и фиксируется в полях бронирования -
// последующие изменения акции не трогают существующие цены.
func (uc *UseCase) buildBooking(
	ctx context.Context,
	req *Request,
	court *domain.Court,
	organizer *domain.Profile,
	endTime types.TimeString,
	playersCount int,
) (*domain.Booking, error) {
	booking := &domain.Booking{
		CourtID:      court.ID,
		UserID:       req.UserID,
		BookingDate:  req.Date,
		StartTime:    req.StartTime,
		EndTime:      endTime,
		PlayersCount: playersCount,
		Status:       domain.StatusConfirmed,
		BookingCode:  domain.NewBookingCode(),
	}

	if organizer.IsAdmin() {
		booking.CreatedByAdmin = true
		booking.TotalAmountCents = 0
		booking.PaymentStatus = domain.PaymentConfirmed
		return booking, nil
	}

	promotions, err := uc.promotionRepo.GetActiveOn(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get promotions: %v", err)
		return nil, fmt.Errorf("%w: failed to get promotions: %v", ErrInternal, err)
	}

	promotion := domain.PickPromotion(promotions, court.ID, req.Date)
	total := domain.ApplyDiscount(court.PriceCents, promotion)

	booking.TotalAmountCents = total
	if promotion != nil {
		booking.OriginalAmountCents = ptr.Ptr(court.PriceCents)
		booking.PromotionID = ptr.Ptr(promotion.ID)
		booking.PromotionDiscount = ptr.Ptr(domain.DiscountAmount(court.PriceCents, promotion))
	}

	if total > 0 {
		booking.PaymentStatus = domain.PaymentPending
	} else {
		booking.PaymentStatus = domain.PaymentConfirmed
	}

	return booking, nil
}

// createPaymentIntent создает платежный интент для неоплаченного бронирования.
// Ошибка провайдера не откатывает бронирование - оно остается в ожидании
// оплаты и будет отменено sweep-джобой по таймауту, если оплата не поступит.
func (uc *UseCase) createPaymentIntent(ctx context.Context, booking *domain.Booking) *string {
	if booking.CreatedByAdmin || booking.TotalAmountCents == 0 || booking.PaymentStatus != domain.PaymentPending {
		return nil
	}

	intent, err := uc.paymentClient.CreateIntent(ctx, booking.ID, booking.TotalAmountCents)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create payment intent for booking id=%d: %v", booking.ID, err)
		return nil
	}

	if err := uc.bookingRepo.UpdatePaymentIntent(ctx, booking.ID, intent.ID); err != nil {
		uc.logger.Error("CreateBooking: failed to store payment intent %s for booking id=%d: %v",
			intent.ID, booking.ID, err)
	}

	booking.PaymentIntentID = ptr.Ptr(intent.ID)
	return ptr.Ptr(intent.ClientSecret)
}
