package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/padelio/PDL-BookingService/internal/domain"
	courtRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/court"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
	"github.com/padelio/PDL-BookingService/pkg/ptr"
)

// UseCase use case для получения сетки доступных слотов
type UseCase struct {
	bookingRepo   BookingRepository
	courtRepo     CourtRepository
	scheduleRepo  ScheduleRepository
	promotionRepo PromotionRepository
	settingsRepo  SettingsRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	scheduleRepo ScheduleRepository,
	promotionRepo PromotionRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		courtRepo:     courtRepo,
		scheduleRepo:  scheduleRepo,
		promotionRepo: promotionRepo,
		settingsRepo:  settingsRepo,
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, date=%s", req.UserID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем окно работы клуба на дату
	hours, err := uc.scheduleRepo.GetOpeningHours(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get opening hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get opening hours: %v", ErrInternal, err)
	}

	holidays, err := uc.scheduleRepo.GetHolidaysInRange(ctx, req.Date, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	window := domain.ResolveDayWindow(req.Date, hours, holidays)
	if window == nil {
		uc.logger.Info("GetAvailableSlots: club is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:   req.Date,
			Closed: true,
			Courts: []CourtSlots{},
		}, nil
	}

	// 3. Длительность игры из настроек клуба
	duration := domain.DefaultGameDurationMinutes
	clubSettings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if clubSettings != nil {
		duration = clubSettings.GameDurationMinutes
	}

	// 4. Корты
	courts, err := uc.resolveCourts(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	// 5. Сетка слотов общая для всех кортов
	slotStarts, err := domain.GenerateSlots(*window, duration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 6. Активные бронирования на дату
	filter := domain.BookingsFilter{
		CourtID:   req.CourtID,
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Действующие акции на дату
	promotions, err := uc.promotionRepo.GetActiveOn(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get promotions: %v", err)
		return nil, fmt.Errorf("%w: failed to get promotions: %v", ErrInternal, err)
	}

	// 8. Собираем ответ по кортам
	result := make([]CourtSlots, 0, len(courts))
	for _, court := range courts {
		result = append(result, buildCourtSlots(court, slotStarts, duration, bookings, promotions, req.Date))
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for %d courts on %s",
		len(slotStarts), len(courts), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		DurationMinutes: duration,
		Courts:          result,
	}, nil
}

// resolveCourts возвращает активные корты, учитывая фильтр по ID
func (uc *UseCase) resolveCourts(ctx context.Context, courtID *int64) ([]*domain.Court, error) {
	if courtID == nil {
		courts, err := uc.courtRepo.List(ctx, true)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list courts: %v", err)
			return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
		}
		return courts, nil
	}

	court, err := uc.courtRepo.GetByID(ctx, *courtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", *courtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", *courtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("GetAvailableSlots: court id=%d is inactive", *courtID)
		return nil, ErrCourtNotFound
	}

	return []*domain.Court{court}, nil
}
