package get_stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	"github.com/padelio/PDL-BookingService/pkg/ptr"
)

// maxStatsRangeDays максимальная длина периода статистики
const maxStatsRangeDays = 731

// UseCase use case расчета статистики занятости и выручки.
// Агрегаты не хранятся - считаются из расписания и бронирований на лету.
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	scheduleRepo ScheduleRepository
	profileRepo  ProfileRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	scheduleRepo ScheduleRepository,
	profileRepo ProfileRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		scheduleRepo: scheduleRepo,
		profileRepo:  profileRepo,
		logger:       logger,
	}
}

// Execute выполняет use case расчета статистики
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStats: caller=%d, period=%s..%s, groupBy=%s",
		req.CallerID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.GroupBy)

	// 1. Валидация
	groupBy := domain.StatsGroupBy(req.GroupBy)
	if !groupBy.Valid() {
		uc.logger.Warn("GetStats: invalid groupBy=%s", req.GroupBy)
		return nil, ErrInvalidGroupBy
	}
	if err := validatePeriod(req.StartDate, req.EndDate); err != nil {
		uc.logger.Warn("GetStats: period validation failed: %v", err)
		return nil, err
	}

	// 2. Доступ только администраторам
	if err := uc.requireAdmin(ctx, req.CallerID); err != nil {
		return nil, err
	}

	// 3. Исходные данные
	hours, err := uc.scheduleRepo.GetOpeningHours(ctx)
	if err != nil {
		uc.logger.Error("GetStats: failed to get opening hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get opening hours: %v", ErrInternal, err)
	}

	holidays, err := uc.scheduleRepo.GetHolidaysInRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetStats: failed to get holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	activeCourts, err := uc.courtRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Error("GetStats: failed to count courts: %v", err)
		return nil, fmt.Errorf("%w: failed to count courts: %v", ErrInternal, err)
	}

	status := domain.StatusConfirmed
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(req.StartDate),
		EndDate:   ptr.Ptr(req.EndDate),
		Status:    &status,
	})
	if err != nil {
		uc.logger.Error("GetStats: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Агрегация
	buckets, err := aggregate(req.StartDate, req.EndDate, groupBy, hours, holidays, activeCourts, bookings)
	if err != nil {
		uc.logger.Error("GetStats: aggregation failed: %v", err)
		return nil, fmt.Errorf("%w: aggregation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("GetStats: computed %d buckets", len(buckets))
	return fromDomainBuckets(req, buckets), nil
}

// aggregate строит агрегаты по периодам: вместимость накапливается по дням
// календаря, бронирования и выручка - по дате игры
func aggregate(
	start, end time.Time,
	groupBy domain.StatsGroupBy,
	hours []*domain.OpeningHours,
	holidays []*domain.Holiday,
	activeCourts int,
	bookings []*domain.Booking,
) ([]*domain.StatsBucket, error) {
	byKey := make(map[string]*domain.StatsBucket)

	bucket := func(key string) *domain.StatsBucket {
		if b, ok := byKey[key]; ok {
			return b
		}
		b := &domain.StatsBucket{PeriodKey: key}
		byKey[key] = b
		return b
	}

	// Вместимость: каждый день периода вносит вклад в свой bucket,
	// закрытые дни вносят 0 слотов
	for day := truncateToDay(start); !day.After(truncateToDay(end)); day = day.AddDate(0, 0, 1) {
		window := domain.ResolveDayWindow(day, hours, holidays)
		slots, err := domain.TheoreticalSlots(window, activeCourts)
		if err != nil {
			return nil, err
		}
		bucket(domain.PeriodKey(day, groupBy)).TotalSlots += slots
	}

	// Бронирования и выручка
	for _, b := range bookings {
		key := domain.PeriodKey(b.BookingDate, groupBy)
		agg := bucket(key)
		agg.BookingsCount++
		agg.RevenueEuros += float64(b.TotalAmountCents) / 100
	}

	// Occupancy и сортировка по ключу периода
	result := make([]*domain.StatsBucket, 0, len(byKey))
	for _, b := range byKey {
		denominator := b.TotalSlots
		if denominator < 1 {
			denominator = 1
		}
		b.OccupancyRate = float64(b.BookingsCount) / float64(denominator) * 100
		result = append(result, b)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PeriodKey < result[j].PeriodKey
	})

	return result, nil
}

// validatePeriod проверяет корректность периода статистики
func validatePeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidPeriod)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidPeriod)
	}
	if end.Sub(start) > maxStatsRangeDays*24*time.Hour {
		return fmt.Errorf("%w: period is too long", ErrInvalidPeriod)
	}
	return nil
}

// requireAdmin проверяет, что вызывающий - администратор клуба
func (uc *UseCase) requireAdmin(ctx context.Context, userID int64) error {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return ErrAccessDenied
		}
		uc.logger.Error("GetStats: failed to load profile user=%d: %v", userID, err)
		return fmt.Errorf("%w: profile lookup error: %v", ErrInternal, err)
	}
	if !profile.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
