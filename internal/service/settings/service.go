package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	promotionRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/promotion"
	scheduleRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/schedule"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
	"github.com/padelio/PDL-BookingService/internal/service/settings/models"
)

// Service сервис администрирования настроек клуба:
// глобальные настройки, недельное расписание, закрытия и акции
type Service struct {
	settingsRepo  SettingsRepository
	scheduleRepo  ScheduleRepository
	promotionRepo PromotionRepository
	profileRepo   ProfileRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	scheduleRepo ScheduleRepository,
	promotionRepo PromotionRepository,
	profileRepo ProfileRepository,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:  settingsRepo,
		scheduleRepo:  scheduleRepo,
		promotionRepo: promotionRepo,
		profileRepo:   profileRepo,
		logger:        logger,
	}
}

// Get получает настройки клуба вместе с недельным расписанием
// Если строка настроек еще не создана, возвращаются значения по умолчанию
func (s *Service) Get(ctx context.Context, callerID int64) (*models.SettingsResponse, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	clubSettings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			clubSettings = domain.DefaultClubSettings()
		} else {
			s.logger.Error("Get: settings repository error: %v", err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
	}

	hours, err := s.scheduleRepo.GetOpeningHours(ctx)
	if err != nil {
		s.logger.Error("Get: schedule repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(clubSettings, hours), nil
}

// Update обновляет настройки клуба и недельное расписание
// Не указанные в запросе поля сохраняют текущие значения
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating club settings by user=%d", req.CallerID)

	if err := s.requireAdmin(ctx, req.CallerID); err != nil {
		return nil, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			current = domain.DefaultClubSettings()
		} else {
			s.logger.Error("Update: settings repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	if req.GameDurationMinutes != nil {
		current.GameDurationMinutes = *req.GameDurationMinutes
	}
	if req.PaymentTimeoutHours != nil {
		current.PaymentTimeoutHours = *req.PaymentTimeoutHours
	}
	if req.CancellationNoticeHours != nil {
		current.CancellationNoticeHours = *req.CancellationNoticeHours
	}

	if err := validateSettings(current); err != nil {
		s.logger.Warn("Update: invalid settings: %v", err)
		return nil, err
	}

	parsedHours := make([]*domain.OpeningHours, 0, len(req.OpeningHours))
	for _, item := range req.OpeningHours {
		if item.DayOfWeek < 0 || item.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
		}
		oh, err := item.ToDomainOpeningHours()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !oh.IsClosed && !oh.OpenTime.IsBefore(oh.CloseTime) {
			return nil, fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
		}
		parsedHours = append(parsedHours, oh)
	}

	updated, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		s.logger.Error("Update: settings repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	for _, oh := range parsedHours {
		if err := s.scheduleRepo.UpsertOpeningHours(ctx, oh); err != nil {
			s.logger.Error("Update: schedule repository error for day=%d: %v", oh.DayOfWeek, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	hours, err := s.scheduleRepo.GetOpeningHours(ctx)
	if err != nil {
		s.logger.Error("Update: schedule repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: club settings updated")
	return models.FromDomainSettings(updated, hours), nil
}

// ListHolidays получает закрытия клуба за период
func (s *Service) ListHolidays(ctx context.Context, callerID int64, start, end time.Time) (*models.HolidayListResponse, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	holidays, err := s.scheduleRepo.GetHolidaysInRange(ctx, start, end)
	if err != nil {
		s.logger.Error("ListHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHolidays - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHolidayList(holidays), nil
}

// CreateHoliday создает закрытие клуба на дату или диапазон дат
func (s *Service) CreateHoliday(ctx context.Context, req *models.CreateHolidayRequest) (*models.HolidayResponse, error) {
	s.logger.Info("CreateHoliday: date=%s by user=%d", req.Date, req.CallerID)

	if err := s.requireAdmin(ctx, req.CallerID); err != nil {
		return nil, err
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	holiday := &domain.Holiday{
		Date:   date,
		Reason: strings.TrimSpace(req.Reason),
	}

	if req.EndDate != nil {
		endDate, err := models.ParseDate(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endDate format, expected YYYY-MM-DD", ErrInvalidInput)
		}
		if endDate.Before(date) {
			return nil, fmt.Errorf("%w: endDate must not be before date", ErrInvalidInput)
		}
		holiday.EndDate = &endDate
	}

	created, err := s.scheduleRepo.CreateHoliday(ctx, holiday)
	if err != nil {
		s.logger.Error("CreateHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHoliday: holiday id=%d created", created.ID)
	return models.FromDomainHoliday(created), nil
}

// DeleteHoliday удаляет закрытие клуба
func (s *Service) DeleteHoliday(ctx context.Context, callerID, holidayID int64) error {
	s.logger.Info("DeleteHoliday: id=%d by user=%d", holidayID, callerID)

	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteHoliday(ctx, holidayID); err != nil {
		if errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
			return ErrHolidayNotFound
		}
		s.logger.Error("DeleteHoliday: repository error: %v", err)
		return fmt.Errorf("%w: DeleteHoliday - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ListPromotions получает все акции клуба
func (s *Service) ListPromotions(ctx context.Context, callerID int64) (*models.PromotionListResponse, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	promotions, err := s.promotionRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListPromotions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPromotions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPromotionList(promotions), nil
}

// CreatePromotion создает новую акцию
func (s *Service) CreatePromotion(ctx context.Context, req *models.CreatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("CreatePromotion: name=%s by user=%d", req.Name, req.CallerID)

	if err := s.requireAdmin(ctx, req.CallerID); err != nil {
		return nil, err
	}

	promotion, err := buildPromotion(req)
	if err != nil {
		s.logger.Warn("CreatePromotion: invalid promotion: %v", err)
		return nil, err
	}

	created, err := s.promotionRepo.Create(ctx, promotion)
	if err != nil {
		s.logger.Error("CreatePromotion: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePromotion - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePromotion: promotion id=%d created", created.ID)
	return models.FromDomainPromotion(created), nil
}

// DeactivatePromotion помечает акцию неактивной
// Уже рассчитанные по акции цены бронирований не пересчитываются
func (s *Service) DeactivatePromotion(ctx context.Context, callerID, promotionID int64) error {
	s.logger.Info("DeactivatePromotion: id=%d by user=%d", promotionID, callerID)

	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	if err := s.promotionRepo.Deactivate(ctx, promotionID); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			return ErrPromotionNotFound
		}
		s.logger.Error("DeactivatePromotion: repository error: %v", err)
		return fmt.Errorf("%w: DeactivatePromotion - repository error: %v", ErrInternal, err)
	}

	return nil
}

// requireAdmin проверяет, что вызывающий - администратор клуба
func (s *Service) requireAdmin(ctx context.Context, userID int64) error {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("requireAdmin: failed to load profile user=%d: %v", userID, err)
		return fmt.Errorf("%w: profile lookup error: %v", ErrInternal, err)
	}
	if !profile.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}

// validateSettings проверяет бизнес-ограничения настроек клуба
func validateSettings(settings *domain.ClubSettings) error {
	if settings.GameDurationMinutes < domain.MinGameDurationMinutes ||
		settings.GameDurationMinutes > domain.MaxGameDurationMinutes {
		return fmt.Errorf("%w: gameDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinGameDurationMinutes, domain.MaxGameDurationMinutes)
	}
	if settings.PaymentTimeoutHours < domain.MinPaymentTimeoutHours ||
		settings.PaymentTimeoutHours > domain.MaxPaymentTimeoutHours {
		return fmt.Errorf("%w: paymentTimeoutHours must be between %d and %d",
			ErrInvalidInput, domain.MinPaymentTimeoutHours, domain.MaxPaymentTimeoutHours)
	}
	if settings.CancellationNoticeHours < domain.MinCancellationNoticeHours ||
		settings.CancellationNoticeHours > domain.MaxCancellationNoticeHours {
		return fmt.Errorf("%w: cancellationNoticeHours must be between %d and %d",
			ErrInvalidInput, domain.MinCancellationNoticeHours, domain.MaxCancellationNoticeHours)
	}
	return nil
}

// buildPromotion собирает и валидирует domain акцию из запроса
func buildPromotion(req *models.CreatePromotionRequest) (*domain.Promotion, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: promotion name is required", ErrInvalidInput)
	}

	discountType := domain.DiscountType(req.DiscountType)
	switch discountType {
	case domain.DiscountPercentage:
		if req.DiscountValue <= 0 || req.DiscountValue > domain.MaxPercentageDiscount {
			return nil, fmt.Errorf("%w: percentage discount must be between 1 and %d",
				ErrInvalidInput, domain.MaxPercentageDiscount)
		}
	case domain.DiscountFixed:
		if req.DiscountValue <= 0 {
			return nil, fmt.Errorf("%w: fixed discount must be positive", ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: discountType must be percentage or fixed", ErrInvalidInput)
	}

	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	endDate, err := models.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endDate format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	return &domain.Promotion{
		Name:          strings.TrimSpace(req.Name),
		DiscountType:  discountType,
		DiscountValue: req.DiscountValue,
		CourtID:       req.CourtID,
		StartDate:     startDate,
		EndDate:       endDate,
		IsActive:      true,
	}, nil
}
