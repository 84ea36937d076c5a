package courts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/padelio/PDL-BookingService/internal/domain"
	courtRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/court"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	"github.com/padelio/PDL-BookingService/internal/service/courts/models"
)

// Service сервис для работы с кортами клуба
type Service struct {
	courtRepo   CourtRepository
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		courtRepo:   courtRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// List получает список активных кортов
func (s *Service) List(ctx context.Context) (*models.CourtListResponse, error) {
	courts, err := s.courtRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourtList(courts), nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(court), nil
}

// Create создает новый корт
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: creating court name=%s by user=%d", req.Name, req.CallerID)

	if err := s.requireAdmin(ctx, req.CallerID); err != nil {
		return nil, err
	}

	if err := validateCourt(req.Name, req.Capacity, req.Price); err != nil {
		s.logger.Warn("Create: invalid court data: %v", err)
		return nil, err
	}

	court := &domain.Court{
		Name:       strings.TrimSpace(req.Name),
		Capacity:   req.Capacity,
		PriceCents: req.Price,
		IsActive:   true,
		ImageURL:   req.ImageURL,
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: court id=%d created", created.ID)
	return models.FromDomainCourt(created), nil
}

// Update обновляет данные корта
// Доступно только администраторам
func (s *Service) Update(ctx context.Context, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Update: updating court id=%d by user=%d", req.CourtID, req.CallerID)

	if err := s.requireAdmin(ctx, req.CallerID); err != nil {
		return nil, err
	}

	court, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		court.Name = strings.TrimSpace(*req.Name)
	}
	if req.Capacity != nil {
		court.Capacity = *req.Capacity
	}
	if req.Price != nil {
		court.PriceCents = *req.Price
	}
	if req.IsActive != nil {
		court.IsActive = *req.IsActive
	}
	if req.ImageURL != nil {
		court.ImageURL = req.ImageURL
	}

	if err := validateCourt(court.Name, court.Capacity, court.PriceCents); err != nil {
		s.logger.Warn("Update: invalid court data: %v", err)
		return nil, err
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(court), nil
}

// Deactivate помечает корт неактивным
// Доступно только администраторам
func (s *Service) Deactivate(ctx context.Context, courtID, callerID int64) error {
	s.logger.Info("Deactivate: deactivating court id=%d by user=%d", courtID, callerID)

	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	if err := s.courtRepo.Deactivate(ctx, courtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return ErrCourtNotFound
		}
		s.logger.Error("Deactivate: repository error for court id=%d: %v", courtID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
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

// validateCourt проверяет бизнес-ограничения корта
func validateCourt(name string, capacity int, priceCents int64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: court name is required", ErrInvalidInput)
	}
	if capacity < domain.MinCourtCapacity || capacity > domain.MaxCourtCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinCourtCapacity, domain.MaxCourtCapacity)
	}
	if priceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
