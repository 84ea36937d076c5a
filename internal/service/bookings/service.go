package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	bookingRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/booking"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
	"github.com/padelio/PDL-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
// Создание бронирований вынесено в отдельный usecase
type Service struct {
	bookingRepo   BookingRepository
	courtRepo     CourtRepository
	profileRepo   ProfileRepository
	settingsRepo  SettingsRepository
	paymentClient PaymentClient
	notifier      Notifier
	logger        Logger
	timeProvider  TimeProvider
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	profileRepo ProfileRepository,
	settingsRepo SettingsRepository,
	paymentClient PaymentClient,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		courtRepo:     courtRepo,
		profileRepo:   profileRepo,
		settingsRepo:  settingsRepo,
		paymentClient: paymentClient,
		notifier:      notifier,
		logger:        logger,
		timeProvider:  &RealTimeProvider{},
	}
}

// GetByID получает бронирование по ID
// Доступно организатору, участнику и администратору клуба
func (s *Service) GetByID(ctx context.Context, id int64, callerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, callerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	participants, err := s.bookingRepo.GetParticipants(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch participants for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - participants error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, participants, callerID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", callerID, id)
		return nil, err
	}

	return models.FromDomainBookingWithParticipants(booking, participants), nil
}

// GetUserBookings получает историю бронирований пользователя
// Пользователь видит только свою историю, администратор - любую
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, caller=%d", req.UserID, req.CallerID)

	if req.CallerID != req.UserID {
		admin, err := s.isAdmin(ctx, req.CallerID)
		if err != nil {
			return nil, err
		}
		if !admin {
			s.logger.Warn("GetUserBookings: access denied for caller=%d to user=%d history", req.CallerID, req.UserID)
			return nil, ErrAccessDenied
		}
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetClubBookings получает бронирования клуба с гибкой фильтрацией
// Доступно только администраторам
func (s *Service) GetClubBookings(ctx context.Context, req *models.GetClubBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClubBookings: fetching bookings for caller=%d", req.CallerID)

	admin, err := s.isAdmin(ctx, req.CallerID)
	if err != nil {
		return nil, err
	}
	if !admin {
		s.logger.Warn("GetClubBookings: access denied for caller=%d", req.CallerID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetClubBookings: invalid filter from caller=%d: %v", req.CallerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClubBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetClubBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClubBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Доступно организатору (с учетом срока отмены) и администратору.
// Незавершенный платежный интент отменяется best-effort,
// уведомления отправляются после успешной отмены.
func (s *Service) Cancel(ctx context.Context, bookingID, callerID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, callerID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	admin, err := s.isAdmin(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != callerID && !admin {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", callerID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	// Организатор обязан соблюдать срок отмены, администратор - нет
	if !admin {
		if err := s.checkCancellationNotice(ctx, booking); err != nil {
			return nil, err
		}
	}

	finalPaymentStatus := booking.PaymentStatus
	if booking.AwaitingPayment() || booking.PaymentStatus == domain.PaymentConfirmed {
		finalPaymentStatus = domain.PaymentCancelled
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, finalPaymentStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Гонка с параллельной отменой
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Отмена незавершенного платежного интента best-effort
	if booking.PaymentIntentID != nil && booking.AwaitingPayment() {
		if err := s.paymentClient.CancelIntent(ctx, *booking.PaymentIntentID); err != nil {
			s.logger.Error("Cancel: failed to cancel payment intent %s for booking id=%d: %v",
				*booking.PaymentIntentID, bookingID, err)
		}
	}

	cancelled, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.notifyCancellation(ctx, cancelled)

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	return models.FromDomainBooking(cancelled), nil
}

// RespondParticipation фиксирует ответ участника на приглашение
func (s *Service) RespondParticipation(ctx context.Context, req *models.RespondParticipationRequest) (*models.BookingResponse, error) {
	s.logger.Info("RespondParticipation: booking id=%d user=%d status=%s", req.BookingID, req.UserID, req.Status)

	status, err := models.ToDomainParticipantStatus(req.Status)
	if err != nil {
		s.logger.Warn("RespondParticipation: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("RespondParticipation: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: RespondParticipation - repository error: %v", ErrInternal, err)
	}

	if !booking.IsActive() {
		s.logger.Warn("RespondParticipation: booking id=%d is not active", req.BookingID)
		return nil, ErrBookingNotActive
	}

	participant, err := s.bookingRepo.GetParticipant(ctx, req.BookingID, req.UserID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		s.logger.Error("RespondParticipation: repository error for participant user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: RespondParticipation - repository error: %v", ErrInternal, err)
	}

	if !participant.CanRespond() {
		s.logger.Warn("RespondParticipation: participant user=%d already responded with %s", req.UserID, participant.Status)
		return nil, ErrAlreadyResponded
	}

	if err := s.bookingRepo.UpdateParticipantStatus(ctx, req.BookingID, req.UserID, status); err != nil {
		s.logger.Error("RespondParticipation: failed to update participant user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: RespondParticipation - repository error: %v", ErrInternal, err)
	}

	s.notifyParticipantResponse(ctx, booking, req.UserID, status == domain.ParticipantAccepted)

	participants, err := s.bookingRepo.GetParticipants(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("RespondParticipation: failed to reload participants: %v", err)
		return nil, fmt.Errorf("%w: RespondParticipation - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingWithParticipants(booking, participants), nil
}

// checkBookingAccess проверяет доступ пользователя к бронированию
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, participants []*domain.Participant, callerID int64) error {
	if booking.UserID == callerID {
		return nil
	}

	for _, p := range participants {
		if p.UserID == callerID {
			return nil
		}
	}

	admin, err := s.isAdmin(ctx, callerID)
	if err != nil {
		return err
	}
	if admin {
		return nil
	}

	return ErrAccessDenied
}

// checkCancellationNotice проверяет, что до начала игры осталось
// не меньше настроенного срока отмены
func (s *Service) checkCancellationNotice(ctx context.Context, booking *domain.Booking) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			settings = domain.DefaultClubSettings()
		} else {
			s.logger.Error("Cancel: failed to load settings: %v", err)
			return fmt.Errorf("%w: Cancel - settings error: %v", ErrInternal, err)
		}
	}

	if settings.CancellationNoticeHours <= 0 {
		return nil
	}

	startAt, err := booking.StartTime.At(booking.BookingDate)
	if err != nil {
		return fmt.Errorf("%w: Cancel - invalid booking start time: %v", ErrInternal, err)
	}

	deadline := startAt.Add(-time.Duration(settings.CancellationNoticeHours) * time.Hour)
	if s.timeProvider.Now().After(deadline) {
		s.logger.Warn("Cancel: booking id=%d past cancellation deadline %s", booking.ID, deadline)
		return ErrCancellationTooLate
	}

	return nil
}

// isAdmin проверяет, является ли пользователь администратором клуба
func (s *Service) isAdmin(ctx context.Context, userID int64) (bool, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return false, nil
		}
		s.logger.Error("isAdmin: failed to load profile user=%d: %v", userID, err)
		return false, fmt.Errorf("%w: profile lookup error: %v", ErrInternal, err)
	}
	return profile.IsAdmin(), nil
}

// notifyCancellation отправляет уведомления об отмене best-effort
func (s *Service) notifyCancellation(ctx context.Context, booking *domain.Booking) {
	court, err := s.courtRepo.GetByID(ctx, booking.CourtID)
	if err != nil {
		s.logger.Error("notifyCancellation: failed to load court id=%d: %v", booking.CourtID, err)
		court = nil
	}

	organizer, err := s.profileRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("notifyCancellation: failed to load organizer user=%d: %v", booking.UserID, err)
		return
	}

	participants, err := s.bookingRepo.GetParticipants(ctx, booking.ID)
	if err != nil {
		s.logger.Error("notifyCancellation: failed to load participants: %v", err)
		participants = nil
	}

	ids := make([]int64, 0, len(participants))
	for _, p := range participants {
		if p.Status != domain.ParticipantDeclined {
			ids = append(ids, p.UserID)
		}
	}

	profiles, err := s.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("notifyCancellation: failed to load participant profiles: %v", err)
		profiles = nil
	}

	s.notifier.BookingCancelled(ctx, booking, court, organizer, profiles)
}

// notifyParticipantResponse уведомляет организатора об ответе участника best-effort
func (s *Service) notifyParticipantResponse(ctx context.Context, booking *domain.Booking, participantID int64, accepted bool) {
	court, err := s.courtRepo.GetByID(ctx, booking.CourtID)
	if err != nil {
		s.logger.Error("notifyParticipantResponse: failed to load court id=%d: %v", booking.CourtID, err)
		court = nil
	}

	organizer, err := s.profileRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("notifyParticipantResponse: failed to load organizer user=%d: %v", booking.UserID, err)
		return
	}

	participant, err := s.profileRepo.GetByID(ctx, participantID)
	if err != nil {
		s.logger.Error("notifyParticipantResponse: failed to load participant user=%d: %v", participantID, err)
		return
	}

	s.notifier.ParticipantResponded(ctx, booking, court, organizer, participant, accepted)
}
