package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelio/PDL-BookingService/internal/domain"
	bookingRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/court"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
	"github.com/padelio/PDL-BookingService/internal/service/bookings/models"
	"github.com/padelio/PDL-BookingService/pkg/ptr"
	"github.com/padelio/PDL-BookingService/pkg/types"
)

// --- Фейки зависимостей ---

type fakeBookingRepo struct {
	bookings           map[int64]*domain.Booking
	participants       map[int64][]*domain.Participant
	cancelled          []int64
	cancelledStatus    domain.PaymentStatus
	updatedParticipant *domain.ParticipantStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for id := int64(1); id <= int64(len(f.bookings))+10; id++ {
		b, ok := f.bookings[id]
		if !ok || b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.bookings))
	for id := int64(1); id <= int64(len(f.bookings))+10; id++ {
		if b, ok := f.bookings[id]; ok {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, paymentStatus domain.PaymentStatus) error {
	booking, ok := f.bookings[id]
	if !ok || booking.Status != domain.StatusConfirmed {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = domain.StatusCancelled
	booking.PaymentStatus = paymentStatus
	f.cancelled = append(f.cancelled, id)
	f.cancelledStatus = paymentStatus
	return nil
}

func (f *fakeBookingRepo) GetParticipants(_ context.Context, bookingID int64) ([]*domain.Participant, error) {
	return f.participants[bookingID], nil
}

func (f *fakeBookingRepo) GetParticipant(_ context.Context, bookingID, userID int64) (*domain.Participant, error) {
	for _, p := range f.participants[bookingID] {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, bookingRepo.ErrParticipantNotFound
}

func (f *fakeBookingRepo) UpdateParticipantStatus(_ context.Context, bookingID, userID int64, status domain.ParticipantStatus) error {
	for _, p := range f.participants[bookingID] {
		if p.UserID == userID {
			p.Status = status
			f.updatedParticipant = &status
			return nil
		}
	}
	return bookingRepo.ErrParticipantNotFound
}

type fakeCourtRepo struct {
	courts map[int64]*domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	court, ok := f.courts[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	return court, nil
}

type fakeProfileRepo struct {
	profiles map[int64]*domain.Profile
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id int64) (*domain.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Profile, error) {
	result := make([]*domain.Profile, 0, len(ids))
	for _, id := range ids {
		if profile, ok := f.profiles[id]; ok {
			result = append(result, profile)
		}
	}
	return result, nil
}

type fakeSettingsRepo struct {
	settings *domain.ClubSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ClubSettings, error) {
	if f.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return f.settings, nil
}

type fakePaymentClient struct {
	cancelledIntents []string
}

func (f *fakePaymentClient) CancelIntent(_ context.Context, intentID string) error {
	f.cancelledIntents = append(f.cancelledIntents, intentID)
	return nil
}

type fakeNotifier struct {
	cancelledBookings []int64
	responses         []bool
}

func (f *fakeNotifier) BookingCancelled(_ context.Context, booking *domain.Booking, _ *domain.Court, _ *domain.Profile, _ []*domain.Profile) {
	f.cancelledBookings = append(f.cancelledBookings, booking.ID)
}

func (f *fakeNotifier) ParticipantResponded(_ context.Context, _ *domain.Booking, _ *domain.Court, _ *domain.Profile, _ *domain.Profile, accepted bool) {
	f.responses = append(f.responses, accepted)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Фикстуры ---

type fixture struct {
	bookingRepo   *fakeBookingRepo
	profileRepo   *fakeProfileRepo
	settingsRepo  *fakeSettingsRepo
	paymentClient *fakePaymentClient
	notifier      *fakeNotifier
	service       *Service
}

// Игра 15 июля в 18:00, "сейчас" утро того же дня
var (
	gameDate = time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 7, 15, 9, 0, 0, 0, time.UTC)
)

func newFixture() *fixture {
	f := &fixture{
		bookingRepo: &fakeBookingRepo{
			bookings:     map[int64]*domain.Booking{},
			participants: map[int64][]*domain.Participant{},
		},
		profileRepo: &fakeProfileRepo{profiles: map[int64]*domain.Profile{
			1:  {ID: 1, Role: domain.RoleAdmin},
			10: {ID: 10, Role: domain.RolePlayer},
			20: {ID: 20, Role: domain.RolePlayer},
			30: {ID: 30, Role: domain.RolePlayer},
		}},
		settingsRepo: &fakeSettingsRepo{settings: &domain.ClubSettings{
			GameDurationMinutes:     90,
			PaymentTimeoutHours:     24,
			CancellationNoticeHours: 2,
		}},
		paymentClient: &fakePaymentClient{},
		notifier:      &fakeNotifier{},
	}

	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, Name: "Terrain 1", Capacity: 4, PriceCents: 2000, IsActive: true},
	}}

	f.service = NewService(
		f.bookingRepo,
		courts,
		f.profileRepo,
		f.settingsRepo,
		f.paymentClient,
		f.notifier,
		nopLogger{},
	)
	f.service.timeProvider = fixedTime{now: testNow}

	return f
}

func (f *fixture) addBooking(id, organizerID int64, start types.TimeString) *domain.Booking {
	end, _ := start.AddMinutes(90)
	booking := &domain.Booking{
		ID:               id,
		CourtID:          1,
		UserID:           organizerID,
		BookingDate:      gameDate,
		StartTime:        start,
		EndTime:          end,
		PlayersCount:     2,
		Status:           domain.StatusConfirmed,
		PaymentStatus:    domain.PaymentPending,
		TotalAmountCents: 2000,
		BookingCode:      "PB-1A2B3C4D",
		PaymentIntentID:  ptr.Ptr("pi_123"),
	}
	f.bookingRepo.bookings[id] = booking
	return booking
}

// --- Тесты ---

func TestGetByID_OrganizerSeesBooking(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")
	f.bookingRepo.participants[5] = []*domain.Participant{
		{BookingID: 5, UserID: 20, Status: domain.ParticipantPending},
	}

	resp, err := f.service.GetByID(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	require.Len(t, resp.Participants, 1)
}

func TestGetByID_ParticipantSeesBooking(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")
	f.bookingRepo.participants[5] = []*domain.Participant{
		{BookingID: 5, UserID: 20, Status: domain.ParticipantAccepted},
	}

	_, err := f.service.GetByID(context.Background(), 5, 20)
	assert.NoError(t, err)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")

	_, err := f.service.GetByID(context.Background(), 5, 30)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminSeesAnyBooking(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")

	_, err := f.service.GetByID(context.Background(), 5, 1)
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetByID(context.Background(), 404, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_OwnHistory(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")
	f.addBooking(6, 10, "10:00")
	f.addBooking(7, 20, "12:00")

	resp, err := f.service.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10, CallerID: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetUserBookings_ForeignHistoryDenied(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10, CallerID: 20})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_AdminSeesForeignHistory(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")

	resp, err := f.service.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10, CallerID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10, CallerID: 10, Status: ptr.Ptr("expired"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetClubBookings_NonAdminDenied(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetClubBookings(context.Background(), &models.GetClubBookingsRequest{CallerID: 10})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_OrganizerCancelsInTime(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00") // дедлайн 16:00, сейчас 09:00

	resp, err := f.service.Cancel(context.Background(), 5, 10)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.PaymentCancelled, f.bookingRepo.cancelledStatus)
	assert.Equal(t, []string{"pi_123"}, f.paymentClient.cancelledIntents)
	assert.Equal(t, []int64{5}, f.notifier.cancelledBookings)
}

func TestCancel_TooLate(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "10:00") // дедлайн 08:00, сейчас 09:00

	_, err := f.service.Cancel(context.Background(), 5, 10)
	assert.ErrorIs(t, err, ErrCancellationTooLate)
	assert.Empty(t, f.bookingRepo.cancelled)
}

func TestCancel_AdminBypassesNotice(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "10:00")

	_, err := f.service.Cancel(context.Background(), 5, 1)
	assert.NoError(t, err)
	assert.Equal(t, []int64{5}, f.bookingRepo.cancelled)
}

func TestCancel_StrangerDenied(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")

	_, err := f.service.Cancel(context.Background(), 5, 20)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	f := newFixture()
	booking := f.addBooking(5, 10, "18:00")
	booking.Status = domain.StatusCancelled

	_, err := f.service.Cancel(context.Background(), 5, 10)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_DefaultNoticeWithoutSettings(t *testing.T) {
	f := newFixture()
	f.settingsRepo.settings = nil
	f.addBooking(5, 10, "10:00") // дефолтный срок отмены тоже 2 часа

	_, err := f.service.Cancel(context.Background(), 5, 10)
	assert.ErrorIs(t, err, ErrCancellationTooLate)
}

func TestRespondParticipation_Accept(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")
	f.bookingRepo.participants[5] = []*domain.Participant{
		{BookingID: 5, UserID: 20, Status: domain.ParticipantPending},
	}

	resp, err := f.service.RespondParticipation(context.Background(), &models.RespondParticipationRequest{
		BookingID: 5, UserID: 20, Status: "accepted",
	})
	require.NoError(t, err)

	require.NotNil(t, f.bookingRepo.updatedParticipant)
	assert.Equal(t, domain.ParticipantAccepted, *f.bookingRepo.updatedParticipant)
	assert.Equal(t, []bool{true}, f.notifier.responses)
	require.Len(t, resp.Participants, 1)
	assert.Equal(t, string(domain.ParticipantAccepted), resp.Participants[0].Status)
}

func TestRespondParticipation_AlreadyResponded(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")
	f.bookingRepo.participants[5] = []*domain.Participant{
		{BookingID: 5, UserID: 20, Status: domain.ParticipantDeclined},
	}

	_, err := f.service.RespondParticipation(context.Background(), &models.RespondParticipationRequest{
		BookingID: 5, UserID: 20, Status: "accepted",
	})
	assert.ErrorIs(t, err, ErrAlreadyResponded)
}

func TestRespondParticipation_NotInvited(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")

	_, err := f.service.RespondParticipation(context.Background(), &models.RespondParticipationRequest{
		BookingID: 5, UserID: 30, Status: "declined",
	})
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestRespondParticipation_CancelledBooking(t *testing.T) {
	f := newFixture()
	booking := f.addBooking(5, 10, "18:00")
	booking.Status = domain.StatusCancelled

	_, err := f.service.RespondParticipation(context.Background(), &models.RespondParticipationRequest{
		BookingID: 5, UserID: 20, Status: "accepted",
	})
	assert.ErrorIs(t, err, ErrBookingNotActive)
}

func TestRespondParticipation_InvalidStatus(t *testing.T) {
	f := newFixture()
	f.addBooking(5, 10, "18:00")

	_, err := f.service.RespondParticipation(context.Background(), &models.RespondParticipationRequest{
		BookingID: 5, UserID: 20, Status: "maybe",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
