package expire_unpaid_bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelio/PDL-BookingService/internal/domain"
	courtRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/court"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
)

// --- Фейки зависимостей ---

type fakeBookingRepo struct {
	expired        []*domain.Booking
	cancelledIDs   []int64
	cancelledCount int64
	participants   map[int64][]*domain.Participant
}

func (f *fakeBookingRepo) GetExpiredUnpaid(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.expired, nil
}

func (f *fakeBookingRepo) CancelBulk(_ context.Context, ids []int64) (int64, error) {
	f.cancelledIDs = ids
	if f.cancelledCount >= 0 {
		return f.cancelledCount, nil
	}
	return int64(len(ids)), nil
}

func (f *fakeBookingRepo) GetParticipants(_ context.Context, bookingID int64) ([]*domain.Participant, error) {
	return f.participants[bookingID], nil
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

type cancelledCall struct {
	booking      *domain.Booking
	participants []*domain.Profile
}

type fakeNotifier struct {
	cancelled []cancelledCall
}

func (f *fakeNotifier) BookingCancelled(_ context.Context, booking *domain.Booking, _ *domain.Court, _ *domain.Profile, participants []*domain.Profile) {
	f.cancelled = append(f.cancelled, cancelledCall{booking: booking, participants: participants})
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
	bookingRepo  *fakeBookingRepo
	courtRepo    *fakeCourtRepo
	profileRepo  *fakeProfileRepo
	settingsRepo *fakeSettingsRepo
	notifier     *fakeNotifier
	useCase      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookingRepo: &fakeBookingRepo{
			cancelledCount: -1, // по умолчанию отменяется вся пачка
			participants:   map[int64][]*domain.Participant{},
		},
		courtRepo: &fakeCourtRepo{courts: map[int64]*domain.Court{
			1: {ID: 1, Name: "Terrain 1", Capacity: 4, PriceCents: 2000, IsActive: true},
		}},
		profileRepo: &fakeProfileRepo{profiles: map[int64]*domain.Profile{
			1:  {ID: 1, Role: domain.RoleAdmin},
			10: {ID: 10, Role: domain.RolePlayer},
			20: {ID: 20, Role: domain.RolePlayer},
			21: {ID: 21, Role: domain.RolePlayer},
		}},
		settingsRepo: &fakeSettingsRepo{settings: &domain.ClubSettings{
			GameDurationMinutes: 90,
			PaymentTimeoutHours: 24,
		}},
		notifier: &fakeNotifier{},
	}

	f.useCase = NewUseCase(
		f.bookingRepo,
		f.courtRepo,
		f.profileRepo,
		f.settingsRepo,
		f.notifier,
		fakeTxManager{},
		nopLogger{},
	)
	f.useCase.timeProvider = fixedTime{now: time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)}

	return f
}

func unpaidBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CourtID:       1,
		UserID:        10,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPending,
	}
}

// --- Тесты ---

func TestExecute_CancelsExpiredBookings(t *testing.T) {
	f := newFixture()
	f.bookingRepo.expired = []*domain.Booking{unpaidBooking(5), unpaidBooking(6)}
	f.bookingRepo.participants[5] = []*domain.Participant{
		{BookingID: 5, UserID: 20, Status: domain.ParticipantAccepted},
		{BookingID: 5, UserID: 21, Status: domain.ParticipantDeclined},
	}

	resp, err := f.useCase.Execute(context.Background(), &Request{CallerID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Count)
	assert.Equal(t, []int64{5, 6}, resp.BookingIDs)
	assert.Equal(t, []int64{5, 6}, f.bookingRepo.cancelledIDs)

	require.Len(t, f.notifier.cancelled, 2)
	first := f.notifier.cancelled[0]
	assert.Equal(t, domain.StatusCancelled, first.booking.Status)
	assert.Equal(t, domain.PaymentCancelled, first.booking.PaymentStatus)

	// Отказавшиеся участники не уведомляются
	require.Len(t, first.participants, 1)
	assert.Equal(t, int64(20), first.participants[0].ID)
}

func TestExecute_NothingToCancel(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), &Request{CallerID: 1})
	require.NoError(t, err)

	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.BookingIDs)
	assert.Empty(t, f.notifier.cancelled)
}

func TestExecute_SettingsNotConfigured(t *testing.T) {
	f := newFixture()
	f.settingsRepo.settings = nil

	_, err := f.useCase.Execute(context.Background(), &Request{CallerID: 1})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestExecute_NonAdminDenied(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{CallerID: 10})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_ConcurrentModificationRollsBack(t *testing.T) {
	f := newFixture()
	f.bookingRepo.expired = []*domain.Booking{unpaidBooking(5), unpaidBooking(6)}
	f.bookingRepo.cancelledCount = 1 // одна из двух уже изменилась

	_, err := f.useCase.Execute(context.Background(), &Request{CallerID: 1})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.notifier.cancelled)
}
