package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelio/PDL-BookingService/internal/domain"
	courtRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/court"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
	"github.com/padelio/PDL-BookingService/internal/integrations/paymentservice"
	"github.com/padelio/PDL-BookingService/pkg/types"
)

// --- Фейки зависимостей ---

type fakeBookingRepo struct {
	existing        []*domain.Booking
	created         *domain.Booking
	createErr       error
	participants    []int64
	paymentIntentID string
	nextID          int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *booking
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) AddParticipants(_ context.Context, bookingID int64, userIDs []int64) ([]*domain.Participant, error) {
	f.participants = userIDs
	result := make([]*domain.Participant, 0, len(userIDs))
	for _, id := range userIDs {
		result = append(result, &domain.Participant{BookingID: bookingID, UserID: id, Status: domain.ParticipantPending})
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdatePaymentIntent(_ context.Context, _ int64, intentID string) error {
	f.paymentIntentID = intentID
	return nil
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

type fakeScheduleRepo struct {
	hours    []*domain.OpeningHours
	holidays []*domain.Holiday
}

func (f *fakeScheduleRepo) GetOpeningHours(_ context.Context) ([]*domain.OpeningHours, error) {
	return f.hours, nil
}

func (f *fakeScheduleRepo) GetHolidaysInRange(_ context.Context, _, _ time.Time) ([]*domain.Holiday, error) {
	return f.holidays, nil
}

type fakePromotionRepo struct {
	promotions []*domain.Promotion
}

func (f *fakePromotionRepo) GetActiveOn(_ context.Context, _ time.Time) ([]*domain.Promotion, error) {
	return f.promotions, nil
}

type fakeSettingsRepo struct {
	settings *domain.ClubSettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ClubSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
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
		if p, ok := f.profiles[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakePaymentClient struct {
	intent *paymentservice.Intent
	err    error
	calls  int
}

func (f *fakePaymentClient) CreateIntent(_ context.Context, _ int64, _ int64) (*paymentservice.Intent, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.intent, nil
}

type fakeNotifier struct {
	createdCalls int
}

func (f *fakeNotifier) BookingCreated(_ context.Context, _ *domain.Booking, _ *domain.Court, _ *domain.Profile, _ []*domain.Profile) {
	f.createdCalls++
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

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Фикстуры ---

type fixture struct {
	bookingRepo   *fakeBookingRepo
	courtRepo     *fakeCourtRepo
	scheduleRepo  *fakeScheduleRepo
	promotionRepo *fakePromotionRepo
	settingsRepo  *fakeSettingsRepo
	profileRepo   *fakeProfileRepo
	paymentClient *fakePaymentClient
	notifier      *fakeNotifier
	useCase       *UseCase
}

func allWeekHours() []*domain.OpeningHours {
	hours := make([]*domain.OpeningHours, 0, 7)
	for day := 0; day < 7; day++ {
		hours = append(hours, &domain.OpeningHours{DayOfWeek: day, OpenTime: "09:00", CloseTime: "22:00"})
	}
	return hours
}

func newFixture() *fixture {
	f := &fixture{
		bookingRepo:  &fakeBookingRepo{nextID: 42},
		courtRepo:    &fakeCourtRepo{courts: map[int64]*domain.Court{}},
		scheduleRepo: &fakeScheduleRepo{hours: allWeekHours()},
		promotionRepo: &fakePromotionRepo{},
		settingsRepo: &fakeSettingsRepo{settings: &domain.ClubSettings{
			GameDurationMinutes:     90,
			PaymentTimeoutHours:     24,
			CancellationNoticeHours: 2,
		}},
		profileRepo:   &fakeProfileRepo{profiles: map[int64]*domain.Profile{}},
		paymentClient: &fakePaymentClient{intent: &paymentservice.Intent{ID: "pi_123", ClientSecret: "secret_123"}},
		notifier:      &fakeNotifier{},
	}

	f.courtRepo.courts[1] = &domain.Court{ID: 1, Name: "Terrain 1", Capacity: 4, PriceCents: 2000, IsActive: true}
	f.profileRepo.profiles[10] = &domain.Profile{ID: 10, Username: "orga", Email: "orga@club.fr", Role: domain.RolePlayer}
	f.profileRepo.profiles[20] = &domain.Profile{ID: 20, Username: "invite", Email: "invite@club.fr", Role: domain.RolePlayer}
	f.profileRepo.profiles[99] = &domain.Profile{ID: 99, Username: "admin", Role: domain.RoleAdmin}

	f.useCase = NewUseCase(
		f.bookingRepo,
		f.courtRepo,
		f.scheduleRepo,
		f.promotionRepo,
		f.settingsRepo,
		f.profileRepo,
		f.paymentClient,
		f.notifier,
		fakeTxManager{},
		nopLogger{},
	)
	f.useCase.timeProvider = fixedTime{now: time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)}

	return f
}

func validRequest() *Request {
	return &Request{
		UserID:    10,
		CourtID:   1,
		Date:      time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:30"),
	}
}

// --- Тесты ---

func TestExecute_CreatesPaidBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "pending_payment", resp.PaymentStatus)
	assert.Equal(t, int64(2000), resp.TotalAmount)
	assert.Equal(t, "12:00", resp.EndTime)
	assert.NotEmpty(t, resp.BookingCode)

	require.NotNil(t, resp.PaymentClientSecret)
	assert.Equal(t, "secret_123", *resp.PaymentClientSecret)
	assert.Equal(t, "pi_123", f.bookingRepo.paymentIntentID)
	assert.Equal(t, 1, f.notifier.createdCalls)
}

func TestExecute_AppliesPromotion(t *testing.T) {
	f := newFixture()
	f.promotionRepo.promotions = []*domain.Promotion{{
		ID:            5,
		Name:          "Été -20%",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 20,
		StartDate:     time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	}}

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1600), resp.TotalAmount)
	require.NotNil(t, resp.OriginalAmount)
	assert.Equal(t, int64(2000), *resp.OriginalAmount)
	require.NotNil(t, resp.PromotionDiscount)
	assert.Equal(t, int64(400), *resp.PromotionDiscount)
}

func TestExecute_AdminBookingIsFree(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.UserID = 99

	resp, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.CreatedByAdmin)
	assert.Zero(t, resp.TotalAmount)
	assert.Equal(t, "confirmed", resp.PaymentStatus)
	assert.Nil(t, resp.PaymentClientSecret)
	assert.Zero(t, f.paymentClient.calls)
}

func TestExecute_ClubClosed(t *testing.T) {
	f := newFixture()
	f.scheduleRepo.holidays = []*domain.Holiday{{
		Date:   time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		Reason: "Fermeture annuelle",
	}}

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClubClosed)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	f.bookingRepo.existing = []*domain.Booking{{
		ID: 7, CourtID: 1, StartTime: "10:00", EndTime: "11:30", Status: domain.StatusConfirmed,
	}}

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_AdjacentSlotDoesNotConflict(t *testing.T) {
	f := newFixture()
	f.bookingRepo.existing = []*domain.Booking{{
		ID: 7, CourtID: 1, StartTime: "09:00", EndTime: "10:30", Status: domain.StatusConfirmed,
	}}

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_OutsideOpeningHours(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = types.TimeString("21:00") // игра закончилась бы в 22:30

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOpeningHours)
}

func TestExecute_GameCrossingMidnightRejected(t *testing.T) {
	f := newFixture()
	for _, oh := range f.scheduleRepo.hours {
		oh.OpenTime = "21:00"
		oh.CloseTime = "23:59"
	}

	req := validRequest()
	req.StartTime = types.TimeString("23:00") // номинальный конец 00:30 следующих суток

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOpeningHours)
}

func TestExecute_CapacityChecksDedupedParticipants(t *testing.T) {
	f := newFixture()
	f.profileRepo.profiles[21] = &domain.Profile{ID: 21, Role: domain.RolePlayer}
	f.profileRepo.profiles[22] = &domain.Profile{ID: 22, Role: domain.RolePlayer}

	req := validRequest()
	// Дубликаты и сам организатор не считаются игроками
	req.Participants = []int64{20, 20, 10, 21, 22}

	resp, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.PlayersCount)
	assert.Equal(t, []int64{20, 21, 22}, f.bookingRepo.participants)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	f := newFixture()
	f.courtRepo.courts[1].Capacity = 2
	f.profileRepo.profiles[21] = &domain.Profile{ID: 21, Role: domain.RolePlayer}

	req := validRequest()
	req.Participants = []int64{20, 21}

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_UnknownParticipant(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Participants = []int64{777}

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestExecute_InactiveCourt(t *testing.T) {
	f := newFixture()
	f.courtRepo.courts[1].IsActive = false

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_PaymentIntentFailureKeepsBooking(t *testing.T) {
	f := newFixture()
	f.paymentClient.err = errors.New("provider unavailable")

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Бронирование создано и ждет оплаты, client secret отсутствует
	assert.Equal(t, "pending_payment", resp.PaymentStatus)
	assert.Nil(t, resp.PaymentClientSecret)
	assert.Equal(t, 1, f.notifier.createdCalls)
}

func TestExecute_DefaultDurationWithoutSettings(t *testing.T) {
	f := newFixture()
	f.settingsRepo.settings = nil
	f.settingsRepo.err = settingsRepo.ErrSettingsNotFound

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 90 минут по умолчанию
	assert.Equal(t, "12:00", resp.EndTime)
}
