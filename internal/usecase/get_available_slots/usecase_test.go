package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelio/PDL-BookingService/internal/domain"
	courtRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/court"
	settingsRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/settings"
	"github.com/padelio/PDL-BookingService/pkg/ptr"
)

// --- Фейки зависимостей ---

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
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

func (f *fakeCourtRepo) List(_ context.Context, onlyActive bool) ([]*domain.Court, error) {
	result := make([]*domain.Court, 0, len(f.courts))
	for id := int64(1); id <= int64(len(f.courts)); id++ {
		court := f.courts[id]
		if onlyActive && !court.IsActive {
			continue
		}
		result = append(result, court)
	}
	return result, nil
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
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ClubSettings, error) {
	if f.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return f.settings, nil
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
	useCase       *UseCase
}

func newFixture() *fixture {
	hours := make([]*domain.OpeningHours, 0, 7)
	for day := 0; day < 7; day++ {
		hours = append(hours, &domain.OpeningHours{DayOfWeek: day, OpenTime: "09:00", CloseTime: "15:00"})
	}

	f := &fixture{
		bookingRepo:   &fakeBookingRepo{},
		courtRepo:     &fakeCourtRepo{courts: map[int64]*domain.Court{}},
		scheduleRepo:  &fakeScheduleRepo{hours: hours},
		promotionRepo: &fakePromotionRepo{},
		settingsRepo:  &fakeSettingsRepo{settings: &domain.ClubSettings{GameDurationMinutes: 90}},
	}

	f.courtRepo.courts[1] = &domain.Court{ID: 1, Name: "Terrain 1", Capacity: 4, PriceCents: 2000, IsActive: true}
	f.courtRepo.courts[2] = &domain.Court{ID: 2, Name: "Terrain 2", Capacity: 4, PriceCents: 2500, IsActive: true}

	f.useCase = NewUseCase(
		f.bookingRepo,
		f.courtRepo,
		f.scheduleRepo,
		f.promotionRepo,
		f.settingsRepo,
		nopLogger{},
	)

	return f
}

var testDate = time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

// --- Тесты ---

func TestExecute_GeneratesGridForAllCourts(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Equal(t, 90, resp.DurationMinutes)
	require.Len(t, resp.Courts, 2)

	// Окно 09:00-15:00 вмещает четыре слота по 90 минут
	require.Len(t, resp.Courts[0].Slots, 4)
	assert.Equal(t, "09:00", resp.Courts[0].Slots[0].StartTime.String())
	assert.Equal(t, "10:30", resp.Courts[0].Slots[0].EndTime.String())
	for _, slot := range resp.Courts[0].Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_ClosedDay(t *testing.T) {
	f := newFixture()
	f.scheduleRepo.holidays = []*domain.Holiday{{Date: testDate, Reason: "Fermeture annuelle"}}

	resp, err := f.useCase.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Courts)
}

func TestExecute_MarksOccupiedSlots(t *testing.T) {
	f := newFixture()
	f.bookingRepo.bookings = []*domain.Booking{{
		ID: 7, CourtID: 1, StartTime: "10:30", EndTime: "12:00", Status: domain.StatusConfirmed,
	}}

	resp, err := f.useCase.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	court1 := resp.Courts[0]
	assert.True(t, court1.Slots[0].Available)
	assert.False(t, court1.Slots[1].Available)
	require.NotNil(t, court1.Slots[1].BookingID)
	assert.Equal(t, int64(7), *court1.Slots[1].BookingID)

	// Другой корт не затронут
	for _, slot := range resp.Courts[1].Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_AppliesPromotionPrice(t *testing.T) {
	f := newFixture()
	f.promotionRepo.promotions = []*domain.Promotion{{
		ID:            5,
		Name:          "Été -20%",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 20,
		CourtID:       ptr.Ptr(int64(1)),
		StartDate:     testDate.AddDate(0, 0, -5),
		EndDate:       testDate.AddDate(0, 0, 5),
		IsActive:      true,
	}}

	resp, err := f.useCase.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	court1 := resp.Courts[0]
	assert.Equal(t, int64(2000), court1.BasePrice)
	assert.Equal(t, int64(1600), court1.Price)
	require.NotNil(t, court1.PromotionName)
	assert.Equal(t, "Été -20%", *court1.PromotionName)

	// Акция привязана к корту 1 - корт 2 по базовой цене
	court2 := resp.Courts[1]
	assert.Equal(t, court2.BasePrice, court2.Price)
	assert.Nil(t, court2.PromotionName)
}

func TestExecute_FilterByCourt(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), &Request{Date: testDate, CourtID: ptr.Ptr(int64(2))})
	require.NoError(t, err)

	require.Len(t, resp.Courts, 1)
	assert.Equal(t, int64(2), resp.Courts[0].CourtID)
}

func TestExecute_UnknownCourt(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{Date: testDate, CourtID: ptr.Ptr(int64(99))})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_InactiveCourt(t *testing.T) {
	f := newFixture()
	f.courtRepo.courts[2].IsActive = false

	_, err := f.useCase.Execute(context.Background(), &Request{Date: testDate, CourtID: ptr.Ptr(int64(2))})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_DefaultDurationWithoutSettings(t *testing.T) {
	f := newFixture()
	f.settingsRepo.settings = nil

	resp, err := f.useCase.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultGameDurationMinutes, resp.DurationMinutes)
}
