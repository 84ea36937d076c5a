package get_stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelio/PDL-BookingService/internal/domain"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
)

// --- Фейки зависимостей ---

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCourtRepo struct {
	activeCourts int
}

func (f *fakeCourtRepo) CountActive(_ context.Context) (int, error) {
	return f.activeCourts, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Фикстуры ---

type fixture struct {
	bookingRepo  *fakeBookingRepo
	courtRepo    *fakeCourtRepo
	scheduleRepo *fakeScheduleRepo
	profileRepo  *fakeProfileRepo
	useCase      *UseCase
}

func newFixture() *fixture {
	// 10 часов работы = 20 слотов по 30 минут на корт
	hours := make([]*domain.OpeningHours, 0, 7)
	for day := 0; day < 7; day++ {
		hours = append(hours, &domain.OpeningHours{DayOfWeek: day, OpenTime: "09:00", CloseTime: "19:00"})
	}

	f := &fixture{
		bookingRepo:  &fakeBookingRepo{},
		courtRepo:    &fakeCourtRepo{activeCourts: 2},
		scheduleRepo: &fakeScheduleRepo{hours: hours},
		profileRepo: &fakeProfileRepo{profiles: map[int64]*domain.Profile{
			1: {ID: 1, Role: domain.RoleAdmin},
			2: {ID: 2, Role: domain.RolePlayer},
		}},
	}

	f.useCase = NewUseCase(f.bookingRepo, f.courtRepo, f.scheduleRepo, f.profileRepo, nopLogger{})
	return f
}

var (
	periodStart = time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC) // понедельник
	periodEnd   = time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
)

func adminRequest() *Request {
	return &Request{
		CallerID:  1,
		StartDate: periodStart,
		EndDate:   periodEnd,
		GroupBy:   "day",
	}
}

// --- Тесты ---

func TestExecute_AggregatesByDay(t *testing.T) {
	f := newFixture()
	f.bookingRepo.bookings = []*domain.Booking{
		{ID: 1, BookingDate: periodStart, TotalAmountCents: 2000, Status: domain.StatusConfirmed},
		{ID: 2, BookingDate: periodStart, TotalAmountCents: 1600, Status: domain.StatusConfirmed},
		{ID: 3, BookingDate: periodEnd, TotalAmountCents: 600000, Status: domain.StatusConfirmed},
	}

	resp, err := f.useCase.Execute(context.Background(), adminRequest())
	require.NoError(t, err)

	require.Len(t, resp.Buckets, 2)

	first := resp.Buckets[0]
	assert.Equal(t, "2026-07-13", first.Period)
	assert.Equal(t, 2, first.BookingsCount)
	assert.Equal(t, 40, first.TotalSlots) // 20 слотов x 2 корта
	assert.InDelta(t, 5.0, first.OccupancyRate, 0.001)
	assert.InDelta(t, 36.0, first.Revenue, 0.001)

	second := resp.Buckets[1]
	assert.Equal(t, "2026-07-14", second.Period)
	assert.Equal(t, 1, second.BookingsCount)
	assert.InDelta(t, 6000.0, second.Revenue, 0.001)
}

func TestExecute_ClosedDaysContributeZeroCapacity(t *testing.T) {
	f := newFixture()
	f.scheduleRepo.holidays = []*domain.Holiday{{Date: periodEnd, Reason: "Fermeture"}}

	resp, err := f.useCase.Execute(context.Background(), adminRequest())
	require.NoError(t, err)

	require.Len(t, resp.Buckets, 2)
	assert.Equal(t, 40, resp.Buckets[0].TotalSlots)
	assert.Zero(t, resp.Buckets[1].TotalSlots)
	// Нет бронирований и слотов - occupancy 0, деления на ноль нет
	assert.Zero(t, resp.Buckets[1].OccupancyRate)
}

func TestExecute_GroupsByWeek(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.GroupBy = "week"

	resp, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	// Оба дня попадают в неделю понедельника 13 июля
	require.Len(t, resp.Buckets, 1)
	assert.Equal(t, "2026-07-13", resp.Buckets[0].Period)
	assert.Equal(t, 80, resp.Buckets[0].TotalSlots)
}

func TestExecute_InvalidGroupBy(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.GroupBy = "quarter"

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidGroupBy)
}

func TestExecute_InvalidPeriod(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExecute_NonAdminDenied(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.CallerID = 2

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_UnknownCallerDenied(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.CallerID = 777

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
