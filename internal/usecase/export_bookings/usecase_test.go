package export_bookings

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/padelio/PDL-BookingService/internal/domain"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
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
	courts []*domain.Court
}

func (f *fakeCourtRepo) List(_ context.Context, _ bool) ([]*domain.Court, error) {
	return f.courts, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Фикстуры ---

type fixture struct {
	bookingRepo *fakeBookingRepo
	profileRepo *fakeProfileRepo
	useCase     *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookingRepo: &fakeBookingRepo{},
		profileRepo: &fakeProfileRepo{profiles: map[int64]*domain.Profile{
			1:  {ID: 1, Role: domain.RoleAdmin},
			10: {ID: 10, Role: domain.RolePlayer, Username: "jdupont", LastName: "Dupont", FirstName: "Jean", Email: "jean@example.com", Phone: "+33600000000"},
		}},
	}

	courtRepo := &fakeCourtRepo{courts: []*domain.Court{
		{ID: 1, Name: "Terrain 1", Capacity: 4, PriceCents: 2000, IsActive: true},
	}}

	f.useCase = NewUseCase(f.bookingRepo, courtRepo, f.profileRepo, nopLogger{})
	return f
}

var (
	exportStart = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	exportEnd   = time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
)

func exportRequest() *Request {
	return &Request{CallerID: 1, StartDate: exportStart, EndDate: exportEnd}
}

// --- Тесты ---

func TestExecute_BuildsWorkbook(t *testing.T) {
	f := newFixture()
	f.bookingRepo.bookings = []*domain.Booking{{
		ID:                  5,
		CourtID:             1,
		UserID:              10,
		BookingCode:         "PB-1A2B3C4D",
		BookingDate:         time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		StartTime:           "10:30",
		EndTime:             "12:00",
		Status:              domain.StatusConfirmed,
		PaymentStatus:       domain.PaymentPending,
		TotalAmountCents:    1600,
		OriginalAmountCents: ptr.Ptr(int64(2000)),
		PromotionDiscount:   ptr.Ptr(int64(400)),
		AmountPaidCents:     0,
	}}

	resp, err := f.useCase.Execute(context.Background(), exportRequest())
	require.NoError(t, err)

	assert.Equal(t, "reservations_2026-07-01_2026-07-31.xlsx", resp.FileName)
	require.NotEmpty(t, resp.Content)

	// Читаем книгу обратно и проверяем содержимое
	wb, err := excelize.OpenReader(bytes.NewReader(resp.Content))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, exportColumns, rows[0])
	assert.Equal(t, []string{
		"2026-07-15",
		"10:30 - 12:00",
		"Terrain 1",
		"PB-1A2B3C4D",
		"jdupont",
		"Dupont",
		"Jean",
		"jean@example.com",
		"+33600000000",
		"20,00",
		"4,00",
		"16,00",
		"0,00",
	}, rows[1])
}

func TestExecute_EmptyPeriodStillExports(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), exportRequest())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(resp.Content))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1) // только заголовки
}

func TestExecute_InvalidPeriod(t *testing.T) {
	f := newFixture()

	req := exportRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExecute_NonAdminDenied(t *testing.T) {
	f := newFixture()

	req := exportRequest()
	req.CallerID = 10

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestFormatEuros(t *testing.T) {
	assert.Equal(t, "20,00", formatEuros(2000))
	assert.Equal(t, "16,05", formatEuros(1605))
	assert.Equal(t, "0,00", formatEuros(0))
	assert.Equal(t, "0,07", formatEuros(7))
	assert.Equal(t, "-4,50", formatEuros(-450))
}
