package courts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelio/PDL-BookingService/internal/domain"
	courtRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/court"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	"github.com/padelio/PDL-BookingService/internal/service/courts/models"
	"github.com/padelio/PDL-BookingService/pkg/ptr"
)

// --- Фейки зависимостей ---

type fakeCourtRepo struct {
	courts      map[int64]*domain.Court
	nextID      int64
	updated     *domain.Court
	deactivated int64
}

func (f *fakeCourtRepo) Create(_ context.Context, court *domain.Court) (*domain.Court, error) {
	f.nextID++
	court.ID = f.nextID
	f.courts[court.ID] = court
	return court, nil
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
	for id := int64(1); id <= f.nextID; id++ {
		court, ok := f.courts[id]
		if !ok || (onlyActive && !court.IsActive) {
			continue
		}
		result = append(result, court)
	}
	return result, nil
}

func (f *fakeCourtRepo) Update(_ context.Context, court *domain.Court) error {
	if _, ok := f.courts[court.ID]; !ok {
		return courtRepo.ErrCourtNotFound
	}
	f.courts[court.ID] = court
	f.updated = court
	return nil
}

func (f *fakeCourtRepo) Deactivate(_ context.Context, id int64) error {
	court, ok := f.courts[id]
	if !ok {
		return courtRepo.ErrCourtNotFound
	}
	court.IsActive = false
	f.deactivated = id
	return nil
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
	courtRepo *fakeCourtRepo
	service   *Service
}

func newFixture() *fixture {
	f := &fixture{
		courtRepo: &fakeCourtRepo{courts: map[int64]*domain.Court{}},
	}

	profiles := &fakeProfileRepo{profiles: map[int64]*domain.Profile{
		1:  {ID: 1, Role: domain.RoleAdmin},
		10: {ID: 10, Role: domain.RolePlayer},
	}}

	f.service = NewService(f.courtRepo, profiles, nopLogger{})
	return f
}

func (f *fixture) addCourt(name string, active bool) *domain.Court {
	f.courtRepo.nextID++
	court := &domain.Court{
		ID: f.courtRepo.nextID, Name: name, Capacity: 4, PriceCents: 2000, IsActive: active,
	}
	f.courtRepo.courts[court.ID] = court
	return court
}

// --- Тесты ---

func TestList_OnlyActiveCourts(t *testing.T) {
	f := newFixture()
	f.addCourt("Terrain 1", true)
	f.addCourt("Terrain 2", false)

	resp, err := f.service.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Courts, 1)
	assert.Equal(t, "Terrain 1", resp.Courts[0].Name)
}

func TestCreate_AdminCreatesCourt(t *testing.T) {
	f := newFixture()

	resp, err := f.service.Create(context.Background(), &models.CreateCourtRequest{
		CallerID: 1,
		Name:     "  Terrain central  ",
		Capacity: 4,
		Price:    2500,
	})
	require.NoError(t, err)

	assert.Equal(t, "Terrain central", resp.Name)
	assert.True(t, resp.IsActive)
}

func TestCreate_NonAdminDenied(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), &models.CreateCourtRequest{
		CallerID: 10, Name: "Terrain", Capacity: 4, Price: 2000,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_InvalidCapacity(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), &models.CreateCourtRequest{
		CallerID: 1, Name: "Terrain", Capacity: 10, Price: 2000,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PartialUpdate(t *testing.T) {
	f := newFixture()
	f.addCourt("Terrain 1", true)

	resp, err := f.service.Update(context.Background(), &models.UpdateCourtRequest{
		CallerID: 1,
		CourtID:  1,
		Price:    ptr.Ptr(int64(3000)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Terrain 1", resp.Name)
	assert.Equal(t, int64(3000), resp.Price)
}

func TestUpdate_UnknownCourt(t *testing.T) {
	f := newFixture()

	_, err := f.service.Update(context.Background(), &models.UpdateCourtRequest{
		CallerID: 1, CourtID: 404, Name: ptr.Ptr("X"),
	})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestDeactivate_RemovesFromActiveList(t *testing.T) {
	f := newFixture()
	f.addCourt("Terrain 1", true)

	err := f.service.Deactivate(context.Background(), 1, 1)
	require.NoError(t, err)

	resp, err := f.service.List(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
}

func TestDeactivate_NonAdminDenied(t *testing.T) {
	f := newFixture()
	f.addCourt("Terrain 1", true)

	err := f.service.Deactivate(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
