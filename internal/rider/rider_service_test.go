package rider_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-waterbook/internal/rider"
	ridererrors "go-waterbook/internal/rider/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRiderRepository struct {
	createFn      func(ctx context.Context, r *rider.Rider) error
	findAllFn     func(ctx context.Context) ([]rider.Rider, error)
	findOptionsFn func(ctx context.Context) ([]rider.Rider, error)
	findByIDFn    func(ctx context.Context, id string) (*rider.Rider, error)
	findByNameFn  func(ctx context.Context, name string) (*rider.Rider, error)
	updateFn      func(ctx context.Context, r *rider.Rider) error
}

func (f *fakeRiderRepository) Create(ctx context.Context, r *rider.Rider) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeRiderRepository) FindAll(ctx context.Context) ([]rider.Rider, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRiderRepository) FindOptions(ctx context.Context) ([]rider.Rider, error) {
	if f.findOptionsFn != nil {
		return f.findOptionsFn(ctx)
	}
	return nil, nil
}

func (f *fakeRiderRepository) FindByID(ctx context.Context, id string) (*rider.Rider, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRiderRepository) FindByName(ctx context.Context, name string) (*rider.Rider, error) {
	if f.findByNameFn != nil {
		return f.findByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, r)
	}
	return nil
}

func TestRiderService_Create(t *testing.T) {
	var created *rider.Rider
	repo := &fakeRiderRepository{
		createFn: func(ctx context.Context, r *rider.Rider) error {
			created = r
			return nil
		},
	}

	svc := rider.NewService(repo, nil)

	resp, err := svc.Create(context.Background(), rider.CreateRiderRequest{
		Name:         "Mas Joko",
		PerDaySalary: 900,
	})
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.Equal(t, "Mas Joko", resp.Name)
	assert.Equal(t, 900.0, resp.PerDaySalary)
}

func TestRiderService_GetByID_InvalidID(t *testing.T) {
	svc := rider.NewService(&fakeRiderRepository{}, nil)

	_, err := svc.GetByID(context.Background(), "bukan-uuid")
	assert.Equal(t, ridererrors.ErrInvalidRiderID, err)
}

func TestRiderService_GetByID_NotFound(t *testing.T) {
	svc := rider.NewService(&fakeRiderRepository{}, nil)

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.Equal(t, ridererrors.ErrRiderNotFound, err)
}

func TestRiderService_GetOptions_CacheHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	cached := []rider.RiderResponse{{ID: uuid.New().String(), Name: "Mas Joko", PerDaySalary: 900, IsActive: true}}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	mock.ExpectGet("riders:options").SetVal(string(payload))

	// Repo tidak boleh dipanggil saat cache hit
	repo := &fakeRiderRepository{
		findOptionsFn: func(ctx context.Context) ([]rider.Rider, error) {
			t.Fatal("repo should not be hit on cache hit")
			return nil, nil
		},
	}

	svc := rider.NewService(repo, rdb)

	resp, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRiderService_GetOptions_CacheMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	id := uuid.New()
	rows := []rider.Rider{{ID: id, Name: "Mas Joko", PerDaySalary: 900, IsActive: true}}
	expected := []rider.RiderResponse{{ID: id.String(), Name: "Mas Joko", PerDaySalary: 900, IsActive: true}}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	mock.ExpectGet("riders:options").RedisNil()
	mock.ExpectSet("riders:options", payload, 1*time.Hour).SetVal("OK")

	repo := &fakeRiderRepository{
		findOptionsFn: func(ctx context.Context) ([]rider.Rider, error) {
			return rows, nil
		},
	}

	svc := rider.NewService(repo, rdb)

	resp, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRiderService_Update(t *testing.T) {
	id := uuid.New()
	existing := &rider.Rider{ID: id, Name: "Mas Joko", PerDaySalary: 900, IsActive: true}

	repo := &fakeRiderRepository{
		findByIDFn: func(ctx context.Context, rid string) (*rider.Rider, error) {
			assert.Equal(t, id.String(), rid)
			return existing, nil
		},
	}

	svc := rider.NewService(repo, nil)

	inactive := false
	resp, err := svc.Update(context.Background(), id.String(), rider.UpdateRiderRequest{
		Name:         "Mas Joko",
		PerDaySalary: 950,
		IsActive:     &inactive,
	})
	assert.NoError(t, err)
	assert.Equal(t, 950.0, resp.PerDaySalary)
	assert.False(t, resp.IsActive)
}
