package salesentry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-waterbook/internal/adjustment"
	"go-waterbook/internal/salesentry"
	salesentryerrors "go-waterbook/internal/salesentry/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn             func(ctx context.Context, e *salesentry.SalesEntry) error
	findAllFn            func(ctx context.Context, filter salesentry.SalesEntryFilter) ([]salesentry.SalesEntry, error)
	findByIDFn           func(ctx context.Context, id string) (*salesentry.SalesEntry, error)
	findByRiderBetweenFn func(ctx context.Context, riderName string, from, to time.Time) ([]salesentry.SalesEntry, error)
}

func (f *fakeRepo) WithTx(tx *gorm.DB) salesentry.Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, e *salesentry.SalesEntry) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context, filter salesentry.SalesEntryFilter) ([]salesentry.SalesEntry, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*salesentry.SalesEntry, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByRiderBetween(ctx context.Context, riderName string, from, to time.Time) ([]salesentry.SalesEntry, error) {
	if f.findByRiderBetweenFn != nil {
		return f.findByRiderBetweenFn(ctx, riderName, from, to)
	}
	return nil, nil
}

type fakeCollaborator struct {
	adjustFn func(ctx context.Context, req adjustment.Request) (adjustment.Result, error)
}

func (f *fakeCollaborator) Adjust(ctx context.Context, req adjustment.Request) (adjustment.Result, error) {
	return f.adjustFn(ctx, req)
}

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)
	return gdb, mock
}

func baseRequest() salesentry.CreateSalesEntryRequest {
	return salesentry.CreateSalesEntryRequest{
		EntryDate:       "2025-06-01",
		RiderName:       "Mas Joko",
		VehicleName:     "Truk 01",
		PreviousReading: 4000,
		CurrentReading:  5000,
		RatePerLiter:    2.5,
		CashReceived:    2000,
		OnlineReceived:  300,
		DueCollected:    100,
		TokenMoney:      50,
		StaffExpense:    20,
		ExtraAmount:     10,
		HoursWorked:     9,
	}
}

func TestService_Submit_Match(t *testing.T) {
	gdb, mock := newGormMock(t)

	var saved *salesentry.SalesEntry
	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *salesentry.SalesEntry) error {
			saved = e
			return nil
		},
	}
	collab := &fakeCollaborator{
		adjustFn: func(ctx context.Context, req adjustment.Request) (adjustment.Result, error) {
			assert.Equal(t, 2500.0, req.TotalSale)
			assert.Equal(t, 2300.0, req.ActualReceived)
			assert.Equal(t, 2320.0, req.InitialExpected)
			return adjustment.Result{AdjustedExpectedAmount: 2300, Reasoning: "Due verified"}, nil
		},
	}

	svc := salesentry.NewService(gdb, repo, collab)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Submit(context.Background(), baseRequest())
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, 1000.0, resp.LitersSold)
	assert.Equal(t, 0.0, resp.Discrepancy)
	assert.Equal(t, salesentry.StatusMatch, resp.Status)
	assert.Equal(t, "Due verified", resp.AdjustmentReasoning)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Submit_AdjustedHigherIsShortage(t *testing.T) {
	gdb, mock := newGormMock(t)

	repo := &fakeRepo{}
	collab := &fakeCollaborator{
		adjustFn: func(ctx context.Context, req adjustment.Request) (adjustment.Result, error) {
			return adjustment.Result{AdjustedExpectedAmount: 2350, Reasoning: "Token claim rejected"}, nil
		},
	}

	svc := salesentry.NewService(gdb, repo, collab)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Submit(context.Background(), baseRequest())
	assert.NoError(t, err)
	assert.Equal(t, 50.0, resp.Discrepancy)
	assert.Equal(t, salesentry.StatusShortage, resp.Status)
}

func TestService_Submit_AdjustmentFailureNothingPersisted(t *testing.T) {
	gdb, mock := newGormMock(t)

	created := false
	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *salesentry.SalesEntry) error {
			created = true
			return nil
		},
	}
	collab := &fakeCollaborator{
		adjustFn: func(ctx context.Context, req adjustment.Request) (adjustment.Result, error) {
			return adjustment.Result{}, errors.New("upstream timeout")
		},
	}

	svc := salesentry.NewService(gdb, repo, collab)

	_, err := svc.Submit(context.Background(), baseRequest())
	assert.Equal(t, salesentryerrors.ErrAdjustmentFailed, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Submit_ReadingOrderValidated(t *testing.T) {
	gdb, _ := newGormMock(t)

	svc := salesentry.NewService(gdb, &fakeRepo{}, &fakeCollaborator{
		adjustFn: func(ctx context.Context, req adjustment.Request) (adjustment.Result, error) {
			t.Fatal("adjustment should not be called for invalid readings")
			return adjustment.Result{}, nil
		},
	})

	req := baseRequest()
	req.PreviousReading = 5000
	req.CurrentReading = 4000

	_, err := svc.Submit(context.Background(), req)
	assert.Equal(t, salesentryerrors.ErrInvalidMeterReading, err)
}

func TestService_Submit_OverrideSkipsReadingValidation(t *testing.T) {
	gdb, mock := newGormMock(t)

	collab := &fakeCollaborator{
		adjustFn: func(ctx context.Context, req adjustment.Request) (adjustment.Result, error) {
			assert.Equal(t, 950.0, req.LitersSold)
			return adjustment.Result{AdjustedExpectedAmount: req.InitialExpected, Reasoning: "No objections"}, nil
		},
	}

	svc := salesentry.NewService(gdb, &fakeRepo{}, collab)

	mock.ExpectBegin()
	mock.ExpectCommit()

	req := baseRequest()
	req.PreviousReading = 5000
	req.CurrentReading = 4000
	override := 950.0
	req.OverrideLitersSold = &override

	resp, err := svc.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, 950.0, resp.LitersSold)
	assert.NotNil(t, resp.OverrideLitersSold)
}

func TestService_GetByID_NotFound(t *testing.T) {
	gdb, _ := newGormMock(t)

	svc := salesentry.NewService(gdb, &fakeRepo{}, &fakeCollaborator{})

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.Equal(t, salesentryerrors.ErrSalesEntryNotFound, err)
}

func TestService_GetByID_InvalidID(t *testing.T) {
	gdb, _ := newGormMock(t)

	svc := salesentry.NewService(gdb, &fakeRepo{}, &fakeCollaborator{})

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.Equal(t, salesentryerrors.ErrInvalidSalesEntryID, err)
}
