package payroll_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-waterbook/internal/payroll"
	"go-waterbook/internal/rider"
	ridererrors "go-waterbook/internal/rider/errors"
	"go-waterbook/internal/salesentry"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRiderSource struct {
	findByNameFn func(ctx context.Context, name string) (*rider.Rider, error)
}

func (f *fakeRiderSource) FindByName(ctx context.Context, name string) (*rider.Rider, error) {
	return f.findByNameFn(ctx, name)
}

type fakeEntrySource struct {
	findFn func(ctx context.Context, riderName string, from, to time.Time) ([]salesentry.SalesEntry, error)
}

func (f *fakeEntrySource) FindByRiderBetween(ctx context.Context, riderName string, from, to time.Time) ([]salesentry.SalesEntry, error) {
	return f.findFn(ctx, riderName, from, to)
}

func joko() *rider.Rider {
	return &rider.Rider{ID: uuid.New(), Name: "Mas Joko", PerDaySalary: 900, IsActive: true}
}

func TestPayrollService_GetMonthlySalary(t *testing.T) {
	riders := &fakeRiderSource{
		findByNameFn: func(ctx context.Context, name string) (*rider.Rider, error) {
			assert.Equal(t, "Mas Joko", name)
			return joko(), nil
		},
	}
	entries := &fakeEntrySource{
		findFn: func(ctx context.Context, riderName string, from, to time.Time) ([]salesentry.SalesEntry, error) {
			wantFrom, wantTo := payroll.MonthRange(2025, 6)
			assert.Equal(t, wantFrom, from)
			assert.Equal(t, wantTo, to)
			return []salesentry.SalesEntry{
				{
					EntryDate:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
					HoursWorked:      9,
					CommissionEarned: 50,
					Discrepancy:      50,
				},
			}, nil
		},
	}

	svc := payroll.NewService(riders, entries, nil)

	resp, err := svc.GetMonthlySalary(context.Background(), payroll.MonthlySalaryQuery{
		RiderName: "Mas Joko", Year: 2025, Month: 6,
	})
	assert.NoError(t, err)
	assert.Equal(t, 900.0, resp.PerDaySalary)
	assert.Equal(t, 900.0, resp.NetEarning)
	assert.Equal(t, 1, resp.DaysActive)
}

func TestPayrollService_GetMonthlySalary_RiderNotFound(t *testing.T) {
	riders := &fakeRiderSource{
		findByNameFn: func(ctx context.Context, name string) (*rider.Rider, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := payroll.NewService(riders, &fakeEntrySource{}, nil)

	_, err := svc.GetMonthlySalary(context.Background(), payroll.MonthlySalaryQuery{
		RiderName: "Siapa Ini", Year: 2025, Month: 6,
	})
	assert.Equal(t, ridererrors.ErrRiderNotFound, err)
}

func TestPayrollService_GetMonthlySalary_EmptyMonth(t *testing.T) {
	riders := &fakeRiderSource{
		findByNameFn: func(ctx context.Context, name string) (*rider.Rider, error) {
			return joko(), nil
		},
	}
	entries := &fakeEntrySource{
		findFn: func(ctx context.Context, riderName string, from, to time.Time) ([]salesentry.SalesEntry, error) {
			return nil, nil
		},
	}

	svc := payroll.NewService(riders, entries, nil)

	resp, err := svc.GetMonthlySalary(context.Background(), payroll.MonthlySalaryQuery{
		RiderName: "Mas Joko", Year: 2025, Month: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.DaysActive)
	assert.Equal(t, 0.0, resp.NetEarning)
}

func TestPayrollService_GetMonthlySalary_CacheHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	cached := payroll.MonthlySalaryResponse{
		RiderName:    "Mas Joko",
		Year:         2025,
		Month:        6,
		PerDaySalary: 900,
		MonthlyAggregate: payroll.MonthlyAggregate{
			NetEarning: 900,
			DaysActive: 1,
		},
	}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	mock.ExpectGet("payroll:Mas Joko:2025:6").SetVal(string(payload))

	riders := &fakeRiderSource{
		findByNameFn: func(ctx context.Context, name string) (*rider.Rider, error) {
			t.Fatal("rider source should not be hit on cache hit")
			return nil, nil
		},
	}

	svc := payroll.NewService(riders, &fakeEntrySource{}, rdb)

	resp, err := svc.GetMonthlySalary(context.Background(), payroll.MonthlySalaryQuery{
		RiderName: "Mas Joko", Year: 2025, Month: 6,
	})
	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}
