package payroll

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-waterbook/internal/rider"
	ridererrors "go-waterbook/internal/rider/errors"
	"go-waterbook/internal/salesentry"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Sumber data didefinisikan di sisi pemakai; repo rider dan sales entry
// sudah memenuhi kontrak ini.
type RiderSource interface {
	FindByName(ctx context.Context, name string) (*rider.Rider, error)
}

type EntrySource interface {
	FindByRiderBetween(ctx context.Context, riderName string, from, to time.Time) ([]salesentry.SalesEntry, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetMonthlySalary(ctx context.Context, q MonthlySalaryQuery) (MonthlySalaryResponse, error)
}

type service struct {
	riders  RiderSource
	entries EntrySource
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(riders RiderSource, entries EntrySource, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		riders:  riders,
		entries: entries,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func cacheKey(riderName string, year, month int) string {
	return fmt.Sprintf("payroll:%s:%d:%d", riderName, year, month)
}

// GetMonthlySalary agregasi gaji satu rider satu bulan. Hasil dicache
// sebentar saja karena entri baru bulan berjalan harus cepat terlihat
// di form pembayaran gaji.
func (s *service) GetMonthlySalary(ctx context.Context, q MonthlySalaryQuery) (MonthlySalaryResponse, error) {
	key := cacheKey(q.RiderName, q.Year, q.Month)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp MonthlySalaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		r, err := s.riders.FindByName(ctx, q.RiderName)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return MonthlySalaryResponse{}, ridererrors.ErrRiderNotFound
			}
			return MonthlySalaryResponse{}, err
		}

		from, to := MonthRange(q.Year, q.Month)
		entries, err := s.entries.FindByRiderBetween(ctx, q.RiderName, from, to)
		if err != nil {
			return MonthlySalaryResponse{}, err
		}

		resp := MonthlySalaryResponse{
			RiderName:        q.RiderName,
			Year:             q.Year,
			Month:            q.Month,
			PerDaySalary:     r.PerDaySalary,
			MonthlyAggregate: Aggregate(entries, r.PerDaySalary),
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, key, jsonData, 5*time.Minute)
			}
		}

		s.logger.Debug("monthly salary aggregated",
			zap.String("rider", q.RiderName),
			zap.Int("year", q.Year),
			zap.Int("month", q.Month),
			zap.Int("days_active", resp.DaysActive),
		)

		return resp, nil
	})
	if err != nil {
		return MonthlySalaryResponse{}, err
	}

	return v.(MonthlySalaryResponse), nil
}
