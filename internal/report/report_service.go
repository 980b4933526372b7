package report

import (
	"context"

	"go-waterbook/internal/payroll"
	"go-waterbook/internal/salesentry"

	"go.uber.org/zap"
)

type EntrySource interface {
	FindAll(ctx context.Context, filter salesentry.SalesEntryFilter) ([]salesentry.SalesEntry, error)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	MonthlySummary(ctx context.Context, filter salesentry.SalesEntryFilter) (MonthlySummary, error)
	VehicleReport(ctx context.Context, filter salesentry.SalesEntryFilter) ([]VehicleMonthRow, error)
	CollectorCashReport(ctx context.Context, filter salesentry.SalesEntryFilter) ([]CollectorCashRow, error)
	RiderMonthlyReport(ctx context.Context, q payroll.MonthlySalaryQuery) (payroll.MonthlySalaryResponse, error)
}

type service struct {
	entries EntrySource
	payroll payroll.Service
	logger  *zap.Logger
}

func NewService(entries EntrySource, payrollService payroll.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		entries: entries,
		payroll: payrollService,
		logger:  l,
	}
}

func (s *service) MonthlySummary(ctx context.Context, filter salesentry.SalesEntryFilter) (MonthlySummary, error) {
	entries, err := s.entries.FindAll(ctx, filter)
	if err != nil {
		return MonthlySummary{}, err
	}
	return SummarizeMonthly(entries), nil
}

func (s *service) VehicleReport(ctx context.Context, filter salesentry.SalesEntryFilter) ([]VehicleMonthRow, error) {
	entries, err := s.entries.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return VehicleReport(entries), nil
}

func (s *service) CollectorCashReport(ctx context.Context, filter salesentry.SalesEntryFilter) ([]CollectorCashRow, error) {
	entries, err := s.entries.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return CollectorCashReport(entries), nil
}

// RiderMonthlyReport tabel per-hari dan total bulanan satu rider,
// angkanya sama persis dengan agregasi gaji.
func (s *service) RiderMonthlyReport(ctx context.Context, q payroll.MonthlySalaryQuery) (payroll.MonthlySalaryResponse, error) {
	return s.payroll.GetMonthlySalary(ctx, q)
}
