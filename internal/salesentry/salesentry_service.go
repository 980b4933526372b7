package salesentry

import (
	"context"
	"time"

	"go-waterbook/internal/adjustment"
	salesentryerrors "go-waterbook/internal/salesentry/errors"
	"go-waterbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salesentry_service.go -destination=mock/salesentry_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req CreateSalesEntryRequest) (SalesEntryResponse, error)
	GetAll(ctx context.Context, filter SalesEntryFilter) ([]SalesEntryResponse, error)
	GetByID(ctx context.Context, id string) (SalesEntryResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	collaborator adjustment.Collaborator
	logger       *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, collaborator adjustment.Collaborator, logger ...*zap.Logger) Service {
	l := zap.L().Named("salesentry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salesentry.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		collaborator: collaborator,
		logger:       l,
	}
}

// Submit memvalidasi, menghitung total, meminta koreksi ekspektasi ke
// layanan eksternal, lalu menyimpan entri. Kalau koreksi gagal TIDAK
// ada yang dipersist; rider submit ulang setelah layanan pulih.
func (s *service) Submit(ctx context.Context, req CreateSalesEntryRequest) (SalesEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return SalesEntryResponse{}, salesentryerrors.ErrInvalidEntryDate
	}

	// Urutan pembacaan hanya divalidasi tanpa override; override admin
	// memang untuk kasus meteran diganti atau rusak
	if req.OverrideLitersSold == nil && req.CurrentReading < req.PreviousReading {
		return SalesEntryResponse{}, salesentryerrors.ErrInvalidMeterReading
	}

	litersSold := DeriveLiters(req.PreviousReading, req.CurrentReading, req.OverrideLitersSold)

	totals := ComputeTotals(ReconcileInput{
		LitersSold:     litersSold,
		RatePerLiter:   req.RatePerLiter,
		CashReceived:   req.CashReceived,
		OnlineReceived: req.OnlineReceived,
		DueCollected:   req.DueCollected,
		TokenMoney:     req.TokenMoney,
		StaffExpense:   req.StaffExpense,
		ExtraAmount:    req.ExtraAmount,
	})

	result, err := s.collaborator.Adjust(ctx, adjustment.Request{
		EntryDate:       req.EntryDate,
		RiderName:       req.RiderName,
		VehicleName:     req.VehicleName,
		LitersSold:      litersSold,
		RatePerLiter:    req.RatePerLiter,
		CashReceived:    req.CashReceived,
		OnlineReceived:  req.OnlineReceived,
		DueCollected:    req.DueCollected,
		TokenMoney:      req.TokenMoney,
		StaffExpense:    req.StaffExpense,
		ExtraAmount:     req.ExtraAmount,
		Comment:         req.Comment,
		TotalSale:       totals.TotalSale,
		ActualReceived:  totals.ActualReceived,
		InitialExpected: totals.InitialExpected,
	})
	if err != nil {
		s.logger.Error("expected amount adjustment failed",
			zap.String("request_id", rid),
			zap.String("rider", req.RiderName),
			zap.Error(err),
		)
		return SalesEntryResponse{}, salesentryerrors.ErrAdjustmentFailed
	}

	discrepancy := Discrepancy(result.AdjustedExpectedAmount, totals.ActualReceived)
	status := Classify(discrepancy)

	row := &SalesEntry{
		ID:                  uuid.New(),
		EntryDate:           entryDate,
		RiderName:           req.RiderName,
		VehicleName:         req.VehicleName,
		PreviousReading:     req.PreviousReading,
		CurrentReading:      req.CurrentReading,
		OverrideLitersSold:  req.OverrideLitersSold,
		LitersSold:          litersSold,
		RatePerLiter:        req.RatePerLiter,
		CashReceived:        req.CashReceived,
		OnlineReceived:      req.OnlineReceived,
		DueCollected:        req.DueCollected,
		TokenMoney:          req.TokenMoney,
		StaffExpense:        req.StaffExpense,
		ExtraAmount:         req.ExtraAmount,
		HoursWorked:         req.HoursWorked,
		CommissionEarned:    req.CommissionEarned,
		TotalSale:           totals.TotalSale,
		ActualReceived:      totals.ActualReceived,
		InitialExpected:     totals.InitialExpected,
		AdjustedExpected:    result.AdjustedExpectedAmount,
		AdjustmentReasoning: result.Reasoning,
		Discrepancy:         discrepancy,
		Status:              status,
		RecordedBy:          contextutil.GetUserName(ctx),
	}
	if req.Comment != "" {
		row.Comment = &req.Comment
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, row)
	})
	if err != nil {
		s.logger.Error("persist sales entry failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return SalesEntryResponse{}, err
	}

	s.logger.Info("sales entry recorded",
		zap.String("request_id", rid),
		zap.String("rider", req.RiderName),
		zap.Float64("discrepancy", discrepancy),
		zap.String("status", status),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter SalesEntryFilter) ([]SalesEntryResponse, error) {
	entries, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]SalesEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalesEntryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalesEntryResponse{}, salesentryerrors.ErrInvalidSalesEntryID
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return SalesEntryResponse{}, salesentryerrors.ErrSalesEntryNotFound
		}
		return SalesEntryResponse{}, err
	}

	return mapToResponse(*entry), nil
}

func mapToResponse(e SalesEntry) SalesEntryResponse {
	resp := SalesEntryResponse{
		ID:                  e.ID.String(),
		EntryDate:           e.EntryDate.Format("2006-01-02"),
		RiderName:           e.RiderName,
		VehicleName:         e.VehicleName,
		PreviousReading:     e.PreviousReading,
		CurrentReading:      e.CurrentReading,
		OverrideLitersSold:  e.OverrideLitersSold,
		LitersSold:          e.LitersSold,
		RatePerLiter:        e.RatePerLiter,
		CashReceived:        e.CashReceived,
		OnlineReceived:      e.OnlineReceived,
		DueCollected:        e.DueCollected,
		TokenMoney:          e.TokenMoney,
		StaffExpense:        e.StaffExpense,
		ExtraAmount:         e.ExtraAmount,
		HoursWorked:         e.HoursWorked,
		CommissionEarned:    e.CommissionEarned,
		TotalSale:           e.TotalSale,
		ActualReceived:      e.ActualReceived,
		InitialExpected:     e.InitialExpected,
		AdjustedExpected:    e.AdjustedExpected,
		AdjustmentReasoning: e.AdjustmentReasoning,
		Discrepancy:         e.Discrepancy,
		Status:              e.Status,
		RecordedBy:          e.RecordedBy,
	}
	if e.Comment != nil {
		resp.Comment = *e.Comment
	}
	return resp
}
