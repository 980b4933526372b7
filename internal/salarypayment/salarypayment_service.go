package salarypayment

import (
	"context"
	"fmt"
	"time"

	"go-waterbook/internal/rider"
	ridererrors "go-waterbook/internal/rider/errors"
	salarypaymenterrors "go-waterbook/internal/salarypayment/errors"
	"go-waterbook/internal/shared/contextutil"
	"go-waterbook/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const receiptCounterType = "salary_payment"

type RiderSource interface {
	FindByName(ctx context.Context, name string) (*rider.Rider, error)
}

//go:generate mockgen -source=salarypayment_service.go -destination=mock/salarypayment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryPaymentRequest) (SalaryPaymentResponse, error)
	GetAll(ctx context.Context, filter SalaryPaymentFilter) ([]SalaryPaymentResponse, error)
	GetByID(ctx context.Context, id string) (SalaryPaymentResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	riders   RiderSource
	counters counter.Repository
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, riders RiderSource, counters counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarypayment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarypayment.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		riders:   riders,
		counters: counters,
		logger:   l,
	}
}

// Create mencatat satu pembayaran gaji. Nomor kwitansi diambil dari
// counter atomic di dalam transaksi yang sama dengan insert, jadi tidak
// ada nomor kembar walau dua kasir submit bersamaan.
func (s *service) Create(ctx context.Context, req CreateSalaryPaymentRequest) (SalaryPaymentResponse, error) {
	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return SalaryPaymentResponse{}, salarypaymenterrors.ErrInvalidPaymentDate
	}

	if _, err := s.riders.FindByName(ctx, req.RiderName); err != nil {
		if err == gorm.ErrRecordNotFound {
			return SalaryPaymentResponse{}, ridererrors.ErrRiderNotFound
		}
		return SalaryPaymentResponse{}, err
	}

	row := &SalaryPayment{
		ID:             uuid.New(),
		PaymentDate:    paymentDate,
		RiderName:      req.RiderName,
		SalaryAmount:   req.SalaryAmount,
		AmountPaid:     req.AmountPaid,
		Deduction:      req.Deduction,
		AdvancePayment: req.AdvancePayment,
		Remaining:      req.SalaryAmount - req.AmountPaid - req.Deduction,
		RecordedBy:     contextutil.GetUserName(ctx),
	}
	if req.Comment != "" {
		row.Comment = &req.Comment
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := s.counters.WithTx(tx).GetNextValue(ctx, receiptCounterType)
		if err != nil {
			return err
		}
		row.ReceiptNumber = fmt.Sprintf("SP-%d-%06d", paymentDate.Year(), seq)

		return s.repo.WithTx(tx).Create(ctx, row)
	})
	if err != nil {
		s.logger.Error("persist salary payment failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return SalaryPaymentResponse{}, err
	}

	s.logger.Info("salary payment recorded",
		zap.String("receipt", row.ReceiptNumber),
		zap.String("rider", row.RiderName),
		zap.Float64("amount_paid", row.AmountPaid),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter SalaryPaymentFilter) ([]SalaryPaymentResponse, error) {
	payments, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]SalaryPaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryPaymentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalaryPaymentResponse{}, salarypaymenterrors.ErrInvalidSalaryPaymentID
	}

	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return SalaryPaymentResponse{}, salarypaymenterrors.ErrSalaryPaymentNotFound
		}
		return SalaryPaymentResponse{}, err
	}

	return mapToResponse(*payment), nil
}

func mapToResponse(p SalaryPayment) SalaryPaymentResponse {
	resp := SalaryPaymentResponse{
		ID:             p.ID.String(),
		ReceiptNumber:  p.ReceiptNumber,
		PaymentDate:    p.PaymentDate.Format("2006-01-02"),
		RiderName:      p.RiderName,
		SalaryAmount:   p.SalaryAmount,
		AmountPaid:     p.AmountPaid,
		Deduction:      p.Deduction,
		AdvancePayment: p.AdvancePayment,
		Remaining:      p.Remaining,
		RecordedBy:     p.RecordedBy,
	}
	if p.Comment != nil {
		resp.Comment = *p.Comment
	}
	return resp
}
