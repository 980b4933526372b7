package salarypayment

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salarypayment_repo.go -destination=mock/salarypayment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, payment *SalaryPayment) error
	FindAll(ctx context.Context, filter SalaryPaymentFilter) ([]SalaryPayment, error)
	FindByID(ctx context.Context, id string) (*SalaryPayment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, payment *SalaryPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) FindAll(ctx context.Context, filter SalaryPaymentFilter) ([]SalaryPayment, error) {
	q := r.db.WithContext(ctx).Model(&SalaryPayment{})

	if filter.RiderName != "" {
		q = q.Where("rider_name = ?", filter.RiderName)
	}
	if filter.Year != 0 {
		q = q.Where("EXTRACT(YEAR FROM payment_date) = ?", filter.Year)
	}
	if filter.Month != 0 {
		q = q.Where("EXTRACT(MONTH FROM payment_date) = ?", filter.Month)
	}

	var payments []SalaryPayment
	err := q.Order("payment_date DESC, created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryPayment, error) {
	var payment SalaryPayment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	return &payment, err
}
