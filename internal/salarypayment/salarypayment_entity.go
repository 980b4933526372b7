package salarypayment

import (
	"time"

	"github.com/google/uuid"
)

// SalaryPayment satu transaksi pembayaran gaji. Immutable setelah
// dibuat; koreksi dicatat sebagai transaksi baru.
type SalaryPayment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReceiptNumber string    `gorm:"not null;uniqueIndex:uq_salary_payment_receipt"`
	PaymentDate   time.Time `gorm:"type:date;not null;index:idx_salary_payments_date"`
	RiderName     string    `gorm:"not null;index:idx_salary_payments_rider"`

	// Gaji periode terpilih, auto-fill dari agregasi bulanan tapi boleh
	// dikoreksi manual sebelum disimpan
	SalaryAmount   float64 `gorm:"not null"`
	AmountPaid     float64 `gorm:"not null"`
	Deduction      float64 `gorm:"not null"`
	AdvancePayment float64 `gorm:"not null"`
	Remaining      float64 `gorm:"not null"`

	Comment    *string
	RecordedBy string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (SalaryPayment) TableName() string {
	return "salary_payments"
}
