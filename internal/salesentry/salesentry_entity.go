package salesentry

import (
	"time"

	"github.com/google/uuid"
)

// SalesEntry satu setoran harian rider. Insert-only; koreksi dilakukan
// dengan entri baru, bukan update.
type SalesEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntryDate   time.Time `gorm:"type:date;not null;index:idx_sales_entries_date"`
	RiderName   string    `gorm:"not null;index:idx_sales_entries_rider"`
	VehicleName string    `gorm:"not null;index:idx_sales_entries_vehicle"`

	PreviousReading    float64  `gorm:"not null"`
	CurrentReading     float64  `gorm:"not null"`
	OverrideLitersSold *float64 // isi admin yang menggantikan selisih meteran
	LitersSold         float64  `gorm:"not null"`

	RatePerLiter   float64 `gorm:"not null"`
	CashReceived   float64 `gorm:"not null"`
	OnlineReceived float64 `gorm:"not null"`
	DueCollected   float64 `gorm:"not null"`
	TokenMoney     float64 `gorm:"not null"`
	StaffExpense   float64 `gorm:"not null"`
	ExtraAmount    float64 `gorm:"not null"`

	HoursWorked      float64 `gorm:"not null"`
	CommissionEarned float64 `gorm:"not null"`
	Comment          *string

	TotalSale           float64 `gorm:"not null"`
	ActualReceived      float64 `gorm:"not null"`
	InitialExpected     float64 `gorm:"not null"`
	AdjustedExpected    float64 `gorm:"not null"`
	AdjustmentReasoning string  `gorm:"not null"`
	Discrepancy         float64 `gorm:"not null"`
	Status              string  `gorm:"not null"`

	RecordedBy string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (SalesEntry) TableName() string {
	return "sales_entries"
}
