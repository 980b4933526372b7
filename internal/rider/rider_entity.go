package rider

import (
	"time"

	"github.com/google/uuid"
)

// Rider adalah karyawan lapangan yang mengantar air dan menyetor hasil
// penjualan harian. PerDaySalary adalah tarif penuh untuk hari kerja
// 9 jam; di bawah itu gaji dihitung proporsional oleh payroll.
type Rider struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);uniqueIndex:uq_rider_name;not null"`
	Phone        *string   `gorm:"type:varchar(32)"`
	PerDaySalary float64   `gorm:"type:numeric;not null;default:0"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
