package vehicle

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex:uq_vehicle_name;not null"`
	PlateNo   *string   `gorm:"type:varchar(32)"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
