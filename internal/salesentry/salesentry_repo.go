package salesentry

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salesentry_repo.go -destination=mock/salesentry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, entry *SalesEntry) error
	FindAll(ctx context.Context, filter SalesEntryFilter) ([]SalesEntry, error)
	FindByID(ctx context.Context, id string) (*SalesEntry, error)
	FindByRiderBetween(ctx context.Context, riderName string, from, to time.Time) ([]SalesEntry, error)
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

func (r *repository) Create(ctx context.Context, entry *SalesEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAll(ctx context.Context, filter SalesEntryFilter) ([]SalesEntry, error) {
	q := r.db.WithContext(ctx).Model(&SalesEntry{})

	if filter.RiderName != "" {
		q = q.Where("rider_name = ?", filter.RiderName)
	}
	if filter.VehicleName != "" {
		q = q.Where("vehicle_name = ?", filter.VehicleName)
	}
	if filter.Year != 0 {
		q = q.Where("EXTRACT(YEAR FROM entry_date) = ?", filter.Year)
	}
	if filter.Month != 0 {
		q = q.Where("EXTRACT(MONTH FROM entry_date) = ?", filter.Month)
	}

	var entries []SalesEntry
	err := q.Order("entry_date DESC, created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalesEntry, error) {
	var entry SalesEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	return &entry, err
}

// FindByRiderBetween sumber data agregasi gaji bulanan. Batas [from, to)
// supaya index entry_date kepakai, bukan EXTRACT per baris.
func (r *repository) FindByRiderBetween(ctx context.Context, riderName string, from, to time.Time) ([]SalesEntry, error) {
	var entries []SalesEntry
	err := r.db.WithContext(ctx).
		Where("rider_name = ?", riderName).
		Where("entry_date >= ? AND entry_date < ?", from, to).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}
