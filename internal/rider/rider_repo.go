package rider

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rider_repo.go -destination=mock/rider_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rider *Rider) error
	FindAll(ctx context.Context) ([]Rider, error)
	FindOptions(ctx context.Context) ([]Rider, error)
	FindByID(ctx context.Context, id string) (*Rider, error)
	FindByName(ctx context.Context, name string) (*Rider, error)
	Update(ctx context.Context, rider *Rider) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rider *Rider) error {
	return r.db.WithContext(ctx).Create(rider).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Rider, error) {
	var riders []Rider
	err := r.db.WithContext(ctx).Order("name ASC").Find(&riders).Error
	return riders, err
}

// FindOptions hanya rider aktif, untuk isian dropdown form harian.
func (r *repository) FindOptions(ctx context.Context) ([]Rider, error) {
	var riders []Rider
	err := r.db.WithContext(ctx).
		Where("is_active").
		Order("name ASC").
		Find(&riders).Error
	return riders, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Rider, error) {
	var rider Rider
	err := r.db.WithContext(ctx).First(&rider, "id = ?", id).Error
	return &rider, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*Rider, error) {
	var rider Rider
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&rider).Error
	return &rider, err
}

func (r *repository) Update(ctx context.Context, rider *Rider) error {
	return r.db.WithContext(ctx).Save(rider).Error
}
