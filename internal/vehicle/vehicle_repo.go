package vehicle

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=vehicle_repo.go -destination=mock/vehicle_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, vehicle *Vehicle) error
	FindAll(ctx context.Context) ([]Vehicle, error)
	FindByID(ctx context.Context, id string) (*Vehicle, error)
	Update(ctx context.Context, vehicle *Vehicle) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, vehicle *Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Vehicle, error) {
	var vehicles []Vehicle
	err := r.db.WithContext(ctx).Order("name ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Vehicle, error) {
	var vehicle Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error
	return &vehicle, err
}

func (r *repository) Update(ctx context.Context, vehicle *Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}
