package vehicle

import (
	"context"
	"errors"
	"strings"

	vehicleerrors "go-waterbook/internal/vehicle/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=vehicle_service.go -destination=mock/vehicle_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateVehicleRequest) (VehicleResponse, error)
	GetAll(ctx context.Context) ([]VehicleResponse, error)
	GetByID(ctx context.Context, id string) (VehicleResponse, error)
	Update(ctx context.Context, id string, req UpdateVehicleRequest) (VehicleResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateVehicleRequest) (VehicleResponse, error) {
	row := &Vehicle{
		ID:       uuid.New(),
		Name:     req.Name,
		PlateNo:  req.PlateNo,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return VehicleResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]VehicleResponse, error) {
	vehicles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		res[i] = mapToResponse(v)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (VehicleResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VehicleResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateVehicleRequest) (VehicleResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VehicleResponse{}, mapRepositoryError(err)
	}

	row.Name = req.Name
	row.PlateNo = req.PlateNo
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return VehicleResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*row), nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vehicleerrors.ErrVehicleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_vehicle_name" {
			return vehicleerrors.ErrVehicleNameAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_vehicle_name") {
		return vehicleerrors.ErrVehicleNameAlreadyExists
	}

	return err
}

func mapToResponse(v Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:       v.ID.String(),
		Name:     v.Name,
		IsActive: v.IsActive,
	}
	if v.PlateNo != nil {
		resp.PlateNo = *v.PlateNo
	}
	return resp
}
