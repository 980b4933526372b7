package rider

import (
	"context"
	"encoding/json"
	"time"

	ridererrors "go-waterbook/internal/rider/errors"
	"go-waterbook/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const riderOptionsKey = "riders:options"

//go:generate mockgen -source=rider_service.go -destination=mock/rider_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRiderRequest) (RiderResponse, error)
	GetAll(ctx context.Context) ([]RiderResponse, error)
	GetOptions(ctx context.Context) ([]RiderResponse, error)
	GetByID(ctx context.Context, id string) (RiderResponse, error)
	Update(ctx context.Context, id string, req UpdateRiderRequest) (RiderResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("rider.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rider.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateRiderRequest) (RiderResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create rider requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	row := &Rider{
		ID:           uuid.New(),
		Name:         req.Name,
		Phone:        req.Phone,
		PerDaySalary: req.PerDaySalary,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("create rider failed", zap.Error(err))
		return RiderResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]RiderResponse, error) {
	riders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(riders), nil
}

// GetOptions melayani auto-fill form harian. Jalur baca panas, jadi
// hasilnya dicache di Redis dan pengisian cache dikolaps lewat
// singleflight saat banyak rider membuka form bersamaan.
func (s *service) GetOptions(ctx context.Context) ([]RiderResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, riderOptionsKey).Result(); err == nil {
			var resp []RiderResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(riderOptionsKey, func() (interface{}, error) {
		riders, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(riders)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, riderOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]RiderResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (RiderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RiderResponse{}, ridererrors.ErrInvalidRiderID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RiderResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRiderRequest) (RiderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RiderResponse{}, ridererrors.ErrInvalidRiderID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RiderResponse{}, mapRepositoryError(err)
	}

	row.Name = req.Name
	row.Phone = req.Phone
	row.PerDaySalary = req.PerDaySalary
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return RiderResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)

	return mapToResponse(*row), nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, riderOptionsKey)
	}
}

func mapToResponse(r Rider) RiderResponse {
	resp := RiderResponse{
		ID:           r.ID.String(),
		Name:         r.Name,
		PerDaySalary: r.PerDaySalary,
		IsActive:     r.IsActive,
	}
	if r.Phone != nil {
		resp.Phone = *r.Phone
	}
	return resp
}

func mapToListResponse(riders []Rider) []RiderResponse {
	res := make([]RiderResponse, len(riders))
	for i, r := range riders {
		res[i] = mapToResponse(r)
	}
	return res
}
