package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfbook/turf-booking-service/internal/dto"
	"github.com/turfbook/turf-booking-service/internal/models"
	"github.com/turfbook/turf-booking-service/internal/repository"
	"github.com/turfbook/turf-booking-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

var ErrTurfNotFound = errors.New("turf not found")

type TurfService interface {
	CreateTurf(ctx context.Context, turf *models.Turf) error
	GetTurf(ctx context.Context, id string) (*models.Turf, error)
	ListTurfs(ctx context.Context) ([]models.Turf, error)
	UpdateTurf(ctx context.Context, id string, req *dto.UpdateTurfRequest) (*models.Turf, error)
	DeleteTurf(ctx context.Context, id string) error
}

type turfService struct {
	repo      repository.TurfRepository
	publisher *rabbitmq.Publisher
}

func NewTurfService(repo repository.TurfRepository, publisher *rabbitmq.Publisher) TurfService {
	return &turfService{repo: repo, publisher: publisher}
}

func (s *turfService) CreateTurf(ctx context.Context, turf *models.Turf) error {
	if err := s.repo.Create(ctx, turf); err != nil {
		return fmt.Errorf("create turf: %w", err)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish("turf.created", turf)
	}
	return nil
}

func (s *turfService) GetTurf(ctx context.Context, id string) (*models.Turf, error) {
	turf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTurfNotFound
		}
		return nil, fmt.Errorf("find turf: %w", err)
	}
	return turf, nil
}

func (s *turfService) ListTurfs(ctx context.Context) ([]models.Turf, error) {
	return s.repo.FindAll(ctx)
}

func (s *turfService) UpdateTurf(ctx context.Context, id string, req *dto.UpdateTurfRequest) (*models.Turf, error) {
	turf, err := s.GetTurf(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		turf.Name = *req.Name
	}
	if req.Location != nil {
		turf.Location = *req.Location
	}
	if req.PricePerHour != nil {
		turf.PricePerHour = *req.PricePerHour
	}
	if req.Capacity != nil {
		turf.Capacity = *req.Capacity
	}

	if err := s.repo.Save(ctx, turf); err != nil {
		return nil, fmt.Errorf("save turf: %w", err)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish("turf.updated", turf)
	}
	return turf, nil
}

// DeleteTurf removes the turf only. Bookings made against it stay behind
// with their snapshotted turfName.
func (s *turfService) DeleteTurf(ctx context.Context, id string) error {
	turf, err := s.GetTurf(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete turf: %w", err)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish("turf.deleted", turf)
	}
	return nil
}
