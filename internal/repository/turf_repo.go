package repository

import (
	"context"

	"github.com/turfbook/turf-booking-service/internal/models"
	"gorm.io/gorm"
)

type TurfRepository interface {
	Create(ctx context.Context, turf *models.Turf) error
	FindByID(ctx context.Context, id string) (*models.Turf, error)
	FindAll(ctx context.Context) ([]models.Turf, error)
	Save(ctx context.Context, turf *models.Turf) error
	Delete(ctx context.Context, id string) error
}

type turfRepository struct {
	db *gorm.DB
}

func NewTurfRepository(db *gorm.DB) TurfRepository {
	return &turfRepository{db: db}
}

func (r *turfRepository) Create(ctx context.Context, turf *models.Turf) error {
	return r.db.WithContext(ctx).Create(turf).Error
}

func (r *turfRepository) FindByID(ctx context.Context, id string) (*models.Turf, error) {
	var turf models.Turf
	if err := r.db.WithContext(ctx).First(&turf, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &turf, nil
}

func (r *turfRepository) FindAll(ctx context.Context) ([]models.Turf, error) {
	var turfs []models.Turf
	if err := r.db.WithContext(ctx).Find(&turfs).Error; err != nil {
		return nil, err
	}
	return turfs, nil
}

func (r *turfRepository) Save(ctx context.Context, turf *models.Turf) error {
	return r.db.WithContext(ctx).Save(turf).Error
}

func (r *turfRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Turf{}, "id = ?", id).Error
}
