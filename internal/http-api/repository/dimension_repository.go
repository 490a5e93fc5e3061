package repository

import (
	"context"
	"fmt"

	"ratehub/internal/http-api/models"

	"gorm.io/gorm"
)

// DimensionRepository defines persistence for the global dimension catalog.
type DimensionRepository interface {
	Create(ctx context.Context, dim *models.RatingDimension) error
	Save(ctx context.Context, dim *models.RatingDimension) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.RatingDimension, error)
	GetAll(ctx context.Context) ([]models.RatingDimension, error)
}

type dimensionRepository struct {
	db *gorm.DB
}

func NewDimensionRepository(db *gorm.DB) DimensionRepository {
	return &dimensionRepository{db: db}
}

func (r *dimensionRepository) Create(ctx context.Context, dim *models.RatingDimension) error {
	if err := r.db.WithContext(ctx).Create(dim).Error; err != nil {
		return fmt.Errorf("create rating dimension: %w", err)
	}
	return nil
}

func (r *dimensionRepository) Save(ctx context.Context, dim *models.RatingDimension) error {
	if err := r.db.WithContext(ctx).Save(dim).Error; err != nil {
		return fmt.Errorf("save rating dimension: %w", err)
	}
	return nil
}

func (r *dimensionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.RatingDimension{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete rating dimension: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *dimensionRepository) FindByID(ctx context.Context, id int64) (*models.RatingDimension, error) {
	var dim models.RatingDimension
	if err := r.db.WithContext(ctx).First(&dim, id).Error; err != nil {
		return nil, err
	}
	return &dim, nil
}

func (r *dimensionRepository) GetAll(ctx context.Context) ([]models.RatingDimension, error) {
	var list []models.RatingDimension
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get rating dimensions: %w", err)
	}
	return list, nil
}
