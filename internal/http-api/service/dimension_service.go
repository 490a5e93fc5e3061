package service

import (
	"context"
	"errors"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/models"
	"ratehub/internal/http-api/repository"

	"gorm.io/gorm"
)

// DimensionService manages the global rating dimension catalog.
type DimensionService struct {
	dimensionRepo repository.DimensionRepository
}

func NewDimensionService(dimensionRepo repository.DimensionRepository) *DimensionService {
	return &DimensionService{dimensionRepo: dimensionRepo}
}

func (s *DimensionService) Create(ctx context.Context, req dto.CreateDimensionRequest) (*models.RatingDimension, error) {
	dim := &models.RatingDimension{Name: req.Name, Description: req.Description}
	if err := s.dimensionRepo.Create(ctx, dim); err != nil {
		return nil, err
	}
	return dim, nil
}

func (s *DimensionService) Update(ctx context.Context, id int64, req dto.UpdateDimensionRequest) (*models.RatingDimension, error) {
	dim, err := s.dimensionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDimensionNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		dim.Name = *req.Name
	}
	if req.Description != nil {
		dim.Description = *req.Description
	}

	if err := s.dimensionRepo.Save(ctx, dim); err != nil {
		return nil, err
	}
	return dim, nil
}

// Delete removes a dimension from the catalog. Works keep the dangling
// reference; new ratings against it fail validation once the catalog entry
// is gone.
func (s *DimensionService) Delete(ctx context.Context, id int64) error {
	if err := s.dimensionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDimensionNotFound
		}
		return err
	}
	return nil
}

func (s *DimensionService) GetAll(ctx context.Context) ([]models.RatingDimension, error) {
	return s.dimensionRepo.GetAll(ctx)
}
