package service

import (
	"context"
	"errors"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/models"
	"ratehub/internal/http-api/repository"

	"gorm.io/gorm"
)

// WorkService manages rateable works and their declared dimension sets.
type WorkService struct {
	workRepo repository.WorkRepository
}

func NewWorkService(workRepo repository.WorkRepository) *WorkService {
	return &WorkService{workRepo: workRepo}
}

func (s *WorkService) Create(ctx context.Context, req dto.CreateWorkRequest) (*models.Work, error) {
	work := &models.Work{
		Title:              req.Title,
		Description:        req.Description,
		RatingDimensionIDs: req.RatingDimensionIDs,
		FileIDs:            []int64{},
	}
	if err := s.workRepo.Create(ctx, work); err != nil {
		return nil, err
	}
	return work, nil
}

func (s *WorkService) Update(ctx context.Context, id int64, req dto.UpdateWorkRequest) (*models.Work, error) {
	work, err := s.workRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		work.Title = *req.Title
	}
	if req.Description != nil {
		work.Description = *req.Description
	}
	if req.RatingDimensionIDs != nil {
		work.RatingDimensionIDs = *req.RatingDimensionIDs
	}

	if err := s.workRepo.Save(ctx, work); err != nil {
		return nil, err
	}
	return work, nil
}

// Delete removes the work record. Ratings referencing it are kept; the
// statistics layer resolves them with a fallback work name.
func (s *WorkService) Delete(ctx context.Context, id int64) error {
	if err := s.workRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return err
	}
	return nil
}

func (s *WorkService) Get(ctx context.Context, id int64) (*models.Work, error) {
	work, err := s.workRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	return work, nil
}

func (s *WorkService) List(ctx context.Context, q dto.WorkListQuery) (*dto.Page[models.Work], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 10
	}
	list, total, err := s.workRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(list, total, q.Page, q.PageSize), nil
}

func (s *WorkService) GetAll(ctx context.Context) ([]models.Work, error) {
	return s.workRepo.GetAll(ctx)
}
