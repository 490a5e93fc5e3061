package repository

import (
	"context"
	"fmt"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/models"

	"gorm.io/gorm"
)

// WorkRepository defines persistence for rateable works.
type WorkRepository interface {
	Create(ctx context.Context, work *models.Work) error
	Save(ctx context.Context, work *models.Work) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Work, error)
	GetAll(ctx context.Context) ([]models.Work, error)
	List(ctx context.Context, q dto.WorkListQuery) ([]models.Work, int64, error)
}

type workRepository struct {
	db *gorm.DB
}

func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

func (r *workRepository) Create(ctx context.Context, work *models.Work) error {
	if err := r.db.WithContext(ctx).Create(work).Error; err != nil {
		return fmt.Errorf("create work: %w", err)
	}
	return nil
}

func (r *workRepository) Save(ctx context.Context, work *models.Work) error {
	if err := r.db.WithContext(ctx).Save(work).Error; err != nil {
		return fmt.Errorf("save work: %w", err)
	}
	return nil
}

func (r *workRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Work{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete work: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *workRepository) FindByID(ctx context.Context, id int64) (*models.Work, error) {
	var work models.Work
	if err := r.db.WithContext(ctx).First(&work, id).Error; err != nil {
		return nil, err
	}
	return &work, nil
}

func (r *workRepository) GetAll(ctx context.Context) ([]models.Work, error) {
	var list []models.Work
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get works: %w", err)
	}
	return list, nil
}

func (r *workRepository) List(ctx context.Context, q dto.WorkListQuery) ([]models.Work, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Work{})
	if q.Title != "" {
		tx = tx.Where("title ILIKE ?", "%"+q.Title+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count works: %w", err)
	}

	var list []models.Work
	offset := (q.Page - 1) * q.PageSize
	if err := tx.Order("id asc").Limit(q.PageSize).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list works: %w", err)
	}
	return list, total, nil
}
