package repository

import (
	"context"
	"fmt"

	"ratehub/internal/http-api/models"

	"gorm.io/gorm"
)

// FileRepository defines persistence for upload metadata rows.
type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.File, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.File, error)
	GetAll(ctx context.Context) ([]models.File, error)
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(ctx context.Context, file *models.File) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

func (r *fileRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.File{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fileRepository) FindByID(ctx context.Context, id int64) (*models.File, error) {
	var file models.File
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.File, error) {
	if len(ids) == 0 {
		return []models.File{}, nil
	}
	var list []models.File
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get files by ids: %w", err)
	}
	return list, nil
}

func (r *fileRepository) GetAll(ctx context.Context) ([]models.File, error) {
	var list []models.File
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get files: %w", err)
	}
	return list, nil
}
