package repository

import (
	"context"
	"fmt"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/models"

	"gorm.io/gorm"
)

// sortableRatingColumns whitelists the single-field sort the admin list
// supports. Anything else is silently ignored rather than interpolated into
// the query.
var sortableRatingColumns = map[string]string{
	"id":        "id",
	"userId":    "user_id",
	"workId":    "work_id",
	"content":   "content",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// RatingRepository defines the ledger's persistence operations.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Save(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Rating, error)
	GetAll(ctx context.Context) ([]models.Rating, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Rating, error)
	List(ctx context.Context, q dto.RatingListQuery) ([]models.Rating, int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) Save(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Save(rating).Error; err != nil {
		return fmt.Errorf("save rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Rating{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetAll(ctx context.Context) ([]models.Rating, error) {
	var list []models.Rating
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get ratings: %w", err)
	}
	return list, nil
}

func (r *ratingRepository) GetByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	var list []models.Rating
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get ratings by user: %w", err)
	}
	return list, nil
}

// List applies the admin screen's filters, optional whitelisted sort and
// pagination in one query.
func (r *ratingRepository) List(ctx context.Context, q dto.RatingListQuery) ([]models.Rating, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Rating{})

	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}
	if q.WorkID != nil {
		tx = tx.Where("work_id = ?", *q.WorkID)
	}
	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count ratings: %w", err)
	}

	if col, ok := sortableRatingColumns[q.SortField]; ok {
		dir := "asc"
		if q.SortOrder == "descend" {
			dir = "desc"
		}
		tx = tx.Order(col + " " + dir)
	} else {
		tx = tx.Order("id asc")
	}

	var list []models.Rating
	offset := (q.Page - 1) * q.PageSize
	if err := tx.Limit(q.PageSize).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list ratings: %w", err)
	}
	return list, total, nil
}
