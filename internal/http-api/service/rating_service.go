package service

import (
	"context"
	"errors"
	"log/slog"

	"ratehub/internal/cache"
	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/models"
	"ratehub/internal/http-api/repository"

	"gorm.io/gorm"
)

// statsCacheKey is the redis key holding the cached statistics payload.
// Every rating mutation drops it.
const statsCacheKey = "ratehub:statistics"

// RatingService is the ratings ledger: it owns the create/update/delete
// lifecycle and enforces the at-most-one-rating-per-(user,work) invariant.
type RatingService interface {
	Create(ctx context.Context, req dto.CreateRatingRequest) (*models.Rating, error)
	Update(ctx context.Context, id int64, req dto.UpdateRatingRequest) (*models.Rating, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q dto.RatingListQuery) (*dto.Page[models.Rating], error)
	ListForUser(ctx context.Context, userID int64) ([]models.Rating, error)
	BatchSubmit(ctx context.Context, items []dto.CreateRatingRequest) []dto.BatchResult
}

type ratingService struct {
	ratingRepo    repository.RatingRepository
	dimensionRepo repository.DimensionRepository
	statsCache    *cache.Cache
	logger        *slog.Logger
}

// NewRatingService builds the ledger. statsCache may be nil when caching is
// disabled.
func NewRatingService(ratingRepo repository.RatingRepository, dimensionRepo repository.DimensionRepository, statsCache *cache.Cache, logger *slog.Logger) RatingService {
	return &ratingService{
		ratingRepo:    ratingRepo,
		dimensionRepo: dimensionRepo,
		statsCache:    statsCache,
		logger:        logger,
	}
}

// Create validates a candidate and persists it. Status defaults to draft.
// The validator's duplicate check is advisory; the unique index on
// (user_id, work_id) is what actually closes the check-then-act window, and
// its violation is reported as the same ErrDuplicateRating.
func (s *ratingService) Create(ctx context.Context, req dto.CreateRatingRequest) (*models.Rating, error) {
	candidate := &models.Rating{
		UserID:  req.UserID,
		WorkID:  req.WorkID,
		Content: req.Content,
		Scores:  req.Scores,
		Status:  req.Status,
	}
	if candidate.Status == 0 {
		candidate.Status = models.StatusDraft
	}

	if err := s.validate(ctx, candidate); err != nil {
		return nil, err
	}

	if err := s.ratingRepo.Create(ctx, candidate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}

	s.invalidateStats(ctx)
	return candidate, nil
}

// Update merges a partial patch into the stored record and re-validates the
// result, excluding the record's own id from the duplicate check. Unset patch
// fields keep their stored value. Status may move in either direction.
func (s *ratingService) Update(ctx context.Context, id int64, req dto.UpdateRatingRequest) (*models.Rating, error) {
	stored, err := s.ratingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	merged := *stored
	if req.UserID != nil {
		merged.UserID = *req.UserID
	}
	if req.WorkID != nil {
		merged.WorkID = *req.WorkID
	}
	if req.Content != nil {
		merged.Content = *req.Content
	}
	if req.Scores != nil {
		merged.Scores = req.Scores
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}

	if err := s.validate(ctx, &merged); err != nil {
		return nil, err
	}

	if err := s.ratingRepo.Save(ctx, &merged); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}

	s.invalidateStats(ctx)
	return &merged, nil
}

func (s *ratingService) Delete(ctx context.Context, id int64) error {
	if err := s.ratingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *ratingService) List(ctx context.Context, q dto.RatingListQuery) (*dto.Page[models.Rating], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 10
	}
	list, total, err := s.ratingRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(list, total, q.Page, q.PageSize), nil
}

func (s *ratingService) ListForUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	return s.ratingRepo.GetByUser(ctx, userID)
}

// BatchSubmit processes each candidate independently and reports a result
// per item. There is no atomicity across items: a failing rating never rolls
// back or blocks its neighbours.
func (s *ratingService) BatchSubmit(ctx context.Context, items []dto.CreateRatingRequest) []dto.BatchResult {
	results := make([]dto.BatchResult, 0, len(items))
	for _, item := range items {
		rating, err := s.Create(ctx, item)
		if err != nil {
			results = append(results, dto.BatchResult{WorkID: item.WorkID, Error: err.Error()})
			continue
		}
		results = append(results, dto.BatchResult{WorkID: item.WorkID, Rating: rating})
	}
	return results
}

// validate loads the dimension catalog and the full ledger and runs the pure
// validator over them. The ledger is small by design; reading it wholesale
// keeps the duplicate rule identical for create and update.
func (s *ratingService) validate(ctx context.Context, candidate *models.Rating) error {
	dimensions, err := s.dimensionRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	existing, err := s.ratingRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	return validateRating(candidate, existing, dimensions)
}

func (s *ratingService) invalidateStats(ctx context.Context) {
	if s.statsCache == nil {
		return
	}
	if err := s.statsCache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate statistics cache", "error", err)
	}
}
