package dto

import "ratehub/internal/http-api/models"

// CreateRatingRequest carries a candidate rating. Status is optional and
// defaults to draft.
type CreateRatingRequest struct {
	UserID  int64                   `json:"userId" binding:"required"`
	WorkID  int64                   `json:"workId" binding:"required"`
	Content string                  `json:"content"`
	Scores  []models.DimensionScore `json:"scores" binding:"required"`
	Status  int                     `json:"status"`
}

// UpdateRatingRequest is a partial patch; nil fields keep their stored value.
// Scores and Status are validated against the merged record, not the patch.
type UpdateRatingRequest struct {
	UserID  *int64                  `json:"userId"`
	WorkID  *int64                  `json:"workId"`
	Content *string                 `json:"content"`
	Scores  []models.DimensionScore `json:"scores"`
	Status  *int                    `json:"status"`
}

// RatingListQuery mirrors the admin list screen: optional filters, pagination
// and a single-field sort.
type RatingListQuery struct {
	Status    *int
	WorkID    *int64
	UserID    *int64
	Page      int
	PageSize  int
	SortField string
	SortOrder string // "ascend" or "descend"
}

// BatchResult reports one item of a batch submission. Items are processed
// independently; a failing item never rolls back its neighbours.
type BatchResult struct {
	WorkID int64          `json:"workId"`
	Rating *models.Rating `json:"rating,omitempty"`
	Error  string         `json:"error,omitempty"`
}
