package dto

// CreateWorkRequest creates a work with its declared rating dimensions.
type CreateWorkRequest struct {
	Title              string  `json:"title" binding:"required"`
	Description        string  `json:"description" binding:"required"`
	RatingDimensionIDs []int64 `json:"ratingDimensionIds" binding:"required"`
}

// UpdateWorkRequest is a partial patch of a work.
type UpdateWorkRequest struct {
	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	RatingDimensionIDs *[]int64 `json:"ratingDimensionIds"`
}

// WorkListQuery filters the admin work list by title substring.
type WorkListQuery struct {
	Title    string
	Page     int
	PageSize int
}
