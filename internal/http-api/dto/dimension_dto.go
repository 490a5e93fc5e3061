package dto

// CreateDimensionRequest adds an axis to the global dimension catalog.
type CreateDimensionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateDimensionRequest is a partial patch of a dimension.
type UpdateDimensionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
