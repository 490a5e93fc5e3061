package models

import "time"

// RatingDimension is a named axis of evaluation on a 0-100 scale. The catalog
// is global; each work references a subset of it.
type RatingDimension struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (RatingDimension) TableName() string {
	return "rating_dimensions"
}
