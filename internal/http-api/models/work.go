package models

import "time"

// Work is a unit of content to be rated. RatingDimensionIDs declares exactly
// which dimensions a rater scores for this work; the set may differ per work.
// FileIDs reference uploaded attachments.
type Work struct {
	ID                 int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title              string    `json:"title" gorm:"not null"`
	Description        string    `json:"description"`
	RatingDimensionIDs []int64   `json:"ratingDimensionIds" gorm:"serializer:json"`
	FileIDs            []int64   `json:"files" gorm:"column:files;serializer:json"`
	CreatedAt          time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Work) TableName() string {
	return "works"
}
