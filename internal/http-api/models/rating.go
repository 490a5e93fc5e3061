package models

import "time"

// Rating status values. A draft is invisible to every aggregate statistic;
// submitting is the only transition that makes a rating count. The store does
// not forbid flipping a submitted rating back to draft.
const (
	StatusDraft     = 1
	StatusSubmitted = 2
)

// DimensionScore is one dimension's score inside a rating. It is embedded in
// the rating row as JSON, never stored standalone.
type DimensionScore struct {
	RatingDimensionID int64   `json:"ratingDimensionId"`
	Score             float64 `json:"score"`
}

// Rating is one user's complete scoring of one work. The composite unique
// index makes the store reject a second rating for the same (user, work) pair
// even if two writers race past the application-level duplicate check.
type Rating struct {
	ID        int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64            `json:"userId" gorm:"not null;uniqueIndex:idx_ratings_user_work"`
	WorkID    int64            `json:"workId" gorm:"not null;uniqueIndex:idx_ratings_user_work"`
	Content   string           `json:"content"`
	Scores    []DimensionScore `json:"scores" gorm:"serializer:json;not null"`
	Status    int              `json:"status" gorm:"not null;default:1"`
	CreatedAt time.Time        `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Rating) TableName() string {
	return "ratings"
}

// FinalScore is the mean of the rating's dimension scores rounded to the
// nearest integer. Computed on read, never persisted. A rating may carry
// fewer score entries than its work declares dimensions; the mean uses only
// the entries that are present.
func (r *Rating) FinalScore() int {
	if len(r.Scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range r.Scores {
		sum += s.Score
	}
	mean := sum / float64(len(r.Scores))
	return int(mean + 0.5)
}
