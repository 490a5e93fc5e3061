package dto

import (
	"time"

	"ratehub/internal/http-api/models"
)

// OverallStats summarizes the whole ledger. Only submitted ratings count.
type OverallStats struct {
	TotalWorks      int `json:"totalWorks"`
	TotalRatedWorks int `json:"totalRatedWorks"`
	TotalRatings    int `json:"totalRatings"`
	TotalUsers      int `json:"totalUsers"`
}

// WorkStatistics is the per-work summary line. Scores are integer-rounded for
// display. A work with no submitted ratings still appears, all zeros.
type WorkStatistics struct {
	WorkID       int64  `json:"workId"`
	WorkName     string `json:"workName"`
	RatedCount   int    `json:"ratedCount"`
	HighestScore int    `json:"highestScore"`
	LowestScore  int    `json:"lowestScore"`
	AverageScore int    `json:"averageScore"`
}

// DetailedRating is one submitted rating enriched with its computed final
// score and resolved display names.
type DetailedRating struct {
	ID         int64                   `json:"id"`
	UserID     int64                   `json:"userId"`
	WorkID     int64                   `json:"workId"`
	UserName   string                  `json:"userName"`
	WorkName   string                  `json:"workName"`
	Content    string                  `json:"content"`
	Scores     []models.DimensionScore `json:"scores"`
	Status     int                     `json:"status"`
	FinalScore int                     `json:"finalScore"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
}

// StatisticsResponse is the full dashboard payload.
type StatisticsResponse struct {
	Overall         OverallStats     `json:"overall"`
	WorkStatistics  []WorkStatistics `json:"workStatistics"`
	DetailedRatings []DetailedRating `json:"detailedRatings"`
}

// RatedUser is one user's entry inside a work's rating table group. Every
// entry matching the group extreme is tagged, so ties produce multiple
// highest or lowest rows; a lone rater is both at once.
type RatedUser struct {
	ID         int64                   `json:"id"`
	UserID     int64                   `json:"userId"`
	UserName   string                  `json:"userName"`
	Scores     []models.DimensionScore `json:"scores"`
	FinalScore int                     `json:"finalScore"`
	CreatedAt  time.Time               `json:"createdAt"`
	IsHighest  bool                    `json:"isHighest"`
	IsLowest   bool                    `json:"isLowest"`
}

// WorkRatingGroup is the table-view grouping of submitted ratings per work.
// AvgScore keeps two decimals on purpose; the aggregator's per-work average
// is integer-rounded and the two must only agree within rounding tolerance.
type WorkRatingGroup struct {
	WorkID         int64       `json:"workId"`
	WorkName       string      `json:"workName"`
	RatedUserCount int         `json:"ratedUserCount"`
	RatedUsers     []RatedUser `json:"ratedUsers"`
	AvgScore       float64     `json:"avgScore"`
}
