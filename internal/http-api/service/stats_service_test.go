package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(dimID int64, v float64) models.DimensionScore {
	return models.DimensionScore{RatingDimensionID: dimID, Score: v}
}

func TestComputeStatistics(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	works := []models.Work{
		{ID: 1, Title: "Gateway"},
		{ID: 2, Title: "Ledger"},
	}

	t.Run("DraftsAreInvisible", func(t *testing.T) {
		ratings := []models.Rating{
			{ID: 1, UserID: 1, WorkID: 1, Scores: []models.DimensionScore{score(1, 80)}, Status: models.StatusSubmitted},
			{ID: 2, UserID: 2, WorkID: 1, Scores: []models.DimensionScore{score(1, 40)}, Status: models.StatusDraft},
		}
		stats := computeStatistics(ratings, works, users)

		assert.Equal(t, 1, stats.Overall.TotalRatings)
		assert.Equal(t, 1, stats.Overall.TotalUsers)
		require.Len(t, stats.DetailedRatings, 1)
		assert.Equal(t, int64(1), stats.DetailedRatings[0].UserID)

		assert.Equal(t, 1, stats.WorkStatistics[0].RatedCount)
		assert.Equal(t, 80, stats.WorkStatistics[0].HighestScore)
	})

	t.Run("UnratedWorkKeepsZeroLine", func(t *testing.T) {
		ratings := []models.Rating{
			{ID: 1, UserID: 1, WorkID: 1, Scores: []models.DimensionScore{score(1, 80)}, Status: models.StatusSubmitted},
		}
		stats := computeStatistics(ratings, works, users)

		require.Len(t, stats.WorkStatistics, 2)
		ledger := stats.WorkStatistics[1]
		assert.Equal(t, int64(2), ledger.WorkID)
		assert.Equal(t, 0, ledger.RatedCount)
		assert.Equal(t, 0, ledger.HighestScore)
		assert.Equal(t, 0, ledger.LowestScore)
		assert.Equal(t, 0, ledger.AverageScore)
		assert.Equal(t, 1, stats.Overall.TotalRatedWorks)
		assert.Equal(t, 2, stats.Overall.TotalWorks)
	})

	t.Run("PerWorkExtremesAndAverage", func(t *testing.T) {
		ratings := []models.Rating{
			{ID: 1, UserID: 1, WorkID: 1, Scores: []models.DimensionScore{score(1, 80)}, Status: models.StatusSubmitted},
			{ID: 2, UserID: 2, WorkID: 1, Scores: []models.DimensionScore{score(1, 61)}, Status: models.StatusSubmitted},
		}
		stats := computeStatistics(ratings, works, users)

		line := stats.WorkStatistics[0]
		assert.Equal(t, 80, line.HighestScore)
		assert.Equal(t, 61, line.LowestScore)
		// (80+61)/2 = 70.5 rounds to 71
		assert.Equal(t, 71, line.AverageScore)
	})

	t.Run("FinalScoreIsRoundedMean", func(t *testing.T) {
		ratings := []models.Rating{
			{ID: 1, UserID: 1, WorkID: 1, Scores: []models.DimensionScore{score(1, 70), score(2, 81)}, Status: models.StatusSubmitted},
		}
		stats := computeStatistics(ratings, works, users)

		require.Len(t, stats.DetailedRatings, 1)
		// (70+81)/2 = 75.5 rounds to 76
		assert.Equal(t, 76, stats.DetailedRatings[0].FinalScore)
		assert.Equal(t, 76, stats.WorkStatistics[0].HighestScore)
	})

	t.Run("SingleRatingScenario", func(t *testing.T) {
		ratings := []models.Rating{
			{ID: 1, UserID: 1, WorkID: 1, Scores: []models.DimensionScore{score(1, 80)}, Status: models.StatusSubmitted},
		}
		stats := computeStatistics(ratings, works, users)

		line := stats.WorkStatistics[0]
		assert.Equal(t, 1, line.RatedCount)
		assert.Equal(t, 80, line.HighestScore)
		assert.Equal(t, 80, line.LowestScore)
		assert.Equal(t, 80, line.AverageScore)
	})

	t.Run("FallbackNamesForDeletedRecords", func(t *testing.T) {
		ratings := []models.Rating{
			{ID: 1, UserID: 7, WorkID: 9, Scores: []models.DimensionScore{score(1, 50)}, Status: models.StatusSubmitted},
		}
		stats := computeStatistics(ratings, works, users)

		require.Len(t, stats.DetailedRatings, 1)
		assert.Equal(t, "User7", stats.DetailedRatings[0].UserName)
		assert.Equal(t, "Work9", stats.DetailedRatings[0].WorkName)
	})

	t.Run("Deterministic", func(t *testing.T) {
		ratings := []models.Rating{
			{ID: 1, UserID: 1, WorkID: 1, Scores: []models.DimensionScore{score(1, 80)}, Status: models.StatusSubmitted},
			{ID: 2, UserID: 2, WorkID: 2, Scores: []models.DimensionScore{score(1, 30)}, Status: models.StatusSubmitted},
		}
		first := computeStatistics(ratings, works, users)
		second := computeStatistics(ratings, works, users)
		assert.Equal(t, first, second)
	})
}

func TestGroupByWork(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
		{ID: 3, Username: "carol"},
	}
	works := []models.Work{{ID: 1, Title: "Gateway"}}

	makeGroups := func(sortOrder string, finals ...float64) []dto.WorkRatingGroup {
		ratings := make([]models.Rating, 0, len(finals))
		for i, f := range finals {
			ratings = append(ratings, models.Rating{
				ID:     int64(i + 1),
				UserID: int64(i + 1),
				WorkID: 1,
				Scores: []models.DimensionScore{score(1, f)},
				Status: models.StatusSubmitted,
			})
		}
		stats := computeStatistics(ratings, works, users)
		return groupByWork(stats.DetailedRatings, sortOrder)
	}

	t.Run("TiesTagEveryExtreme", func(t *testing.T) {
		groups := makeGroups("descend", 80, 80, 60)
		require.Len(t, groups, 1)
		g := groups[0]
		require.Len(t, g.RatedUsers, 3)

		assert.Equal(t, 80, g.RatedUsers[0].FinalScore)
		assert.True(t, g.RatedUsers[0].IsHighest)
		assert.True(t, g.RatedUsers[1].IsHighest)
		assert.False(t, g.RatedUsers[2].IsHighest)
		assert.True(t, g.RatedUsers[2].IsLowest)
		assert.False(t, g.RatedUsers[0].IsLowest)

		// (80+80+60)/3 = 73.33
		assert.InDelta(t, 73.33, g.AvgScore, 0.001)
		assert.Equal(t, 3, g.RatedUserCount)
	})

	t.Run("LoneRaterIsBothExtremes", func(t *testing.T) {
		groups := makeGroups("ascend", 55)
		require.Len(t, groups, 1)
		require.Len(t, groups[0].RatedUsers, 1)
		assert.True(t, groups[0].RatedUsers[0].IsHighest)
		assert.True(t, groups[0].RatedUsers[0].IsLowest)
	})

	t.Run("AscendSortsLowFirst", func(t *testing.T) {
		groups := makeGroups("ascend", 90, 10, 50)
		finals := []int{groups[0].RatedUsers[0].FinalScore, groups[0].RatedUsers[1].FinalScore, groups[0].RatedUsers[2].FinalScore}
		assert.Equal(t, []int{10, 50, 90}, finals)
	})

	t.Run("DescendSortsHighFirst", func(t *testing.T) {
		groups := makeGroups("descend", 10, 90, 50)
		finals := []int{groups[0].RatedUsers[0].FinalScore, groups[0].RatedUsers[1].FinalScore, groups[0].RatedUsers[2].FinalScore}
		assert.Equal(t, []int{90, 50, 10}, finals)
	})

	t.Run("EmptyLedgerYieldsNoGroups", func(t *testing.T) {
		groups := groupByWork(nil, "ascend")
		assert.Empty(t, groups)
	})
}

func TestStatsServiceGetStatistics(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ratingRepo := newFakeRatingRepo()
	workRepo := &fakeWorkRepo{works: []models.Work{{ID: 1, Title: "Gateway"}}}
	userRepo := &fakeUserRepo{users: []models.User{{ID: 1, Username: "alice"}}}

	require.NoError(t, ratingRepo.Create(ctx, &models.Rating{
		UserID: 1, WorkID: 1,
		Scores: []models.DimensionScore{score(1, 80)},
		Status: models.StatusSubmitted,
	}))

	svc := NewStatsService(ratingRepo, workRepo, userRepo, nil, logger)

	stats, err := svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Overall.TotalRatings)
	require.Len(t, stats.WorkStatistics, 1)
	assert.Equal(t, 80, stats.WorkStatistics[0].AverageScore)

	groups, err := svc.GetRatingTable(ctx, "descend")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Gateway", groups[0].WorkName)
	assert.InDelta(t, 80.0, groups[0].AvgScore, 0.001)
}
