package service

import (
	"testing"

	"ratehub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
)

func catalog() []models.RatingDimension {
	return []models.RatingDimension{
		{ID: 1, Name: "Innovation"},
		{ID: 2, Name: "Professionalism"},
	}
}

func validCandidate() *models.Rating {
	return &models.Rating{
		UserID: 1,
		WorkID: 1,
		Scores: []models.DimensionScore{
			{RatingDimensionID: 1, Score: 80},
			{RatingDimensionID: 2, Score: 90},
		},
		Status: models.StatusDraft,
	}
}

func TestValidateRating(t *testing.T) {
	t.Run("ValidCandidatePasses", func(t *testing.T) {
		err := validateRating(validCandidate(), nil, catalog())
		assert.NoError(t, err)
	})

	t.Run("MissingUserID", func(t *testing.T) {
		c := validCandidate()
		c.UserID = 0
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrMissingField)
	})

	t.Run("MissingWorkID", func(t *testing.T) {
		c := validCandidate()
		c.WorkID = 0
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrMissingField)
	})

	t.Run("EmptyScores", func(t *testing.T) {
		c := validCandidate()
		c.Scores = nil
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrMissingField)
	})

	t.Run("ScoreWithoutDimensionID", func(t *testing.T) {
		c := validCandidate()
		c.Scores[0].RatingDimensionID = 0
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrMissingField)
	})

	t.Run("UnknownDimension", func(t *testing.T) {
		c := validCandidate()
		c.Scores[1].RatingDimensionID = 99
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrUnknownDimension)
	})

	t.Run("ScoreAbove100", func(t *testing.T) {
		c := validCandidate()
		c.Scores[0].Score = 150
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrScoreOutOfRange)
	})

	t.Run("ScoreBelowZero", func(t *testing.T) {
		c := validCandidate()
		c.Scores[0].Score = -1
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrScoreOutOfRange)
	})

	t.Run("BoundaryScoresPass", func(t *testing.T) {
		c := validCandidate()
		c.Scores[0].Score = 0
		c.Scores[1].Score = 100
		assert.NoError(t, validateRating(c, nil, catalog()))
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		c := validCandidate()
		c.Status = 3
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrInvalidStatus)
	})

	t.Run("DuplicateUserWorkPair", func(t *testing.T) {
		existing := []models.Rating{{ID: 5, UserID: 1, WorkID: 1}}
		assert.ErrorIs(t, validateRating(validCandidate(), existing, catalog()), ErrDuplicateRating)
	})

	t.Run("OwnRecordIsNotADuplicate", func(t *testing.T) {
		c := validCandidate()
		c.ID = 5
		existing := []models.Rating{{ID: 5, UserID: 1, WorkID: 1}}
		assert.NoError(t, validateRating(c, existing, catalog()))
	})

	t.Run("SameUserDifferentWorkPasses", func(t *testing.T) {
		existing := []models.Rating{{ID: 5, UserID: 1, WorkID: 2}}
		assert.NoError(t, validateRating(validCandidate(), existing, catalog()))
	})

	// Rules run in a fixed order; a candidate violating several rules
	// reports the first one.
	t.Run("UnknownDimensionReportedBeforeRange", func(t *testing.T) {
		c := validCandidate()
		c.Scores[0].RatingDimensionID = 99
		c.Scores[1].Score = 150
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrUnknownDimension)
	})

	t.Run("RangeReportedBeforeStatus", func(t *testing.T) {
		c := validCandidate()
		c.Scores[0].Score = 101
		c.Status = 7
		assert.ErrorIs(t, validateRating(c, nil, catalog()), ErrScoreOutOfRange)
	})
}
