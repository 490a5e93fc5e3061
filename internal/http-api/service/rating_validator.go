package service

import "ratehub/internal/http-api/models"

// validateRating checks a candidate rating against the global dimension
// catalog and the ratings already in the ledger. Rules run in a fixed order
// and the first failure wins. The duplicate check skips the candidate's own
// id so updates do not collide with themselves.
//
// Dimension membership is checked against the global catalog only, not
// against the work's declared dimension set; work-scoped enforcement stays at
// the presentation layer.
func validateRating(candidate *models.Rating, existing []models.Rating, dimensions []models.RatingDimension) error {
	if candidate.UserID == 0 || candidate.WorkID == 0 {
		return ErrMissingField
	}
	if len(candidate.Scores) == 0 {
		return ErrMissingField
	}

	known := make(map[int64]bool, len(dimensions))
	for _, d := range dimensions {
		known[d.ID] = true
	}
	for _, s := range candidate.Scores {
		if s.RatingDimensionID == 0 {
			return ErrMissingField
		}
		if !known[s.RatingDimensionID] {
			return ErrUnknownDimension
		}
	}

	for _, s := range candidate.Scores {
		if s.Score < 0 || s.Score > 100 {
			return ErrScoreOutOfRange
		}
	}

	if candidate.Status != models.StatusDraft && candidate.Status != models.StatusSubmitted {
		return ErrInvalidStatus
	}

	for _, r := range existing {
		if r.ID == candidate.ID {
			continue
		}
		if r.UserID == candidate.UserID && r.WorkID == candidate.WorkID {
			return ErrDuplicateRating
		}
	}
	return nil
}
