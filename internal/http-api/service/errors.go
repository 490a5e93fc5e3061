package service

import "errors"

// Validation failures surface the first violated rule; nothing is aggregated.
// Handlers translate these into transport status codes.
var (
	ErrMissingField     = errors.New("user id, work id and scores are required")
	ErrUnknownDimension = errors.New("score references an unknown rating dimension")
	ErrScoreOutOfRange  = errors.New("score must be between 0 and 100")
	ErrInvalidStatus    = errors.New("status must be draft (1) or submitted (2)")
	ErrDuplicateRating  = errors.New("this user has already rated this work")

	ErrRatingNotFound    = errors.New("rating not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrWorkNotFound      = errors.New("work not found")
	ErrDimensionNotFound = errors.New("rating dimension not found")
	ErrFileNotFound      = errors.New("file not found")

	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrNotPDF       = errors.New("only PDF uploads are accepted")
	ErrFileTooLarge = errors.New("uploaded file exceeds the size limit")
)
