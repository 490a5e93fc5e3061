package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ratehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto transport status codes. Anything not
// recognized is a 500 with a generic message so internals stay internal.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrUnknownDimension),
		errors.Is(err, service.ErrScoreOutOfRange),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrNotPDF),
		errors.Is(err, service.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateRating),
		errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRatingNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWorkNotFound),
		errors.Is(err, service.ErrDimensionNotFound),
		errors.Is(err, service.ErrFileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
