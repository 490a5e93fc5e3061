package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ratehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRatingService satisfies the interface without a store. The bad-input
// tests must reject before any service method is reached, so every call
// through the embedded nil interface would panic the test.
type stubRatingService struct {
	service.RatingService
}

func newRatingTestRouter(svc service.RatingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/admin")
	NewRatingHandler(svc).RegisterRoutes(group)
	return r
}

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"MissingField", service.ErrMissingField, http.StatusBadRequest},
		{"UnknownDimension", service.ErrUnknownDimension, http.StatusBadRequest},
		{"ScoreOutOfRange", service.ErrScoreOutOfRange, http.StatusBadRequest},
		{"InvalidStatus", service.ErrInvalidStatus, http.StatusBadRequest},
		{"NotPDF", service.ErrNotPDF, http.StatusBadRequest},
		{"FileTooLarge", service.ErrFileTooLarge, http.StatusBadRequest},
		{"DuplicateRating", service.ErrDuplicateRating, http.StatusConflict},
		{"UsernameTaken", service.ErrUsernameTaken, http.StatusConflict},
		{"RatingNotFound", service.ErrRatingNotFound, http.StatusNotFound},
		{"WorkNotFound", service.ErrWorkNotFound, http.StatusNotFound},
		{"InvalidCredentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"InvalidToken", service.ErrInvalidToken, http.StatusUnauthorized},
		{"Unrecognized", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRatingHandlerBadInput(t *testing.T) {
	router := newRatingTestRouter(&stubRatingService{})

	t.Run("MalformedJSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/ratings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NonNumericID", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{"content": "x"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/api/admin/ratings/abc", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("BadStatusFilter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ratings?status=submitted", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
