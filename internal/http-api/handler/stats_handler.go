package handler

import (
	"net/http"

	"ratehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// RegisterRoutes registers the dashboard aggregate routes.
func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/statistics", h.GetStatistics)
	router.GET("/statistics/table", h.GetRatingTable)
}

// GetStatistics returns the overall totals, per-work summaries and the
// detailed rating list in one payload.
// GET /api/admin/statistics
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statsService.GetStatistics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRatingTable returns the per-work rating groups for the table view.
// Unknown sort orders fall back to ascending.
// GET /api/admin/statistics/table?sortOrder=ascend|descend
func (h *StatsHandler) GetRatingTable(c *gin.Context) {
	groups, err := h.statsService.GetRatingTable(c.Request.Context(), c.DefaultQuery("sortOrder", "ascend"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
