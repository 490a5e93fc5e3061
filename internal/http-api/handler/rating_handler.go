package handler

import (
	"net/http"
	"strconv"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers the admin rating ledger routes.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/ratings")
	{
		ratings.GET("", h.List)
		ratings.POST("", h.Create)
		ratings.PUT("/:id", h.Update)
		ratings.DELETE("/:id", h.Delete)
	}
}

// List returns a filtered, sorted, paginated slice of the ledger.
// GET /api/admin/ratings?status=&workId=&userId=&page=&pageSize=&sortField=&sortOrder=
func (h *RatingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	q := dto.RatingListQuery{
		Page:      page,
		PageSize:  pageSize,
		SortField: c.Query("sortField"),
		SortOrder: c.Query("sortOrder"),
	}
	if v := c.Query("status"); v != "" {
		status, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		q.Status = &status
	}
	if v := c.Query("workId"); v != "" {
		workID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workId filter"})
			return
		}
		q.WorkID = &workID
	}
	if v := c.Query("userId"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId filter"})
			return
		}
		q.UserID = &userID
	}

	result, err := h.ratingService.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/admin/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// PUT /api/admin/ratings/:id
func (h *RatingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// DELETE /api/admin/ratings/:id
func (h *RatingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ratingService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating deleted"})
}
