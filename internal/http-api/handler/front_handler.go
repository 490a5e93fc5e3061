package handler

import (
	"net/http"
	"strconv"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// FrontHandler serves the rater-facing surface. There is no login on this
// side; a rater picks their identity from the user list, so every endpoint
// here is public and sits behind the rate limiter only.
type FrontHandler struct {
	userService      *service.UserService
	workService      *service.WorkService
	dimensionService *service.DimensionService
	ratingService    service.RatingService
}

func NewFrontHandler(userService *service.UserService, workService *service.WorkService, dimensionService *service.DimensionService, ratingService service.RatingService) *FrontHandler {
	return &FrontHandler{
		userService:      userService,
		workService:      workService,
		dimensionService: dimensionService,
		ratingService:    ratingService,
	}
}

func (h *FrontHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users", h.ListUsers)
	router.GET("/works", h.ListWorks)
	router.GET("/rating-dimensions", h.ListDimensions)

	ratings := router.Group("/ratings")
	{
		ratings.GET("", h.ListRatings)
		ratings.POST("", h.CreateRating)
		ratings.POST("/batch", h.BatchSubmit)
		ratings.PUT("/:id", h.UpdateRating)
	}
}

// ListUsers returns every rater identity for the picker.
// GET /api/front/users
func (h *FrontHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListWorks returns every work with its declared dimensions and file ids.
// GET /api/front/works
func (h *FrontHandler) ListWorks(c *gin.Context) {
	works, err := h.workService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, works)
}

// GET /api/front/rating-dimensions
func (h *FrontHandler) ListDimensions(c *gin.Context) {
	dims, err := h.dimensionService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dims)
}

// ListRatings returns one user's ratings, drafts included, so the form can
// restore unsubmitted work.
// GET /api/front/ratings?userId=
func (h *FrontHandler) ListRatings(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	ratings, err := h.ratingService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// POST /api/front/ratings
func (h *FrontHandler) CreateRating(c *gin.Context) {
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

// PUT /api/front/ratings/:id
func (h *FrontHandler) UpdateRating(c *gin.Context) {
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

// BatchSubmit takes a list of candidate ratings and processes them
// independently. The response always carries one result per item; the call
// itself succeeds even when every item fails.
// POST /api/front/ratings/batch
func (h *FrontHandler) BatchSubmit(c *gin.Context) {
	var items []dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty batch"})
		return
	}

	results := h.ratingService.BatchSubmit(c.Request.Context(), items)
	c.JSON(http.StatusOK, gin.H{"results": results})
}
