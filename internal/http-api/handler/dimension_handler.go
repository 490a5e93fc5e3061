package handler

import (
	"net/http"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type DimensionHandler struct {
	dimensionService *service.DimensionService
}

func NewDimensionHandler(dimensionService *service.DimensionService) *DimensionHandler {
	return &DimensionHandler{dimensionService: dimensionService}
}

// RegisterRoutes registers the admin dimension catalog routes.
func (h *DimensionHandler) RegisterRoutes(router *gin.RouterGroup) {
	dims := router.Group("/rating-dimensions")
	{
		dims.GET("", h.List)
		dims.POST("", h.Create)
		dims.PUT("/:id", h.Update)
		dims.DELETE("/:id", h.Delete)
	}
}

// List returns the whole catalog. It is small and unpaginated.
// GET /api/admin/rating-dimensions
func (h *DimensionHandler) List(c *gin.Context) {
	dims, err := h.dimensionService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dims)
}

// POST /api/admin/rating-dimensions
func (h *DimensionHandler) Create(c *gin.Context) {
	var req dto.CreateDimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dim, err := h.dimensionService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dim)
}

// PUT /api/admin/rating-dimensions/:id
func (h *DimensionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateDimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dim, err := h.dimensionService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dim)
}

// DELETE /api/admin/rating-dimensions/:id
func (h *DimensionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.dimensionService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating dimension deleted"})
}
