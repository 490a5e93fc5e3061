package handler

import (
	"net/http"
	"strconv"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type WorkHandler struct {
	workService *service.WorkService
	fileService service.FileService
}

func NewWorkHandler(workService *service.WorkService, fileService service.FileService) *WorkHandler {
	return &WorkHandler{workService: workService, fileService: fileService}
}

// RegisterRoutes registers the admin work CRUD routes.
func (h *WorkHandler) RegisterRoutes(router *gin.RouterGroup) {
	works := router.Group("/works")
	{
		works.GET("", h.List)
		works.GET("/:id", h.Get)
		works.GET("/:id/files", h.ListFiles)
		works.POST("", h.Create)
		works.PUT("/:id", h.Update)
		works.DELETE("/:id", h.Delete)
	}
}

// List returns a paginated work list, optionally filtered by title substring.
// GET /api/admin/works?title=&page=1&pageSize=10
func (h *WorkHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.workService.List(c.Request.Context(), dto.WorkListQuery{
		Title:    c.Query("title"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/admin/works/:id
func (h *WorkHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	work, err := h.workService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, work)
}

// ListFiles resolves the work's attachment metadata.
// GET /api/admin/works/:id/files
func (h *WorkHandler) ListFiles(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	files, err := h.fileService.ListForWork(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// POST /api/admin/works
func (h *WorkHandler) Create(c *gin.Context) {
	var req dto.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := h.workService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, work)
}

// PUT /api/admin/works/:id
func (h *WorkHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := h.workService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, work)
}

// DELETE /api/admin/works/:id
func (h *WorkHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.workService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "work deleted"})
}
