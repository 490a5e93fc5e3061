package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"ratehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	fileService service.FileService
}

func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// RegisterPublicRoutes mounts the read side. Raters follow preview and
// download links without a token.
func (h *FileHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	files := router.Group("/files")
	{
		files.GET("", h.List)
		files.GET("/:id", h.Get)
		files.GET("/:id/preview", h.Preview)
		files.GET("/:id/download", h.Download)
	}
}

// RegisterAdminRoutes mounts the write side behind the admin token.
func (h *FileHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	files := router.Group("/files")
	{
		files.POST("", h.Upload)
		files.DELETE("/:id", h.Delete)
	}
}

// GET /api/files
func (h *FileHandler) List(c *gin.Context) {
	files, err := h.fileService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// GET /api/files/:id
func (h *FileHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	file, err := h.fileService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

// Preview streams the PDF inline so browsers render it in place.
// GET /api/files/:id/preview
func (h *FileHandler) Preview(c *gin.Context) {
	h.serve(c, "inline")
}

// Download streams the PDF as an attachment.
// GET /api/files/:id/download
func (h *FileHandler) Download(c *gin.Context) {
	h.serve(c, "attachment")
}

func (h *FileHandler) serve(c *gin.Context, disposition string) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	file, path, err := h.fileService.Resolve(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file blob missing"})
		return
	}

	c.Header("Content-Type", file.Mimetype)
	// filename* carries the RFC 5987 encoded original name for non-ASCII.
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q; filename*=UTF-8''%s",
		disposition, file.OriginalName, url.PathEscape(file.OriginalName)))
	c.File(path)
}

// Upload accepts a single multipart "file" field, PDF only. An optional
// workId form field attaches the upload to that work.
// POST /api/admin/files
func (h *FileHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	var workID *int64
	if v := c.PostForm("workId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workId"})
			return
		}
		workID = &id
	}

	file, err := h.fileService.Upload(c.Request.Context(), fh, workID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

// DELETE /api/admin/files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.fileService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
