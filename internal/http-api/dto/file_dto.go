package dto

import (
	"fmt"
	"time"

	"ratehub/internal/http-api/models"
)

// FileResponse is file metadata plus the access URLs the frontend embeds.
type FileResponse struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	Mimetype     string    `json:"mimetype"`
	CreatedAt    time.Time `json:"createdAt"`
	URL          string    `json:"url"`
	PreviewURL   string    `json:"previewUrl"`
	DownloadURL  string    `json:"downloadUrl"`
}

// FromModelToFileResponse attaches preview and download URLs to a file row.
func FromModelToFileResponse(f *models.File) *FileResponse {
	return &FileResponse{
		ID:           f.ID,
		Filename:     f.Filename,
		OriginalName: f.OriginalName,
		Size:         f.Size,
		Mimetype:     f.Mimetype,
		CreatedAt:    f.CreatedAt,
		URL:          fmt.Sprintf("/api/files/%d", f.ID),
		PreviewURL:   fmt.Sprintf("/api/files/%d/preview", f.ID),
		DownloadURL:  fmt.Sprintf("/api/files/%d/download", f.ID),
	}
}
