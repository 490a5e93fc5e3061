package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"slices"

	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/models"
	"ratehub/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileService stores PDF attachments on disk and their metadata in the
// database. Blobs are opaque to the rest of the system and addressed by
// integer file id.
type FileService interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, workID *int64) (*dto.FileResponse, error)
	Get(ctx context.Context, id int64) (*dto.FileResponse, error)
	ListAll(ctx context.Context) ([]dto.FileResponse, error)
	ListForWork(ctx context.Context, workID int64) ([]dto.FileResponse, error)
	Resolve(ctx context.Context, id int64) (*models.File, string, error)
	Delete(ctx context.Context, id int64) error
}

type fileService struct {
	fileRepo    repository.FileRepository
	workRepo    repository.WorkRepository
	storagePath string
	maxBytes    int64
	logger      *slog.Logger
}

func NewFileService(fileRepo repository.FileRepository, workRepo repository.WorkRepository, storagePath string, maxBytes int64, logger *slog.Logger) FileService {
	return &fileService{
		fileRepo:    fileRepo,
		workRepo:    workRepo,
		storagePath: storagePath,
		maxBytes:    maxBytes,
		logger:      logger,
	}
}

// Upload gates on the PDF MIME type, writes the blob under a uuid-prefixed
// name and records the metadata row. When workID is given the file is
// attached to that work's file list.
func (s *fileService) Upload(ctx context.Context, fh *multipart.FileHeader, workID *int64) (*dto.FileResponse, error) {
	if fh.Header.Get("Content-Type") != "application/pdf" {
		return nil, ErrNotPDF
	}
	if fh.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	if err := os.MkdirAll(s.storagePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	storedName := uuid.New().String() + "-" + filepath.Base(fh.Filename)
	dst := filepath.Join(s.storagePath, storedName)
	if err := saveUploadedFile(fh, dst); err != nil {
		return nil, err
	}

	file := &models.File{
		Filename:     storedName,
		OriginalName: fh.Filename,
		Size:         fh.Size,
		Mimetype:     "application/pdf",
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		// Do not leave an orphaned blob behind a failed metadata write.
		if rmErr := os.Remove(dst); rmErr != nil {
			s.logger.Warn("failed to remove orphaned upload", "path", dst, "error", rmErr)
		}
		return nil, err
	}

	if workID != nil {
		if err := s.attachToWork(ctx, *workID, file.ID); err != nil {
			return nil, err
		}
	}
	return dto.FromModelToFileResponse(file), nil
}

func (s *fileService) Get(ctx context.Context, id int64) (*dto.FileResponse, error) {
	file, err := s.fileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return dto.FromModelToFileResponse(file), nil
}

func (s *fileService) ListAll(ctx context.Context) ([]dto.FileResponse, error) {
	files, err := s.fileRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toFileResponses(files), nil
}

// ListForWork resolves the work's file id list to metadata. A missing work
// yields ErrWorkNotFound; a work without attachments yields an empty list.
func (s *fileService) ListForWork(ctx context.Context, workID int64) ([]dto.FileResponse, error) {
	work, err := s.workRepo.FindByID(ctx, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	files, err := s.fileRepo.FindByIDs(ctx, work.FileIDs)
	if err != nil {
		return nil, err
	}
	return toFileResponses(files), nil
}

// Resolve returns the metadata row and the on-disk path for streaming.
func (s *fileService) Resolve(ctx context.Context, id int64) (*models.File, string, error) {
	file, err := s.fileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrFileNotFound
		}
		return nil, "", err
	}
	return file, filepath.Join(s.storagePath, file.Filename), nil
}

// Delete removes the blob, the metadata row and every work's reference to
// the id. A blob that is already gone from disk does not block the delete.
func (s *fileService) Delete(ctx context.Context, id int64) error {
	file, err := s.fileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFileNotFound
		}
		return err
	}

	path := filepath.Join(s.storagePath, file.Filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove file blob", "path", path, "error", err)
	}

	if err := s.fileRepo.Delete(ctx, id); err != nil {
		return err
	}

	works, err := s.workRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range works {
		if !slices.Contains(works[i].FileIDs, id) {
			continue
		}
		works[i].FileIDs = slices.DeleteFunc(works[i].FileIDs, func(fid int64) bool { return fid == id })
		if err := s.workRepo.Save(ctx, &works[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *fileService) attachToWork(ctx context.Context, workID, fileID int64) error {
	work, err := s.workRepo.FindByID(ctx, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return err
	}
	work.FileIDs = append(work.FileIDs, fileID)
	return s.workRepo.Save(ctx, work)
}

func saveUploadedFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create blob: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

func toFileResponses(files []models.File) []dto.FileResponse {
	out := make([]dto.FileResponse, 0, len(files))
	for i := range files {
		out = append(out, *dto.FromModelToFileResponse(&files[i]))
	}
	return out
}
