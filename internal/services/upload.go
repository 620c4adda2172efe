package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	"alfredoptarigan/ats-checker/internal/models"
)

var allowedResumeExts = []string{".pdf", ".docx"}

// UploadService validates an uploaded resume and reads it into memory.
// Nothing is written to disk.
type UploadService interface {
	ReadResume(file *multipart.FileHeader) (*models.ResumeFile, error)
	MaxFileSize() int64
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

func (s *uploadService) MaxFileSize() int64 {
	return s.maxFileSize
}

func (s *uploadService) ReadResume(file *multipart.FileHeader) (*models.ResumeFile, error) {
	if file == nil {
		return nil, ErrMissingResume
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(allowedResumeExts, ext) {
		return nil, fmt.Errorf("%w: %q (allowed: %s)", ErrUnsupportedFileType, ext, strings.Join(allowedResumeExts, ", "))
	}

	if file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: max size is %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Read one byte past the limit so a lying Size header is still caught.
	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: max size is %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	return &models.ResumeFile{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
