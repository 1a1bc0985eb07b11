package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"moviehub-be/internal/models"

	"github.com/google/uuid"
)

// FileService saves uploaded files under a local upload root.
type FileService struct {
	uploadDir string
	baseURL   string
}

func NewFileService(uploadDir, baseURL string) *FileService {
	return &FileService{
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}
}

// Save writes each uploaded file into uploadDir/<folder> under a generated
// name and returns their public URLs. An empty folder falls back to
// "default"; path separators in folder are stripped.
func (s *FileService) Save(files []*multipart.FileHeader, folder string) ([]models.FileResponse, error) {
	if folder == "" {
		folder = "default"
	}
	folder = filepath.Base(filepath.Clean(folder))

	dir := filepath.Join(s.uploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	responses := make([]models.FileResponse, 0, len(files))
	for _, fh := range files {
		name := uuid.New().String() + filepath.Ext(fh.Filename)
		if err := s.saveOne(fh, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		responses = append(responses, models.FileResponse{
			URL:  fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, folder, name),
			Name: name,
		})
	}
	return responses, nil
}

func (s *FileService) saveOne(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
