package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"kidsedu/internal/domain"
)

// PublicPrefix is the URL path the server exposes LocalImageStorage files under.
const PublicPrefix = "/uploads"

// LocalImageStorage writes images into a directory on disk.
type LocalImageStorage struct {
	dir string
}

func NewLocalImageStorage(dir string) domain.ImageStorage {
	return &LocalImageStorage{dir: dir}
}

// Upload implements domain.ImageStorage
func (s *LocalImageStorage) Upload(ctx context.Context, name string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return PublicPrefix + "/" + name, nil
}
