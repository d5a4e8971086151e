package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kidsedu/internal/config"
	"kidsedu/internal/domain"
)

const defaultUploadTimeout = 30 * time.Second

// HTTPImageStorage uploads images to a Supabase-Storage compatible REST endpoint.
type HTTPImageStorage struct {
	baseURL string
	key     string
	bucket  string
	client  *http.Client
}

// NewHTTPImageStorage creates an HTTPImageStorage. A nil client gets a default with a timeout.
func NewHTTPImageStorage(cfg config.StorageConfig, client *http.Client) domain.ImageStorage {
	if client == nil {
		client = &http.Client{Timeout: defaultUploadTimeout}
	}
	return &HTTPImageStorage{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.Key,
		bucket:  cfg.Bucket,
		client:  client,
	}
}

// Upload implements domain.ImageStorage
func (s *HTTPImageStorage) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	objectPath := url.PathEscape(s.bucket) + "/" + url.PathEscape(name)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s", s.baseURL, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("apikey", s.key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("storage responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s", s.baseURL, objectPath), nil
}
