package domain

import (
	"context"
	"strings"
	"time"
)

// VocabularyItem is an uploaded image and its optional label.
type VocabularyItem struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Label     *string   `json:"vocabulary"`
	CreatedAt time.Time `json:"created_at"`
}

// HasLabel reports whether the item has a non-blank label.
func (i *VocabularyItem) HasLabel() bool {
	return i.Label != nil && strings.TrimSpace(*i.Label) != ""
}

// LabelText returns the trimmed label, or "" when absent.
func (i *VocabularyItem) LabelText() string {
	if i.Label == nil {
		return ""
	}
	return strings.TrimSpace(*i.Label)
}

// VocabularyRepository is the item side of the external store.
type VocabularyRepository interface {
	// List returns every item, newest first.
	List(ctx context.Context) ([]*VocabularyItem, error)
	// ListLabeled returns only items that have a label.
	ListLabeled(ctx context.Context) ([]*VocabularyItem, error)
	// Insert stores a new item.
	Insert(ctx context.Context, item *VocabularyItem) error
	// UpdateLabel sets the label of an item and returns the updated row.
	// It returns a NotFound DomainError when the id does not exist.
	UpdateLabel(ctx context.Context, id, label string) (*VocabularyItem, error)
	// Ping checks connectivity.
	Ping(ctx context.Context) error
}

// ImageStorage is the object side of the external store.
type ImageStorage interface {
	// Upload stores the bytes under name and returns a public URL.
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
}
