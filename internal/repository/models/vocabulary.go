package models

import (
	"database/sql"
	"time"
)

// VocabularyItem mirrors a row of the vocabulary_items table.
type VocabularyItem struct {
	ID         string         `db:"id"`
	ImageURL   string         `db:"image_url"`
	Vocabulary sql.NullString `db:"vocabulary"`
	CreatedAt  time.Time      `db:"created_at"`
}
