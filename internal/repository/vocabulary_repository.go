package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kidsedu/internal/domain"
	"kidsedu/internal/repository/models"
	"kidsedu/internal/util"
)

const (
	selectItemColumns = "SELECT id, image_url, vocabulary, created_at FROM vocabulary_items"

	listItemsQuery   = selectItemColumns + " ORDER BY created_at DESC"
	listLabeledQuery = selectItemColumns + " WHERE vocabulary IS NOT NULL AND btrim(vocabulary) <> '' ORDER BY created_at DESC"

	insertItemQuery = `INSERT INTO vocabulary_items (id, image_url, vocabulary, created_at)
              VALUES (:id, :image_url, :vocabulary, :created_at)`

	updateLabelQuery = `UPDATE vocabulary_items SET vocabulary = $1 WHERE id = $2
              RETURNING id, image_url, vocabulary, created_at`
)

// VocabularyDatabaseAdapter stores vocabulary items in Postgres through sqlx.
type VocabularyDatabaseAdapter struct {
	db DBTX
}

// NewVocabularyDatabaseAdapter creates a new instance of VocabularyDatabaseAdapter
func NewVocabularyDatabaseAdapter(db DBTX) domain.VocabularyRepository {
	return &VocabularyDatabaseAdapter{db: db}
}

// List implements domain.VocabularyRepository
func (r *VocabularyDatabaseAdapter) List(ctx context.Context) ([]*domain.VocabularyItem, error) {
	return r.selectItems(ctx, listItemsQuery)
}

// ListLabeled implements domain.VocabularyRepository
func (r *VocabularyDatabaseAdapter) ListLabeled(ctx context.Context) ([]*domain.VocabularyItem, error) {
	return r.selectItems(ctx, listLabeledQuery)
}

func (r *VocabularyDatabaseAdapter) selectItems(ctx context.Context, query string) ([]*domain.VocabularyItem, error) {
	var rows []models.VocabularyItem
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.VocabularyItem{}, nil
		}
		return nil, fmt.Errorf("failed to select vocabulary items: %w", err)
	}

	items := make([]*domain.VocabularyItem, len(rows))
	for i := range rows {
		items[i] = convertToDomainItem(&rows[i])
	}
	return items, nil
}

// Insert implements domain.VocabularyRepository. Missing id and timestamp are filled in.
func (r *VocabularyDatabaseAdapter) Insert(ctx context.Context, item *domain.VocabularyItem) error {
	if item.ID == "" {
		item.ID = util.NewULID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, insertItemQuery, convertToModelItem(item)); err != nil {
		return fmt.Errorf("failed to insert vocabulary item: %w", err)
	}
	return nil
}

// UpdateLabel implements domain.VocabularyRepository
func (r *VocabularyDatabaseAdapter) UpdateLabel(ctx context.Context, id, label string) (*domain.VocabularyItem, error) {
	var row models.VocabularyItem
	if err := r.db.GetContext(ctx, &row, updateLabelQuery, label, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("Vocabulary item not found with ID: %s", id))
		}
		return nil, fmt.Errorf("failed to update vocabulary label: %w", err)
	}
	return convertToDomainItem(&row), nil
}

// Ping implements domain.VocabularyRepository
func (r *VocabularyDatabaseAdapter) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func convertToDomainItem(row *models.VocabularyItem) *domain.VocabularyItem {
	item := &domain.VocabularyItem{
		ID:        row.ID,
		ImageURL:  row.ImageURL,
		CreatedAt: row.CreatedAt,
	}
	if row.Vocabulary.Valid {
		label := row.Vocabulary.String
		item.Label = &label
	}
	return item
}

func convertToModelItem(item *domain.VocabularyItem) *models.VocabularyItem {
	row := &models.VocabularyItem{
		ID:        item.ID,
		ImageURL:  item.ImageURL,
		CreatedAt: item.CreatedAt,
	}
	if item.Label != nil {
		row.Vocabulary = sql.NullString{String: *item.Label, Valid: true}
	}
	return row
}
