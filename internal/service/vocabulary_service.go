package service

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"kidsedu/internal/cache"
	"kidsedu/internal/domain"
	"kidsedu/internal/dto"
	"kidsedu/internal/game"
	"kidsedu/internal/logger"
	"kidsedu/internal/util"

	"go.uber.org/zap"
)

const notConfiguredMessage = "Vocabulary store is not configured"

// VocabularyService defines the picture vocabulary game operations
type VocabularyService interface {
	ListItems(ctx context.Context) ([]*domain.VocabularyItem, error)
	UploadImage(ctx context.Context, upload dto.ImageUpload) (*domain.VocabularyItem, error)
	ImportItem(ctx context.Context, upload dto.ImageUpload, label string) (*domain.VocabularyItem, error)
	UpdateLabel(ctx context.Context, id, label string) (*domain.VocabularyItem, error)
	GenerateQuestions(ctx context.Context) ([]domain.VocabularyQuestion, error)
	CheckAnswers(answers, correctAnswers []string) (domain.ScoreResult, error)
}

// VocabularyServiceOptions holds the optional collaborators of the vocabulary service.
type VocabularyServiceOptions struct {
	// Cache, when set, keeps item listings for ItemTTL.
	Cache   domain.Cache
	ItemTTL time.Duration
	NewRand func() *rand.Rand
	Now     func() time.Time
}

type vocabularyService struct {
	repo    domain.VocabularyRepository
	storage domain.ImageStorage
	cache   domain.Cache
	itemTTL time.Duration
	newRand func() *rand.Rand
	now     func() time.Time
}

// NewVocabularyService creates a VocabularyService. With a nil repo or storage
// every operation fails with a configuration error.
func NewVocabularyService(repo domain.VocabularyRepository, storage domain.ImageStorage, opts VocabularyServiceOptions) VocabularyService {
	s := &vocabularyService{
		repo:    repo,
		storage: storage,
		cache:   opts.Cache,
		itemTTL: opts.ItemTTL,
		newRand: opts.NewRand,
		now:     opts.Now,
	}
	if s.newRand == nil {
		s.newRand = game.NewRand
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *vocabularyService) configured() error {
	if s.repo == nil || s.storage == nil {
		return domain.NewConfigurationError(notConfiguredMessage)
	}
	return nil
}

// ListItems implements VocabularyService
func (s *vocabularyService) ListItems(ctx context.Context) ([]*domain.VocabularyItem, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}
	return s.cachedItems(ctx, cache.AllItemsKey(), s.repo.List)
}

// UploadImage implements VocabularyService
func (s *vocabularyService) UploadImage(ctx context.Context, upload dto.ImageUpload) (*domain.VocabularyItem, error) {
	return s.createItem(ctx, upload, nil)
}

// ImportItem implements VocabularyService. It uploads the image and stores it already labeled.
func (s *vocabularyService) ImportItem(ctx context.Context, upload dto.ImageUpload, label string) (*domain.VocabularyItem, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, domain.NewInvalidInputError("label is required")
	}
	return s.createItem(ctx, upload, &label)
}

func (s *vocabularyService) createItem(ctx context.Context, upload dto.ImageUpload, label *string) (*domain.VocabularyItem, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}

	id := util.NewULID()
	objectName := id + imageExtension(upload.Filename, upload.ContentType)

	imageURL, err := s.storage.Upload(ctx, objectName, upload.Data, upload.ContentType)
	if err != nil {
		return nil, storeError("Failed to upload image", err)
	}

	item := &domain.VocabularyItem{
		ID:        id,
		ImageURL:  imageURL,
		Label:     label,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, storeError("Failed to save vocabulary item", err)
	}

	logger.Get().Info("Vocabulary item created",
		zap.String("id", item.ID),
		zap.String("object", objectName),
		zap.Bool("labeled", label != nil),
	)
	s.invalidate(ctx)
	return item, nil
}

// UpdateLabel implements VocabularyService
func (s *vocabularyService) UpdateLabel(ctx context.Context, id, label string) (*domain.VocabularyItem, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}

	item, err := s.repo.UpdateLabel(ctx, id, strings.TrimSpace(label))
	if err != nil {
		return nil, storeError("Failed to update vocabulary", err)
	}

	s.invalidate(ctx)
	return item, nil
}

// GenerateQuestions implements VocabularyService
func (s *vocabularyService) GenerateQuestions(ctx context.Context) ([]domain.VocabularyQuestion, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}

	items, err := s.cachedItems(ctx, cache.LabeledItemsKey(), s.repo.ListLabeled)
	if err != nil {
		return nil, err
	}

	return game.SampleVocabularyQuestions(s.newRand(), items)
}

// CheckAnswers implements VocabularyService
func (s *vocabularyService) CheckAnswers(answers, correctAnswers []string) (domain.ScoreResult, error) {
	if err := s.configured(); err != nil {
		return domain.ScoreResult{}, err
	}
	return game.Score(answers, correctAnswers, game.VocabularyMessages), nil
}

// cachedItems reads a listing through the cache. Cache failures are logged and fall back to the store.
func (s *vocabularyService) cachedItems(ctx context.Context, key string, load func(context.Context) ([]*domain.VocabularyItem, error)) ([]*domain.VocabularyItem, error) {
	if items, ok := s.readCache(ctx, key); ok {
		return items, nil
	}

	items, err := load(ctx)
	if err != nil {
		return nil, storeError("Failed to fetch vocabulary items", err)
	}

	if s.cache != nil {
		if raw, jsonErr := json.Marshal(items); jsonErr == nil {
			if setErr := s.cache.Set(ctx, key, string(raw), s.itemTTL); setErr != nil {
				logger.Get().Warn("Vocabulary cache write failed", zap.String("key", key), zap.Error(setErr))
			}
		}
	}
	return items, nil
}

func (s *vocabularyService) readCache(ctx context.Context, key string) ([]*domain.VocabularyItem, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Vocabulary cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var items []*domain.VocabularyItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Get().Warn("Discarding unreadable cached vocabulary items", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return items, true
}

func (s *vocabularyService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.AllItemsKey(), cache.LabeledItemsKey()); err != nil {
		logger.Get().Warn("Vocabulary cache invalidation failed", zap.Error(err))
	}
}

// storeError keeps domain errors from the store as they are and wraps everything else.
func storeError(operation string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return domain.NewExternalStoreError(operation, err)
}

// imageExtension prefers the uploaded file's extension and falls back to the MIME type.
func imageExtension(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
