package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"kidsedu/internal/cache"
	"kidsedu/internal/domain"
	"kidsedu/internal/dto"
	"kidsedu/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func sampleItems(labels ...string) []*domain.VocabularyItem {
	items := make([]*domain.VocabularyItem, len(labels))
	for i, label := range labels {
		items[i] = &domain.VocabularyItem{
			ID:        fmt.Sprintf("item-%d", i),
			ImageURL:  fmt.Sprintf("https://cdn/%d.png", i),
			Label:     strPtr(label),
			CreatedAt: fixedNow,
		}
	}
	return items
}

func newTestVocabularyService(repo *MockVocabularyRepository, storage *MockImageStorage, c domain.Cache) VocabularyService {
	return NewVocabularyService(repo, storage, VocabularyServiceOptions{
		Cache:   c,
		ItemTTL: time.Minute,
		NewRand: seeded(3),
		Now:     func() time.Time { return fixedNow },
	})
}

func TestVocabularyService_NotConfigured(t *testing.T) {
	svc := NewVocabularyService(nil, nil, VocabularyServiceOptions{})
	ctx := context.Background()

	_, err := svc.ListItems(ctx)
	assert.True(t, domain.IsCode(err, domain.CodeConfiguration))

	_, err = svc.UploadImage(ctx, dto.ImageUpload{Filename: "a.png", ContentType: "image/png", Data: []byte("x")})
	assert.True(t, domain.IsCode(err, domain.CodeConfiguration))

	_, err = svc.UpdateLabel(ctx, "id", "cat")
	assert.True(t, domain.IsCode(err, domain.CodeConfiguration))

	_, err = svc.GenerateQuestions(ctx)
	assert.True(t, domain.IsCode(err, domain.CodeConfiguration))

	_, err = svc.CheckAnswers([]string{"a"}, []string{"a"})
	assert.True(t, domain.IsCode(err, domain.CodeConfiguration))
}

func TestVocabularyService_ListItems(t *testing.T) {
	repo := new(MockVocabularyRepository)
	storage := new(MockImageStorage)
	items := sampleItems("cat", "dog")
	repo.On("List", mock.Anything).Return(items, nil).Once()

	svc := newTestVocabularyService(repo, storage, nil)
	got, err := svc.ListItems(context.Background())

	require.NoError(t, err)
	assert.Equal(t, items, got)
	repo.AssertExpectations(t)
}

func TestVocabularyService_ListItems_StoreError(t *testing.T) {
	repo := new(MockVocabularyRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("relation does not exist")).Once()

	svc := newTestVocabularyService(repo, new(MockImageStorage), nil)
	_, err := svc.ListItems(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeExternalStore))
	assert.Contains(t, err.Error(), "relation does not exist")
}

func TestVocabularyService_UploadImage(t *testing.T) {
	repo := new(MockVocabularyRepository)
	storage := new(MockImageStorage)
	data := []byte("png")

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(name string) bool {
		return len(name) == 26+len(".png") && strings.HasSuffix(name, ".png")
	}), data, "image/png").Return("https://cdn/obj.png", nil).Once()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(item *domain.VocabularyItem) bool {
		return item.ImageURL == "https://cdn/obj.png" && item.Label == nil && item.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	svc := newTestVocabularyService(repo, storage, nil)
	item, err := svc.UploadImage(context.Background(), dto.ImageUpload{Filename: "Cat.PNG", ContentType: "image/png", Data: data})

	require.NoError(t, err)
	assert.Len(t, item.ID, 26)
	assert.Equal(t, "https://cdn/obj.png", item.ImageURL)
	assert.Nil(t, item.Label)
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestVocabularyService_UploadImage_StorageFailureSkipsInsert(t *testing.T) {
	repo := new(MockVocabularyRepository)
	storage := new(MockImageStorage)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("storage responded 413: Payload too large")).Once()

	svc := newTestVocabularyService(repo, storage, nil)
	_, err := svc.UploadImage(context.Background(), dto.ImageUpload{Filename: "a.png", ContentType: "image/png", Data: []byte("x")})

	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeExternalStore))
	assert.Contains(t, err.Error(), "Payload too large")
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestVocabularyService_ImportItem(t *testing.T) {
	repo := new(MockVocabularyRepository)
	storage := new(MockImageStorage)
	mc := new(MockCache)

	storage.On("Upload", mock.Anything, mock.Anything, []byte("jpg"), "image/jpeg").Return("https://cdn/x.jpg", nil).Once()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(item *domain.VocabularyItem) bool {
		return item.Label != nil && *item.Label == "apple"
	})).Return(nil).Once()
	mc.On("Delete", mock.Anything, []string{cache.AllItemsKey(), cache.LabeledItemsKey()}).Return(nil).Once()

	svc := newTestVocabularyService(repo, storage, mc)
	item, err := svc.ImportItem(context.Background(), dto.ImageUpload{Filename: "apple", ContentType: "image/jpeg", Data: []byte("jpg")}, "  apple ")

	require.NoError(t, err)
	assert.Equal(t, "apple", *item.Label)
	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
	mc.AssertExpectations(t)
}

func TestVocabularyService_ImportItem_RequiresLabel(t *testing.T) {
	svc := newTestVocabularyService(new(MockVocabularyRepository), new(MockImageStorage), nil)

	_, err := svc.ImportItem(context.Background(), dto.ImageUpload{Filename: "a.png"}, " ")
	assert.True(t, domain.IsCode(err, domain.CodeInvalidInput))
}

func TestVocabularyService_UpdateLabel(t *testing.T) {
	repo := new(MockVocabularyRepository)
	mc := new(MockCache)
	updated := sampleItems("lion")[0]

	repo.On("UpdateLabel", mock.Anything, "item-0", "lion").Return(updated, nil).Once()
	mc.On("Delete", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	svc := newTestVocabularyService(repo, new(MockImageStorage), mc)
	item, err := svc.UpdateLabel(context.Background(), "item-0", " lion ")

	require.NoError(t, err, "cache failures must not fail the update")
	assert.Equal(t, updated, item)
	repo.AssertExpectations(t)
	mc.AssertExpectations(t)
}

func TestVocabularyService_UpdateLabel_NotFoundPassesThrough(t *testing.T) {
	repo := new(MockVocabularyRepository)
	repo.On("UpdateLabel", mock.Anything, "missing", "lion").
		Return(nil, domain.NewNotFoundError("Vocabulary item not found with ID: missing")).Once()

	svc := newTestVocabularyService(repo, new(MockImageStorage), nil)
	_, err := svc.UpdateLabel(context.Background(), "missing", "lion")

	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
}

func TestVocabularyService_GenerateQuestions(t *testing.T) {
	repo := new(MockVocabularyRepository)
	repo.On("ListLabeled", mock.Anything).Return(sampleItems("cat", "dog", "sun", "tree", "fish"), nil).Once()

	svc := newTestVocabularyService(repo, new(MockImageStorage), nil)
	questions, err := svc.GenerateQuestions(context.Background())

	require.NoError(t, err)
	assert.Len(t, questions, 5)
	repo.AssertExpectations(t)
}

func TestVocabularyService_GenerateQuestions_InsufficientData(t *testing.T) {
	repo := new(MockVocabularyRepository)
	repo.On("ListLabeled", mock.Anything).Return(sampleItems("cat", "dog"), nil).Once()

	svc := newTestVocabularyService(repo, new(MockImageStorage), nil)
	_, err := svc.GenerateQuestions(context.Background())

	assert.True(t, domain.IsCode(err, domain.CodeInsufficientData))
}

func TestVocabularyService_GenerateQuestions_CacheHit(t *testing.T) {
	repo := new(MockVocabularyRepository)
	mc := new(MockCache)
	raw, err := json.Marshal(sampleItems("cat", "dog", "sun", "tree"))
	require.NoError(t, err)

	mc.On("Get", mock.Anything, cache.LabeledItemsKey()).Return(string(raw), nil).Once()

	svc := newTestVocabularyService(repo, new(MockImageStorage), mc)
	questions, err := svc.GenerateQuestions(context.Background())

	require.NoError(t, err)
	assert.Len(t, questions, 4)
	repo.AssertNotCalled(t, "ListLabeled", mock.Anything)
	mc.AssertExpectations(t)
}

func TestVocabularyService_GenerateQuestions_CacheMissFillsCache(t *testing.T) {
	repo := new(MockVocabularyRepository)
	mc := new(MockCache)
	items := sampleItems("cat", "dog", "sun", "tree")

	mc.On("Get", mock.Anything, cache.LabeledItemsKey()).Return("", domain.ErrCacheMiss).Once()
	repo.On("ListLabeled", mock.Anything).Return(items, nil).Once()
	mc.On("Set", mock.Anything, cache.LabeledItemsKey(), mock.AnythingOfType("string"), time.Minute).Return(nil).Once()

	svc := newTestVocabularyService(repo, new(MockImageStorage), mc)
	_, err := svc.GenerateQuestions(context.Background())

	require.NoError(t, err)
	repo.AssertExpectations(t)
	mc.AssertExpectations(t)
}

func TestVocabularyService_GenerateQuestions_CacheErrorFallsBackToStore(t *testing.T) {
	repo := new(MockVocabularyRepository)
	mc := new(MockCache)

	mc.On("Get", mock.Anything, cache.LabeledItemsKey()).Return("", errors.New("redis timeout")).Once()
	repo.On("ListLabeled", mock.Anything).Return(sampleItems("a", "b", "c", "d"), nil).Once()
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis timeout")).Once()

	svc := newTestVocabularyService(repo, new(MockImageStorage), mc)
	questions, err := svc.GenerateQuestions(context.Background())

	require.NoError(t, err)
	assert.Len(t, questions, 4)
}

func TestVocabularyService_CheckAnswers(t *testing.T) {
	svc := newTestVocabularyService(new(MockVocabularyRepository), new(MockImageStorage), nil)

	result, err := svc.CheckAnswers([]string{"cat", "dog"}, []string{"cat", "sun"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, game.VocabularyMessages.Good, result.Message)
}

func TestImageExtension(t *testing.T) {
	assert.Equal(t, ".png", imageExtension("Cat.PNG", "image/png"))
	assert.Equal(t, ".gif", imageExtension("anim", "image/gif"))
	assert.Equal(t, "", imageExtension("blob", "application/x-unknown-kind"))
}
