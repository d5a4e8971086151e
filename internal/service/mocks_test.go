package service

import (
	"context"
	"time"

	"kidsedu/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockVocabularyRepository ---
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) List(ctx context.Context) ([]*domain.VocabularyItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) ListLabeled(ctx context.Context) ([]*domain.VocabularyItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) Insert(ctx context.Context, item *domain.VocabularyItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockVocabularyRepository) UpdateLabel(ctx context.Context, id, label string) (*domain.VocabularyItem, error) {
	args := m.Called(ctx, id, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ domain.VocabularyRepository = (*MockVocabularyRepository)(nil)

// --- MockImageStorage ---
type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, name, data, contentType)
	return args.String(0), args.Error(1)
}

var _ domain.ImageStorage = (*MockImageStorage)(nil)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ domain.Cache = (*MockCache)(nil)
