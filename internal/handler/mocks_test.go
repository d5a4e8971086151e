package handler_test

import (
	"context"

	"kidsedu/internal/domain"
	"kidsedu/internal/dto"
)

// --- Manual Mocks ---

// MockMathService
type MockMathService struct {
	GenerateQuestionsFunc func(maxNumber int, mode domain.OperationMode) []domain.MathQuestion
	CheckAnswersFunc      func(answers, correctAnswers []int) domain.ScoreResult
}

func (m *MockMathService) GenerateQuestions(maxNumber int, mode domain.OperationMode) []domain.MathQuestion {
	if m.GenerateQuestionsFunc != nil {
		return m.GenerateQuestionsFunc(maxNumber, mode)
	}
	panic("MockMathService.GenerateQuestionsFunc not implemented")
}
func (m *MockMathService) CheckAnswers(answers, correctAnswers []int) domain.ScoreResult {
	if m.CheckAnswersFunc != nil {
		return m.CheckAnswersFunc(answers, correctAnswers)
	}
	panic("MockMathService.CheckAnswersFunc not implemented")
}

// MockVocabularyService
type MockVocabularyService struct {
	ListItemsFunc         func(ctx context.Context) ([]*domain.VocabularyItem, error)
	UploadImageFunc       func(ctx context.Context, upload dto.ImageUpload) (*domain.VocabularyItem, error)
	ImportItemFunc        func(ctx context.Context, upload dto.ImageUpload, label string) (*domain.VocabularyItem, error)
	UpdateLabelFunc       func(ctx context.Context, id, label string) (*domain.VocabularyItem, error)
	GenerateQuestionsFunc func(ctx context.Context) ([]domain.VocabularyQuestion, error)
	CheckAnswersFunc      func(answers, correctAnswers []string) (domain.ScoreResult, error)
}

func (m *MockVocabularyService) ListItems(ctx context.Context) ([]*domain.VocabularyItem, error) {
	if m.ListItemsFunc != nil {
		return m.ListItemsFunc(ctx)
	}
	panic("MockVocabularyService.ListItemsFunc not implemented")
}
func (m *MockVocabularyService) UploadImage(ctx context.Context, upload dto.ImageUpload) (*domain.VocabularyItem, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, upload)
	}
	panic("MockVocabularyService.UploadImageFunc not implemented")
}
func (m *MockVocabularyService) ImportItem(ctx context.Context, upload dto.ImageUpload, label string) (*domain.VocabularyItem, error) {
	if m.ImportItemFunc != nil {
		return m.ImportItemFunc(ctx, upload, label)
	}
	panic("MockVocabularyService.ImportItemFunc not implemented")
}
func (m *MockVocabularyService) UpdateLabel(ctx context.Context, id, label string) (*domain.VocabularyItem, error) {
	if m.UpdateLabelFunc != nil {
		return m.UpdateLabelFunc(ctx, id, label)
	}
	panic("MockVocabularyService.UpdateLabelFunc not implemented")
}
func (m *MockVocabularyService) GenerateQuestions(ctx context.Context) ([]domain.VocabularyQuestion, error) {
	if m.GenerateQuestionsFunc != nil {
		return m.GenerateQuestionsFunc(ctx)
	}
	panic("MockVocabularyService.GenerateQuestionsFunc not implemented")
}
func (m *MockVocabularyService) CheckAnswers(answers, correctAnswers []string) (domain.ScoreResult, error) {
	if m.CheckAnswersFunc != nil {
		return m.CheckAnswersFunc(answers, correctAnswers)
	}
	panic("MockVocabularyService.CheckAnswersFunc not implemented")
}

// MockHealthService
type MockHealthService struct {
	ReadyFunc func(ctx context.Context) (map[string]string, error)
}

func (m *MockHealthService) Ready(ctx context.Context) (map[string]string, error) {
	if m.ReadyFunc != nil {
		return m.ReadyFunc(ctx)
	}
	panic("MockHealthService.ReadyFunc not implemented")
}
