package service

import (
	"math/rand"

	"kidsedu/internal/domain"
	"kidsedu/internal/game"
	"kidsedu/internal/logger"

	"go.uber.org/zap"
)

// MathService defines the arithmetic game operations
type MathService interface {
	GenerateQuestions(maxNumber int, mode domain.OperationMode) []domain.MathQuestion
	CheckAnswers(answers, correctAnswers []int) domain.ScoreResult
}

type mathService struct {
	newRand func() *rand.Rand
}

// NewMathService creates a MathService. A nil newRand uses a clock-seeded source per call.
func NewMathService(newRand func() *rand.Rand) MathService {
	if newRand == nil {
		newRand = game.NewRand
	}
	return &mathService{newRand: newRand}
}

// GenerateQuestions implements MathService
func (s *mathService) GenerateQuestions(maxNumber int, mode domain.OperationMode) []domain.MathQuestion {
	if mode == "" {
		mode = domain.OperationsAll
	}
	questions := game.GenerateMathQuestions(s.newRand(), maxNumber, mode)

	logger.Get().Debug("Generated math questions",
		zap.Int("max_number", game.ClampMaxNumber(maxNumber)),
		zap.String("operations", string(mode)),
		zap.Int("count", len(questions)),
	)
	return questions
}

// CheckAnswers implements MathService
func (s *mathService) CheckAnswers(answers, correctAnswers []int) domain.ScoreResult {
	return game.Score(answers, correctAnswers, game.MathMessages)
}
