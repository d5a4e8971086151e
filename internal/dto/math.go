package dto

import "kidsedu/internal/domain"

// MathGenerateRequest represents the body of POST /math/generate
// @Description Request body for generating a math game
type MathGenerateRequest struct {
	MaxNumber  *int   `json:"max_number" example:"20"`
	Operations string `json:"operations,omitempty" example:"basic"`
}

// MathGenerateResponse holds the generated questions
type MathGenerateResponse struct {
	Questions []domain.MathQuestion `json:"questions"`
}

// MathCheckRequest represents the body of POST /math/check
type MathCheckRequest struct {
	Answers        []int `json:"answers"`
	CorrectAnswers []int `json:"correct_answers"`
}
