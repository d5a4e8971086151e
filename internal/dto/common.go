package dto

import "kidsedu/internal/domain"

// ScoreResponse is the result of checking answers in either game
// @Description Score and encouragement message
type ScoreResponse struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
}

func NewScoreResponse(result domain.ScoreResult) *ScoreResponse {
	return &ScoreResponse{
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		Message:    result.Message,
	}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}

// ReadinessResponse reports every dependency check by name
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
