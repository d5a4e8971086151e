package dto

import "kidsedu/internal/domain"

// VocabularyItemsResponse lists every stored vocabulary item
type VocabularyItemsResponse struct {
	Items []*domain.VocabularyItem `json:"items"`
}

// UpdateLabelResponse is returned after assigning a word to an image
type UpdateLabelResponse struct {
	Success bool                   `json:"success"`
	Item    *domain.VocabularyItem `json:"item"`
}

// VocabularyGenerateResponse holds the generated picture questions
type VocabularyGenerateResponse struct {
	Questions []domain.VocabularyQuestion `json:"questions"`
}

// VocabularyCheckRequest represents the body of POST /vocabulary/check
type VocabularyCheckRequest struct {
	Answers        []string `json:"answers"`
	CorrectAnswers []string `json:"correct_answers"`
}

// ImageUpload is an image received from a client or an import file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
