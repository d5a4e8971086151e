package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	cause := errors.New("connection refused")

	assert.Equal(t, "plain", NewInvalidInputError("plain").Error())
	assert.Equal(t, "boom: connection refused", NewInternalError("boom", cause).Error())
}

func TestDomainError_UnwrapAndIsCode(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("handler: %w", NewExternalStoreError("fetch items", cause))

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, CodeExternalStore))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(cause, CodeExternalStore))
}

func TestNewExternalStoreError_KeepsUnderlyingMessage(t *testing.T) {
	err := NewExternalStoreError("upload image", errors.New("bucket not found"))
	assert.Equal(t, "upload image: bucket not found", err.Message)
}

func TestNewInsufficientDataError(t *testing.T) {
	err := NewInsufficientDataError(2, 4)
	assert.Equal(t, CodeInsufficientData, err.Code)
	assert.Equal(t, 2, err.Context["labeled_items"])
	assert.Equal(t, 4, err.Context["required"])
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		NewMissingFieldError("answers"),
		NewOutOfRangeError("vocabulary", 150, 1, 100),
	}
	assert.Equal(t, "answers: field is required; vocabulary: must be between 1 and 100", errs.Error())
	assert.Equal(t, "oops", NewValidationError("oops").Error())
}

func TestOperationMode(t *testing.T) {
	assert.True(t, OperationMode("").Valid())
	assert.True(t, OperationsBasic.Valid())
	assert.False(t, OperationMode("hard").Valid())
	assert.Equal(t, []Operator{OpAdd, OpSubtract}, OperationsBasic.Operators())
	assert.Len(t, OperationMode("").Operators(), 4)
}

func TestVocabularyItem_Label(t *testing.T) {
	blank := "  "
	cat := " cat "

	assert.False(t, (&VocabularyItem{}).HasLabel())
	assert.False(t, (&VocabularyItem{Label: &blank}).HasLabel())
	item := &VocabularyItem{Label: &cat}
	assert.True(t, item.HasLabel())
	assert.Equal(t, "cat", item.LabelText())
}
