package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"kidsedu/internal/domain"
)

const (
	MaxAnswers     = 100
	MaxLabelLength = 100
	MaxItemIDLen   = 64
)

var validItemID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateMathGenerateRequest validates the generate request. max_number itself is clamped, not rejected.
func (v *Validator) ValidateMathGenerateRequest(maxNumber *int, operations string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if maxNumber == nil {
		errors = append(errors, domain.NewMissingFieldError("max_number"))
	}
	if !domain.OperationMode(operations).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("operations", operations))
	}

	return errors
}

// ValidateAnswerLists validates the lengths of a check request.
// Lists of different lengths are allowed and scored positionally.
func (v *Validator) ValidateAnswerLists(answersPresent, correctPresent bool, answersLen, correctLen int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if !answersPresent {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	} else if answersLen > MaxAnswers {
		errors = append(errors, domain.NewOutOfRangeError("answers", answersLen, 0, MaxAnswers))
	}

	if !correctPresent {
		errors = append(errors, domain.NewMissingFieldError("correct_answers"))
	} else if correctLen > MaxAnswers {
		errors = append(errors, domain.NewOutOfRangeError("correct_answers", correctLen, 0, MaxAnswers))
	}

	return errors
}

// ValidateItemID validates a vocabulary item id from the path
func (v *Validator) ValidateItemID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("item_id"))
	} else if len(id) > MaxItemIDLen || !validItemID.MatchString(id) {
		errors = append(errors, domain.NewInvalidFormatError("item_id", id))
	}

	return errors
}

// ValidateLabel validates the word assigned to an image
func (v *Validator) ValidateLabel(label string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	label = strings.TrimSpace(label)
	if label == "" {
		errors = append(errors, domain.NewMissingFieldError("vocabulary"))
	} else if n := utf8.RuneCountInString(label); n > MaxLabelLength {
		errors = append(errors, domain.NewOutOfRangeError("vocabulary", n, 1, MaxLabelLength))
	}

	return errors
}

// ValidateImageUpload validates an uploaded image file
func (v *Validator) ValidateImageUpload(size int, contentType string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if size == 0 {
		errors = append(errors, domain.NewMissingFieldError("file"))
	}
	if !strings.HasPrefix(contentType, "image/") {
		errors = append(errors, domain.NewInvalidFormatError("file", contentType))
	}

	return errors
}
