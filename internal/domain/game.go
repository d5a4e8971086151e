package domain

// OperationMode selects which arithmetic operators a math game draws from.
type OperationMode string

const (
	// OperationsBasic is addition and subtraction only.
	OperationsBasic OperationMode = "basic"
	// OperationsAll adds multiplication and division.
	OperationsAll OperationMode = "all"
)

// Valid reports whether m is a known mode. The empty mode is accepted and means OperationsAll.
func (m OperationMode) Valid() bool {
	switch m {
	case "", OperationsBasic, OperationsAll:
		return true
	}
	return false
}

// Operator is a single arithmetic operation.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "×"
	OpDivide   Operator = "÷"
)

// Operators returns the operators available for the mode.
func (m OperationMode) Operators() []Operator {
	if m == OperationsBasic {
		return []Operator{OpAdd, OpSubtract}
	}
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// MathQuestion is one generated arithmetic question.
type MathQuestion struct {
	Question string `json:"question"`
	Answer   int    `json:"answer"`
	Options  []int  `json:"options"`
}

// VocabularyQuestion asks which label belongs to an image.
type VocabularyQuestion struct {
	ImageURL string   `json:"image_url"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options"`
}

// ScoreResult is the outcome of checking a set of answers.
type ScoreResult struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
}
