package game

import (
	"fmt"
	"math/rand"
	"time"

	"kidsedu/internal/domain"
)

const (
	QuestionsPerGame = 10
	MinMaxNumber     = 1
	MaxMaxNumber     = 100

	maxMultiplicand = 12
	maxQuotient     = 20
	maxDivisor      = 12
	minDivisor      = 2

	distractorCount    = 3
	distractorAttempts = 20
	distractorSpread   = 10
	divisionSpread     = 5
)

// fallbackOffsets are tried in order once random distractor draws run out.
var fallbackOffsets = []int{1, -1, 2, -2, 3, -3}

// NewRand returns a random source seeded from the clock. Each request gets its own.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// ClampMaxNumber bounds the operand limit to [MinMaxNumber, MaxMaxNumber].
func ClampMaxNumber(maxNumber int) int {
	if maxNumber < MinMaxNumber {
		return MinMaxNumber
	}
	if maxNumber > MaxMaxNumber {
		return MaxMaxNumber
	}
	return maxNumber
}

// GenerateMathQuestions builds a full game of arithmetic questions.
func GenerateMathQuestions(rng *rand.Rand, maxNumber int, mode domain.OperationMode) []domain.MathQuestion {
	maxNumber = ClampMaxNumber(maxNumber)
	operators := mode.Operators()

	questions := make([]domain.MathQuestion, 0, QuestionsPerGame)
	for i := 0; i < QuestionsPerGame; i++ {
		op := operators[rng.Intn(len(operators))]
		questions = append(questions, newMathQuestion(rng, maxNumber, op))
	}
	return questions
}

func newMathQuestion(rng *rand.Rand, maxNumber int, op domain.Operator) domain.MathQuestion {
	var a, b, answer int
	spread := distractorSpread

	switch op {
	case domain.OpAdd:
		a, b = randInt(rng, 1, maxNumber), randInt(rng, 1, maxNumber)
		answer = a + b
	case domain.OpSubtract:
		a, b = randInt(rng, 1, maxNumber), randInt(rng, 1, maxNumber)
		if a < b {
			a, b = b, a
		}
		answer = a - b
	case domain.OpMultiply:
		limit := min(maxMultiplicand, maxNumber)
		a, b = randInt(rng, 1, limit), randInt(rng, 1, limit)
		answer = a * b
	case domain.OpDivide:
		// divisor never drops below 2, even when maxNumber is 1
		quotient := randInt(rng, 1, min(maxQuotient, maxNumber))
		b = randInt(rng, minDivisor, max(minDivisor, min(maxDivisor, maxNumber)))
		a = quotient * b
		answer = quotient
		spread = divisionSpread
	default:
		panic(fmt.Sprintf("game: unknown operator %q", op))
	}

	options := append([]int{answer}, distractors(rng, answer, spread)...)
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return domain.MathQuestion{
		Question: fmt.Sprintf("%d %s %d = ?", a, op, b),
		Answer:   answer,
		Options:  options,
	}
}

// distractors returns three distinct positive wrong answers near answer.
func distractors(rng *rand.Rand, answer, spread int) []int {
	wrong := make([]int, 0, distractorCount)
	used := map[int]bool{answer: true}

	accept := func(candidate int) bool {
		if candidate <= 0 || used[candidate] {
			return false
		}
		used[candidate] = true
		wrong = append(wrong, candidate)
		return true
	}

	for slot := 0; slot < distractorCount; slot++ {
		for attempt := 0; attempt < distractorAttempts; attempt++ {
			if accept(answer + randInt(rng, -spread, spread)) {
				break
			}
		}
	}

	for _, offset := range fallbackOffsets {
		if len(wrong) == distractorCount {
			break
		}
		accept(answer + offset)
	}

	for offset := len(wrong) + 1; len(wrong) < distractorCount; offset++ {
		accept(answer + offset)
	}

	return wrong
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
