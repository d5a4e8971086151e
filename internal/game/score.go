package game

import "kidsedu/internal/domain"

// MessageLadder holds the encouragement shown for each score band.
type MessageLadder struct {
	Perfect   string
	Excellent string
	Great     string
	Good      string
	TryAgain  string
}

var MathMessages = MessageLadder{
	Perfect:   "🌟 Perfect! You're a math superstar! 🌟",
	Excellent: "🎉 Excellent work! You're amazing at math! 🎉",
	Great:     "👍 Great job! Keep practicing and you'll be even better! 👍",
	Good:      "💪 Good effort! Practice makes perfect! 💪",
	TryAgain:  "🌈 Don't worry! Every mathematician started somewhere. Try again! 🌈",
}

var VocabularyMessages = MessageLadder{
	Perfect:   "🌟 Perfect! You know every word! 🌟",
	Excellent: "🎉 Excellent work! Your vocabulary is amazing! 🎉",
	Great:     "👍 Great job! Keep practicing and you'll learn them all! 👍",
	Good:      "💪 Good effort! Every word you learn counts! 💪",
	TryAgain:  "🌈 Don't worry! Let's look at the pictures again and try again! 🌈",
}

// Message picks the first band that matches, from the top down.
func (l MessageLadder) Message(percentage float64) string {
	switch {
	case percentage == 100:
		return l.Perfect
	case percentage >= 80:
		return l.Excellent
	case percentage >= 60:
		return l.Great
	case percentage >= 40:
		return l.Good
	default:
		return l.TryAgain
	}
}

// Score compares answers with the correct answers position by position.
// Extra answers are ignored and missing ones count as wrong; total is always len(correct).
func Score[T comparable](answers, correct []T, ladder MessageLadder) domain.ScoreResult {
	right := 0
	for i := 0; i < min(len(answers), len(correct)); i++ {
		if answers[i] == correct[i] {
			right++
		}
	}

	total := len(correct)
	percentage := 0.0
	if total > 0 {
		percentage = float64(right*100) / float64(total)
	}

	return domain.ScoreResult{
		Score:      right,
		Total:      total,
		Percentage: percentage,
		Message:    ladder.Message(percentage),
	}
}
