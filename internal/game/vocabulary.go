package game

import (
	"math/rand"

	"kidsedu/internal/domain"
)

// MinLabeledItems is the smallest collection that can fill one multiple-choice question.
const MinLabeledItems = 4

// SampleVocabularyQuestions turns labeled items into picture questions.
// Every returned question has a different correct item. Unlabeled items are skipped.
func SampleVocabularyQuestions(rng *rand.Rand, items []*domain.VocabularyItem) ([]domain.VocabularyQuestion, error) {
	labeled := make([]*domain.VocabularyItem, 0, len(items))
	for _, item := range items {
		if item != nil && item.HasLabel() {
			labeled = append(labeled, item)
		}
	}
	if len(labeled) < MinLabeledItems {
		return nil, domain.NewInsufficientDataError(len(labeled), MinLabeledItems)
	}

	rng.Shuffle(len(labeled), func(i, j int) { labeled[i], labeled[j] = labeled[j], labeled[i] })

	count := min(QuestionsPerGame, len(labeled))
	questions := make([]domain.VocabularyQuestion, 0, count)
	for _, correct := range labeled[:count] {
		answer := correct.LabelText()
		pool := distractorLabels(labeled, answer)

		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		options := append([]string{answer}, pool[:min(distractorCount, len(pool))]...)
		rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

		questions = append(questions, domain.VocabularyQuestion{
			ImageURL: correct.ImageURL,
			Answer:   answer,
			Options:  options,
		})
	}
	return questions, nil
}

// distractorLabels lists the distinct labels that differ from answer, in item order.
func distractorLabels(items []*domain.VocabularyItem, answer string) []string {
	seen := map[string]bool{answer: true}
	labels := make([]string, 0, len(items))
	for _, item := range items {
		label := item.LabelText()
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}
