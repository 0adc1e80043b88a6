package app

import (
	"math/rand"
	"time"

	"trivia-quiz-service/internal/domain"
)

// Shuffler produces the per-session randomized question order and per-question
// answer order. Each session gets its own Shuffler so draws stay independent
// and the Rand is never shared across goroutines.
type Shuffler struct {
	rnd *rand.Rand
}

func NewShuffler() *Shuffler {
	return NewShufflerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewShufflerWithSource allows deterministic permutations in tests.
func NewShufflerWithSource(src rand.Source) *Shuffler {
	return &Shuffler{rnd: rand.New(src)}
}

// OrderQuestions returns a uniformly random permutation of the bank. The bank
// itself is never mutated.
func (s *Shuffler) OrderQuestions(bank []domain.QuestionRecord) []domain.QuestionRecord {
	ordered := make([]domain.QuestionRecord, len(bank))
	copy(ordered, bank)
	s.rnd.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered
}

// ShuffleAnswers returns a uniformly random permutation of the question's
// answers and the position of the correct answer text within it. Correctness
// is tracked by value: with duplicate answer texts the first occurrence wins.
func (s *Shuffler) ShuffleAnswers(q domain.QuestionRecord) ([]string, int) {
	answers := make([]string, len(q.Answers))
	copy(answers, q.Answers)
	correctText := q.Answers[q.Correct]

	s.rnd.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})

	correctIndex := 0
	for i, a := range answers {
		if a == correctText {
			correctIndex = i
			break
		}
	}
	return answers, correctIndex
}
