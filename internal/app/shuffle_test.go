package app

import (
	"fmt"
	"math/rand"
	"testing"

	"trivia-quiz-service/internal/domain"
)

func TestOrderQuestionsIsPermutation(t *testing.T) {
	bank := make([]domain.QuestionRecord, 10)
	for i := range bank {
		bank[i] = domain.QuestionRecord{
			Question: fmt.Sprintf("q%d", i),
			Answers:  []string{"a", "b"},
			Correct:  0,
		}
	}

	sh := NewShufflerWithSource(rand.NewSource(1))
	ordered := sh.OrderQuestions(bank)

	if len(ordered) != len(bank) {
		t.Fatalf("expected %d questions, got %d", len(bank), len(ordered))
	}
	seen := make(map[string]int)
	for _, q := range ordered {
		seen[q.Question]++
	}
	for _, q := range bank {
		if seen[q.Question] != 1 {
			t.Fatalf("expected %q exactly once, got %d", q.Question, seen[q.Question])
		}
	}
	for i, q := range bank {
		if q.Question != fmt.Sprintf("q%d", i) {
			t.Fatalf("bank mutated at %d: %+v", i, q)
		}
	}
}

func TestShuffleAnswersTracksCorrectText(t *testing.T) {
	q := domain.QuestionRecord{
		Question: "What is 2 + 2?",
		Answers:  []string{"3", "4", "5"},
		Correct:  1,
	}

	sh := NewShuffler()
	for i := 0; i < 200; i++ {
		answers, idx := sh.ShuffleAnswers(q)
		if len(answers) != 3 {
			t.Fatalf("expected 3 answers, got %d", len(answers))
		}
		if answers[idx] != "4" {
			t.Fatalf("correct index %d points at %q, want \"4\"", idx, answers[idx])
		}
	}
	if q.Answers[1] != "4" {
		t.Fatalf("question mutated: %+v", q.Answers)
	}
}

func TestShuffleAnswersDuplicateTextsMatchFirst(t *testing.T) {
	q := domain.QuestionRecord{
		Question: "pick",
		Answers:  []string{"same", "other", "same"},
		Correct:  2,
	}

	sh := NewShufflerWithSource(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		answers, idx := sh.ShuffleAnswers(q)
		for j, a := range answers {
			if a == "same" {
				if idx != j {
					t.Fatalf("expected first occurrence at %d, got index %d", j, idx)
				}
				break
			}
		}
	}
}
