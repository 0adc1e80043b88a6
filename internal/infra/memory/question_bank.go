package memory

import (
	"context"

	"trivia-quiz-service/internal/domain"
)

// StaticQuestionLoader serves a fixed question bank (useful for tests/demos).
type StaticQuestionLoader struct {
	questions []domain.QuestionRecord
}

func NewStaticQuestionLoader(questions []domain.QuestionRecord) *StaticQuestionLoader {
	return &StaticQuestionLoader{questions: questions}
}

func (l *StaticQuestionLoader) LoadQuestions(_ context.Context) ([]domain.QuestionRecord, error) {
	return l.questions, nil
}
