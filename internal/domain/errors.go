package domain

import "errors"

var (
	// ErrEmptyQuestionBank is reported when a session cannot leave Loading
	// because there are no questions to play. Non-fatal; the UI surfaces it.
	ErrEmptyQuestionBank = errors.New("question bank is empty")
	// ErrNoActiveQuestion is returned for play operations while no question
	// is active (session still Loading).
	ErrNoActiveQuestion = errors.New("no active question")
	// ErrSessionCompleted is returned for play operations on a finished session.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrAlreadyAnswered marks a duplicate submission for the current
	// question. The first answer stands; callers may ignore this error.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNotAnswered is returned when advancing before the current question
	// was answered. Unlike ErrAlreadyAnswered this indicates a caller bug.
	ErrNotAnswered = errors.New("current question not answered")
	// ErrAnswerOutOfRange is returned for an answer index outside the
	// current question's shuffled answers.
	ErrAnswerOutOfRange = errors.New("answer index out of range")
	// ErrSessionNotCompleted is returned when finishing a session that has
	// not been played through to the last question.
	ErrSessionNotCompleted = errors.New("session not completed")
	// ErrScoreAlreadySubmitted guards against pushing one session's score to
	// the leaderboard more than once.
	ErrScoreAlreadySubmitted = errors.New("score already submitted")
)
