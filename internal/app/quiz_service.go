package app

import (
	"context"
	"strings"

	"trivia-quiz-service/internal/domain"
)

// QuestionLoader supplies the immutable question bank at process startup
// (static bank, Postgres, etc). There is no reload path.
type QuestionLoader interface {
	LoadQuestions(ctx context.Context) ([]domain.QuestionRecord, error)
}

// Route says where the UI should send the player after a completed session.
type Route string

const (
	// RouteLeaderboard submits the score and shows the board.
	RouteLeaderboard Route = "leaderboard"
	// RouteNameEntry sends the player back to name entry without submitting.
	RouteNameEntry Route = "name_entry"
)

// CompletionPolicy decides the post-completion route from the final score.
type CompletionPolicy func(score int) Route

// DefaultCompletionPolicy keeps the app's historical behavior: only a positive
// score reaches the leaderboard, a zero score routes back to name entry.
func DefaultCompletionPolicy(score int) Route {
	if score > 0 {
		return RouteLeaderboard
	}
	return RouteNameEntry
}

// QuizService owns the immutable question bank and coordinates sessions with
// the leaderboard.
type QuizService struct {
	bank        []domain.QuestionRecord
	leaderboard *LeaderboardService
	policy      CompletionPolicy
	newShuffler func() *Shuffler
}

// Option customizes a QuizService.
type Option func(*QuizService)

// WithCompletionPolicy overrides the post-completion routing.
func WithCompletionPolicy(p CompletionPolicy) Option {
	return func(s *QuizService) { s.policy = p }
}

// WithShufflerFunc injects the shuffler constructor, for deterministic tests.
func WithShufflerFunc(f func() *Shuffler) Option {
	return func(s *QuizService) { s.newShuffler = f }
}

func NewQuizService(bank []domain.QuestionRecord, leaderboard *LeaderboardService, opts ...Option) *QuizService {
	s := &QuizService{
		bank:        bank,
		leaderboard: leaderboard,
		policy:      DefaultCompletionPolicy,
		newShuffler: NewShuffler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSession begins a playthrough over a fresh shuffle of the bank. The
// error reports an empty bank; the session is still returned and simply stays
// in Loading, which the UI surfaces as a non-fatal condition.
func (s *QuizService) StartSession() (*Session, error) {
	session := NewSession(s.bank, s.newShuffler())
	if session.State() == StateLoading {
		return session, domain.ErrEmptyQuestionBank
	}
	return session, nil
}

// FinishSession applies the completion policy to a completed session. When the
// route is the leaderboard it submits the score exactly once; a repeat call
// returns ErrScoreAlreadySubmitted. The returned board is nil on the name
// entry route.
func (s *QuizService) FinishSession(ctx context.Context, session *Session, playerName string) (Route, domain.Leaderboard, error) {
	if session.State() != StateCompleted {
		return "", nil, domain.ErrSessionNotCompleted
	}
	if session.submitted {
		return "", nil, domain.ErrScoreAlreadySubmitted
	}

	route := s.policy(session.Score())
	if route != RouteLeaderboard {
		return route, nil, nil
	}

	session.submitted = true
	board := s.leaderboard.Submit(ctx, domain.LeaderboardEntry{
		PlayerName: strings.TrimSpace(playerName),
		Score:      session.Score(),
	})
	return route, board, nil
}

// Leaderboard exposes the board service for read and clear paths.
func (s *QuizService) Leaderboard() *LeaderboardService {
	return s.leaderboard
}
