package app

import (
	"trivia-quiz-service/internal/domain"
)

// SessionState is the lifecycle of one playthrough.
type SessionState int

const (
	// StateLoading means the shuffled question set is not ready. With a
	// non-empty bank the session leaves Loading immediately on creation; an
	// empty bank keeps it here indefinitely.
	StateLoading SessionState = iota
	StateInProgress
	StateCompleted
)

func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Session is the state machine for one playthrough of the shuffled question
// set. It is owned by a single player flow and is not safe for concurrent use.
type Session struct {
	bank      []domain.QuestionRecord
	shuffler  *Shuffler
	questions []domain.SessionQuestion
	current   int
	score     int
	// selected is nil while the current question is unanswered, so an
	// "answered with no selection" state cannot exist.
	selected  *int
	state     SessionState
	submitted bool
}

// SubmitResult reports the outcome of one answer submission.
type SubmitResult struct {
	Correct      bool `json:"correct"`
	CorrectIndex int  `json:"correctIndex"`
	Score        int  `json:"score"`
}

// NewSession derives a fresh shuffled question set from the bank and starts
// playing. With an empty bank the session stays in Loading.
func NewSession(bank []domain.QuestionRecord, shuffler *Shuffler) *Session {
	s := &Session{bank: bank, shuffler: shuffler}
	s.load()
	return s
}

func (s *Session) load() {
	s.state = StateLoading
	s.current = 0
	s.score = 0
	s.selected = nil
	s.submitted = false
	s.questions = nil

	if len(s.bank) == 0 {
		return
	}
	for _, q := range s.shuffler.OrderQuestions(s.bank) {
		answers, correct := s.shuffler.ShuffleAnswers(q)
		s.questions = append(s.questions, domain.SessionQuestion{
			QuestionRecord:       q,
			ShuffledAnswers:      answers,
			ShuffledCorrectIndex: correct,
		})
	}
	s.state = StateInProgress
}

func (s *Session) State() SessionState { return s.state }

// Score is the running score; it only grows within one playthrough.
func (s *Session) Score() int { return s.score }

// Len is the number of questions in this playthrough.
func (s *Session) Len() int { return len(s.questions) }

// CurrentIndex is the zero-based position of the active question.
func (s *Session) CurrentIndex() int { return s.current }

// Current returns the active question. The second result is false while the
// session is Loading or Completed.
func (s *Session) Current() (domain.SessionQuestion, bool) {
	if s.state != StateInProgress {
		return domain.SessionQuestion{}, false
	}
	return s.questions[s.current], true
}

// Answered reports whether the active question has been answered, and with
// which index.
func (s *Session) Answered() (int, bool) {
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// SubmitAnswer records the answer for the active question. The score grows by
// one exactly when index hits the shuffled correct position. A second submit
// for the same question returns ErrAlreadyAnswered and changes nothing, which
// shields the score from re-entrant UI events.
func (s *Session) SubmitAnswer(index int) (SubmitResult, error) {
	switch s.state {
	case StateLoading:
		return SubmitResult{}, domain.ErrNoActiveQuestion
	case StateCompleted:
		return SubmitResult{}, domain.ErrSessionCompleted
	}
	if s.selected != nil {
		return SubmitResult{}, domain.ErrAlreadyAnswered
	}

	q := s.questions[s.current]
	if index < 0 || index >= len(q.ShuffledAnswers) {
		return SubmitResult{}, domain.ErrAnswerOutOfRange
	}

	s.selected = &index
	if index == q.ShuffledCorrectIndex {
		s.score++
	}
	return SubmitResult{
		Correct:      index == q.ShuffledCorrectIndex,
		CorrectIndex: q.ShuffledCorrectIndex,
		Score:        s.score,
	}, nil
}

// Advance moves to the next question, or to Completed after the last one. It
// requires the active question to be answered first.
func (s *Session) Advance() error {
	switch s.state {
	case StateLoading:
		return domain.ErrNoActiveQuestion
	case StateCompleted:
		return domain.ErrSessionCompleted
	}
	if s.selected == nil {
		return domain.ErrNotAnswered
	}

	if s.current+1 < len(s.questions) {
		s.current++
		s.selected = nil
		return nil
	}
	s.state = StateCompleted
	return nil
}

// Restart throws the playthrough away and starts over with fresh permutations
// of both the question order and every question's answers.
func (s *Session) Restart() {
	s.load()
}
