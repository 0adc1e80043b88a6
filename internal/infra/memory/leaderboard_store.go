package memory

import (
	"context"
	"sync"

	"trivia-quiz-service/internal/domain"
)

// LeaderboardStore is an in-memory implementation of app.LeaderboardStore.
type LeaderboardStore struct {
	mu      sync.RWMutex
	entries []domain.LeaderboardEntry
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{}
}

func (s *LeaderboardStore) Load(_ context.Context) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.LeaderboardEntry, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}

func (s *LeaderboardStore) Save(_ context.Context, entries []domain.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]domain.LeaderboardEntry, len(entries))
	copy(s.entries, entries)
	return nil
}

func (s *LeaderboardStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
