package app

import (
	"context"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"trivia-quiz-service/internal/domain"
)

// DefaultLeaderboardCapacity caps the persisted leaderboard at the top scores.
const DefaultLeaderboardCapacity = 10

// LeaderboardStore abstracts the durable record under the single leaderboard
// key (in-memory, Redis, etc).
type LeaderboardStore interface {
	Load(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Save(ctx context.Context, entries []domain.LeaderboardEntry) error
	Clear(ctx context.Context) error
}

// LeaderboardService merges new scores into the capped, descending board and
// persists it. Storage failures degrade to an empty or unchanged in-memory
// board and are never surfaced to the UI.
//
// All operations on the single storage key run under one mutex, so a Load
// observes either the fully applied prior Submit or none of it. Concurrent
// Loads additionally collapse into a single storage read via singleflight.
type LeaderboardService struct {
	store    LeaderboardStore
	capacity int

	mu sync.Mutex
	sf singleflight.Group
}

func NewLeaderboardService(store LeaderboardStore, capacity int) *LeaderboardService {
	if capacity <= 0 {
		capacity = DefaultLeaderboardCapacity
	}
	return &LeaderboardService{store: store, capacity: capacity}
}

// Load reads the durable board. A missing or unreadable record yields an
// empty board.
func (s *LeaderboardService) Load(ctx context.Context) domain.Leaderboard {
	v, _, _ := s.sf.Do("leaderboard", func() (interface{}, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.loadLocked(ctx), nil
	})
	return v.(domain.Leaderboard)
}

// Submit appends the entry, re-sorts descending by score (ties keep insertion
// order), truncates to capacity, persists, and returns the resulting board.
// A failed write still returns the merged board so the UI can render it.
func (s *LeaderboardService) Submit(ctx context.Context, entry domain.LeaderboardEntry) domain.Leaderboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.loadLocked(ctx), entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}

	if err := s.store.Save(ctx, entries); err != nil {
		log.Printf("leaderboard save failed: %v", err)
	}
	return domain.Leaderboard(entries)
}

// Clear drops all durable leaderboard state; the next Load starts empty.
func (s *LeaderboardService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		log.Printf("leaderboard clear failed: %v", err)
	}
}

func (s *LeaderboardService) loadLocked(ctx context.Context) domain.Leaderboard {
	entries, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("leaderboard load failed: %v", err)
		return domain.Leaderboard{}
	}
	return domain.Leaderboard(entries)
}
