package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"trivia-quiz-service/internal/domain"
)

const defaultLeaderboardKey = "quiz:leaderboard"

// LeaderboardStore keeps the whole board as a JSON array under one fixed key:
// SET quiz:leaderboard [{"playerName":...,"score":...}, ...]
// No TTL is set; the board survives restarts.
type LeaderboardStore struct {
	client *redis.Client
	key    string
}

func NewLeaderboardStore(client *redis.Client, key string) *LeaderboardStore {
	if key == "" {
		key = defaultLeaderboardKey
	}
	return &LeaderboardStore{client: client, key: key}
}

func (s *LeaderboardStore) Load(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}

	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal leaderboard: %w", err)
	}
	return entries, nil
}

func (s *LeaderboardStore) Save(ctx context.Context, entries []domain.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}

func (s *LeaderboardStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}
	return nil
}
