package app_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/memory"
)

func TestSubmitSortsAndCaps(t *testing.T) {
	ctx := context.Background()
	service := app.NewLeaderboardService(memory.NewLeaderboardStore(), 10)

	var board domain.Leaderboard
	for i := 0; i < 12; i++ {
		board = service.Submit(ctx, domain.LeaderboardEntry{
			PlayerName: fmt.Sprintf("p%d", i),
			Score:      i % 5,
		})
	}

	if len(board) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(board))
	}
	for i := 1; i < len(board); i++ {
		if board[i].Score > board[i-1].Score {
			t.Fatalf("board not descending at %d: %+v", i, board)
		}
	}
}

func TestSubmitKeepsInsertionOrderOnTies(t *testing.T) {
	ctx := context.Background()
	service := app.NewLeaderboardService(memory.NewLeaderboardStore(), 10)

	service.Submit(ctx, domain.LeaderboardEntry{PlayerName: "first", Score: 7})
	board := service.Submit(ctx, domain.LeaderboardEntry{PlayerName: "second", Score: 7})

	if board[0].PlayerName != "first" || board[1].PlayerName != "second" {
		t.Fatalf("tie order changed: %+v", board)
	}
}

func TestSubmitScenarioAliceBob(t *testing.T) {
	ctx := context.Background()
	service := app.NewLeaderboardService(memory.NewLeaderboardStore(), 10)

	service.Submit(ctx, domain.LeaderboardEntry{PlayerName: "Alice", Score: 90})
	board := service.Submit(ctx, domain.LeaderboardEntry{PlayerName: "Bob", Score: 85})

	want := domain.Leaderboard{
		{PlayerName: "Alice", Score: 90},
		{PlayerName: "Bob", Score: 85},
	}
	if len(board) != 2 || board[0] != want[0] || board[1] != want[1] {
		t.Fatalf("expected %+v, got %+v", want, board)
	}
}

func TestPersistThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLeaderboardStore()

	first := app.NewLeaderboardService(store, 10)
	first.Submit(ctx, domain.LeaderboardEntry{PlayerName: "Alice", Score: 3})

	second := app.NewLeaderboardService(store, 10)
	board := second.Load(ctx)
	if len(board) != 1 || board[0].PlayerName != "Alice" || board[0].Score != 3 {
		t.Fatalf("round trip lost data: %+v", board)
	}
}

func TestStorageFailuresAreAbsorbed(t *testing.T) {
	ctx := context.Background()
	service := app.NewLeaderboardService(&failingStore{}, 10)

	if board := service.Load(ctx); len(board) != 0 {
		t.Fatalf("expected empty board on read failure, got %+v", board)
	}

	board := service.Submit(ctx, domain.LeaderboardEntry{PlayerName: "Alice", Score: 1})
	if len(board) != 1 || board[0].PlayerName != "Alice" {
		t.Fatalf("expected merged board despite write failure, got %+v", board)
	}

	// Clear must not panic or surface the failure either.
	service.Clear(ctx)
}

func TestConcurrentSubmitAndLoad(t *testing.T) {
	ctx := context.Background()
	service := app.NewLeaderboardService(memory.NewLeaderboardStore(), 10)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			service.Submit(ctx, domain.LeaderboardEntry{PlayerName: "p", Score: score})
			board := service.Load(ctx)
			for j := 1; j < len(board); j++ {
				if board[j].Score > board[j-1].Score {
					t.Errorf("observed partially sorted board: %+v", board)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	board := service.Load(ctx)
	if len(board) != 10 {
		t.Fatalf("expected capped board, got %d entries", len(board))
	}
}

type failingStore struct{}

func (*failingStore) Load(context.Context) ([]domain.LeaderboardEntry, error) {
	return nil, errors.New("read failed")
}

func (*failingStore) Save(context.Context, []domain.LeaderboardEntry) error {
	return errors.New("write failed")
}

func (*failingStore) Clear(context.Context) error {
	return errors.New("clear failed")
}
