package http

import (
	"encoding/json"
	"net/http"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

// LeaderboardHandler exposes the board to the leaderboard screen: GET returns
// the ranked entries, DELETE clears them.
type LeaderboardHandler struct {
	leaderboard *app.LeaderboardService
}

func NewLeaderboardHandler(leaderboard *app.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

func (h *LeaderboardHandler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		board := h.leaderboard.Load(r.Context())
		if board == nil {
			board = domain.Leaderboard{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(board)
	case http.MethodDelete:
		h.leaderboard.Clear(r.Context())
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
