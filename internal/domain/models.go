package domain

// QuestionRecord is one entry of the question bank: the prompt, the candidate
// answers in their authored order, and the index of the correct answer within
// that order. Records are loaded once at startup and shared read-only by all
// sessions.
type QuestionRecord struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
	Correct  int      `json:"correct"`
}

// SessionQuestion is a QuestionRecord prepared for one playthrough: the
// answers in a freshly shuffled order plus the position of the correct answer
// text within that order. Derived when a session starts or restarts; owned by
// that session alone.
type SessionQuestion struct {
	QuestionRecord
	ShuffledAnswers      []string `json:"shuffledAnswers"`
	ShuffledCorrectIndex int      `json:"shuffledCorrectIndex"`
}

// LeaderboardEntry is one persisted score.
type LeaderboardEntry struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
}

// Leaderboard is the ranked, capped record of best scores, descending by
// score. This is also the durable shape stored under the leaderboard key.
type Leaderboard []LeaderboardEntry
