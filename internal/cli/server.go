package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/memory"
	pgloader "trivia-quiz-service/internal/infra/postgres"
	redisstore "trivia-quiz-service/internal/infra/redis"
	transport "trivia-quiz-service/internal/transport/http"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	// The bank is loaded once at startup and never reloaded.
	var loader app.QuestionLoader = memory.NewStaticQuestionLoader(sampleQuestions())
	if pool != nil {
		loader = pgloader.NewQuestionLoader(pool)
	}
	bank, err := loader.LoadQuestions(ctx)
	if err != nil {
		return err
	}
	if len(bank) == 0 {
		log.Printf("question bank is empty; sessions will stay in loading state")
	}

	var store app.LeaderboardStore
	if redisClient != nil {
		store = redisstore.NewLeaderboardStore(redisClient, cfg.Redis.Key)
	} else {
		store = memory.NewLeaderboardStore()
	}
	capacity := config.CapacityOrDefault(cfg.Leaderboard.Capacity, app.DefaultLeaderboardCapacity)

	leaderboard := app.NewLeaderboardService(store, capacity)
	service := app.NewQuizService(bank, leaderboard)
	wsHandler := transport.NewWSHandler(service)
	lbHandler := transport.NewLeaderboardHandler(leaderboard)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.HandleFunc("/leaderboard", lbHandler.ServeLeaderboard)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting trivia quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleQuestions provides a minimal bundled bank; swap the loader with the
// Postgres-backed one in production.
func sampleQuestions() []domain.QuestionRecord {
	return []domain.QuestionRecord{
		{
			Question: "What is 2 + 2?",
			Answers:  []string{"3", "4", "5"},
			Correct:  1,
		},
		{
			Question: "Which planet is known as the Red Planet?",
			Answers:  []string{"Earth", "Venus", "Mars", "Jupiter"},
			Correct:  2,
		},
		{
			Question: "Who painted the Mona Lisa?",
			Answers:  []string{"Van Gogh", "Picasso", "Da Vinci", "Monet"},
			Correct:  2,
		},
	}
}
