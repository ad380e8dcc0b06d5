package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quiz-racer/internal/app"
	"quiz-racer/internal/config"
	"quiz-racer/internal/infra/memory"
	"quiz-racer/internal/infra/postgres"
	"quiz-racer/internal/infra/rabbitmq"
	infraredis "quiz-racer/internal/infra/redis"
	"quiz-racer/internal/infra/sqlite"
	transport "quiz-racer/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

// leaderboardBackend is a store sessions submit to and the leaderboard view reads from.
type leaderboardBackend interface {
	app.Gateway
	app.LeaderboardReader
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	gameCfg, err := gameConfig(cfg)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = redisClient.Close() })
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		closers = append(closers, pool.Close)
	}

	var loader memory.QuestionLoader = memory.NewStaticQuestionLoader(builtinQuestions())
	if pool != nil {
		loader = postgres.NewQuestionLoader(pool)
	}

	questionTTL := config.TTLDuration(cfg.Questions.TTL, 10*time.Minute)
	var questions app.QuestionRepository
	if redisClient != nil {
		questions = infraredis.NewQuestionRepository(redisClient, loader, questionTTL)
	} else {
		questions = memory.NewQuestionRepository(loader, questionTTL)
	}

	var store app.SessionRepository
	if redisClient != nil {
		store = infraredis.NewSessionStore(redisClient, redisTTL)
	} else {
		store = memory.NewSessionStore()
	}

	var board leaderboardBackend
	switch {
	case pool != nil:
		board = postgres.NewLeaderboardStore(pool)
	case cfg.SQLite.Path != "":
		sq, err := sqlite.NewLeaderboardStore(cfg.SQLite.Path)
		if err != nil {
			return err
		}
		closers = append(closers, func() { _ = sq.Close() })
		board = sq
	case redisClient != nil:
		board = infraredis.NewLeaderboardStore(redisClient)
	default:
		board = memory.NewLeaderboardStore()
	}

	var gateway app.Gateway = board
	if cfg.AMQP.URL != "" {
		routingKey := cfg.AMQP.RoutingKey
		if routingKey == "" {
			routingKey = "race.finished"
		}
		publisher, err := rabbitmq.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange, routingKey)
		if err != nil {
			return err
		}
		closers = append(closers, func() { _ = publisher.Close() })
		gateway = app.NewTeeGateway(board, publisher)
	}

	service := app.NewGameService(store, questions, gateway, board, gameCfg)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.NewRouter(service),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().
			Str("port", finalPort).
			Int("questions", gameCfg.TotalQuestions).
			Int("seconds_per_question", gameCfg.PerQuestionTime).
			Msg("starting quiz racer")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info().Msg("shutting down server...")
	case <-ctx.Done():
		log.Info().Msg("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// gameConfig starts from the mode preset and applies explicit overrides.
func gameConfig(cfg config.Config) (app.Config, error) {
	out, err := app.ConfigForMode(cfg.Game.Mode)
	if err != nil {
		return app.Config{}, err
	}
	g := cfg.Game
	if g.PerQuestionTime < 0 || g.TotalQuestions < 0 || g.MaxDistance < 0 {
		return app.Config{}, errors.New("game: negative values are not allowed")
	}
	if g.PerQuestionTime > 0 {
		out.PerQuestionTime = g.PerQuestionTime
	}
	if g.TotalQuestions > 0 {
		out.TotalQuestions = g.TotalQuestions
	}
	if g.MaxDistance > 0 {
		out.MaxDistance = g.MaxDistance
	}
	out.RevealDelay = config.TTLDuration(g.RevealDelay, out.RevealDelay)
	if g.Competitors != nil {
		if *g.Competitors < 0 {
			return app.Config{}, errors.New("game: negative competitor count")
		}
		out.Competitors = *g.Competitors
	}
	return out, nil
}
