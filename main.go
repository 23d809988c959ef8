package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"IntakeBot/config"
	"IntakeBot/handler"
	"IntakeBot/repo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	configureLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := InitializeStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing application store")
	}

	h := handler.NewIntakeBotHandler(store, repo.NoopRequirementSink{}, cfg.EventFormTitle)
	defer h.Close()

	opts := []bot.Option{
		bot.WithDefaultHandler(h.Handler),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating bot")
	}

	log.Info().Msg("Bot started")
	b.Start(ctx)
	log.Info().Msg("Bot stopped")
}

func configureLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "intakebot").Logger()
}

// InitializeStore connects to Firebase when it is configured and falls back
// to an in-memory store otherwise.
func InitializeStore(ctx context.Context, cfg config.Config) (repo.ApplicationStore, error) {
	if !cfg.UseFirebase() {
		log.Warn().Msg("Firebase not configured, event applications are kept in memory")
		return repo.NewMemoryStore(), nil
	}

	firebaseConnector, err := repo.NewFirebaseConnector(ctx, cfg.ServiceAccountKeyPath, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating Firebase connector: %w", err)
	}
	return firebaseConnector, nil
}
