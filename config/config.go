package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings read from the environment.
type Config struct {
	BotToken              string
	ServiceAccountKeyPath string
	DatabaseURL           string
	LogLevel              string
	EventFormTitle        string
}

// UseFirebase reports whether both Firebase settings are present.
func (c Config) UseFirebase() bool {
	return c.ServiceAccountKeyPath != "" && c.DatabaseURL != ""
}

// Load reads a .env file when one exists and then the environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading env file: %w", err)
	}

	cfg := Config{
		BotToken:              os.Getenv("TELEGRAM_BOT_TOKEN"),
		ServiceAccountKeyPath: os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY_PATH"),
		DatabaseURL:           os.Getenv("FIREBASE_DATABASE_URL"),
		LogLevel:              os.Getenv("LOG_LEVEL"),
		EventFormTitle:        os.Getenv("EVENT_FORM_TITLE"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.BotToken == "" {
		return Config{}, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if (cfg.ServiceAccountKeyPath == "") != (cfg.DatabaseURL == "") {
		return Config{}, fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_KEY_PATH and FIREBASE_DATABASE_URL must be set together")
	}
	return cfg, nil
}
