// Package config loads runtime settings from the environment.
//
// Values come from the process environment, optionally seeded from a .env
// file by the caller (godotenv). Command-line flags in main override them.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting used by the terminal and server modes.
type Config struct {
	WordsFile  string `env:"WORDS_FILE"`
	MaxGuesses int    `env:"MAX_GUESSES" envDefault:"6"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	// NO_COLOR follows no-color.org: any non-empty value disables color.
	NoColorEnv string `env:"NO_COLOR"`
	NoColor    bool

	Port         string        `env:"PORT" envDefault:"5175"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	TokenSecret  string        `env:"TOKEN_SECRET" envDefault:"dev_secret_change_me"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	DailySalt    string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.NoColor = cfg.NoColorEnv != ""
	return cfg, nil
}

// Addr is the listen address for server mode.
func (c Config) Addr() string { return ":" + c.Port }
