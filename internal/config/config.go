package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the hangman CLI.
type Config struct {
	PlayerName string   `env:"HANGMAN_PLAYER" envDefault:"Player"`
	WordFiles  []string `env:"HANGMAN_WORDS" envSeparator:","`
	Seed       uint64   `env:"HANGMAN_SEED"` // 0 seeds from the clock
	LogFile    string   `env:"HANGMAN_LOG_FILE"`
	LogLevel   string   `env:"HANGMAN_LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional dotenv files, then parses the environment.
// Without arguments it looks for ".env" in the working directory.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	return ParseEnv()
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
