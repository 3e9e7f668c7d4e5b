package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string        `env:"PUNCH_ADDR" envDefault:":8080"`
	Env        string        `env:"PUNCH_ENV" envDefault:"development"`
	LogLevel   string        `env:"PUNCH_LOG_LEVEL" envDefault:"info"`
	RulesFile  string        `env:"PUNCH_RULES_FILE"`
	Seed       int64         `env:"PUNCH_SEED" envDefault:"0"`
	SendBuffer int           `env:"PUNCH_SEND_BUFFER" envDefault:"32"`
	RoomIdle   time.Duration `env:"PUNCH_ROOM_IDLE" envDefault:"1m"` // reaps lobby rooms nobody joins
}

func (c Config) Production() bool {
	return c.Env == "production"
}

// Load reads the given .env files (".env" when none are named) into the process
// environment and parses Config from it. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SendBuffer <= 0 {
		return Config{}, fmt.Errorf("PUNCH_SEND_BUFFER must be positive, got %d", cfg.SendBuffer)
	}
	if cfg.RoomIdle < 0 {
		return Config{}, fmt.Errorf("PUNCH_ROOM_IDLE must not be negative, got %s", cfg.RoomIdle)
	}
	return cfg, nil
}
