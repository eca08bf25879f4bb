package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/scoreboard.db"`
	RedisURL string     `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	// LiveWindowMinutes is how long a match counts as live after its
	// scheduled start. Organizers have run events with both 20 and 25
	// minute rounds, so there is no default: the value must be chosen
	// per event.
	LiveWindowMinutes int `env:"LIVE_WINDOW_MINUTES,required"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.LiveWindowMinutes <= 0 {
		return nil, fmt.Errorf("LIVE_WINDOW_MINUTES must be positive, got %d", cfg.LiveWindowMinutes)
	}
	return &cfg, nil
}
