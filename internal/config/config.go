package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

var (
	ErrNoRoots         = errors.New("at least one root directory is required")
	ErrInvalidPort     = errors.New("port must be between 1 and 65535")
	ErrInvalidLogLevel = errors.New("unknown log level")
)

// Config holds everything the server needs at startup. Roots come from the
// command line; the rest can also be set through the environment.
type Config struct {
	Roots       []string
	Host        string `env:"FALLBAQ_HOST" envDefault:"127.0.0.1"`
	Port        int    `env:"FALLBAQ_PORT" envDefault:"8000"`
	LogLevel    string `env:"FALLBAQ_LOG_LEVEL" envDefault:"info"`
	Environment string `env:"FALLBAQ_ENV" envDefault:"development"`
	SentryDSN   string `env:"SENTRY_DSN"`
}

// Load reads the environment into a Config with defaults applied.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Roots) == 0 {
		return ErrNoRoots
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel into a zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return level, nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
