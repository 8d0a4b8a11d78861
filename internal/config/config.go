// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	AssetsDir       string        `env:"PORTFOLIO_ASSETS_DIR" envDefault:"public"`
	WatchAssets     bool          `env:"PORTFOLIO_WATCH_ASSETS" envDefault:"true"`
	Metrics         bool          `env:"PORTFOLIO_METRICS" envDefault:"true"`
	SceneSeed       uint64        `env:"PORTFOLIO_SCENE_SEED" envDefault:"1"`
	ShutdownTimeout time.Duration `env:"PORTFOLIO_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Analytics Analytics
	Log       Log
}

// Analytics configures visit counting and the admin endpoints that read it.
type Analytics struct {
	Enabled       bool          `env:"PORTFOLIO_TRACK_VISITS" envDefault:"false"`
	DBPath        string        `env:"PORTFOLIO_DB_PATH" envDefault:"portfolio.db"`
	Retention     time.Duration `env:"PORTFOLIO_RETENTION" envDefault:"8760h"`
	AdminUsername string        `env:"ADMIN_USERNAME"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load parses the process environment. Only the logging settings are checked
// here; commands call Validate once their flags have been applied.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Log.Validate()
}

// LoadFrom parses the given environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Log.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		errs = append(errs, fmt.Errorf("PORT %q is not a valid port", c.Port))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE %q must be debug, release or test", c.GinMode))
	}
	if strings.TrimSpace(c.AssetsDir) == "" {
		errs = append(errs, errors.New("PORTFOLIO_ASSETS_DIR is empty"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("PORTFOLIO_SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.Analytics.Enabled {
		if c.Analytics.DBPath == "" {
			errs = append(errs, errors.New("PORTFOLIO_DB_PATH is empty"))
		}
		if c.Analytics.Retention <= 0 {
			errs = append(errs, errors.New("PORTFOLIO_RETENTION must be positive"))
		}
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (l Log) Validate() error {
	var errs []error
	if _, err := parseLevel(l.Level); err != nil {
		errs = append(errs, err)
	}
	switch l.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q must be text or json", l.Format))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// NewLogger builds the process logger.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(l.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
