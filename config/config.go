package config

import (
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config is read from the environment
type Config struct {
	Port          int    `env:"MATATU_PORT,default=8000"`
	LogLevel      string `env:"MATATU_LOG_LEVEL,default=info"`
	ColorLog      bool   `env:"MATATU_COLOR_LOG,default=true"`
	DelaysFile    string `env:"MATATU_DELAYS_FILE"`
	DisableDelays bool   `env:"MATATU_DISABLE_DELAYS,default=false"`

	IdleTimeout   time.Duration `env:"MATATU_IDLE_TIMEOUT,default=30m"`
	SweepInterval time.Duration `env:"MATATU_SWEEP_INTERVAL,default=1m"`
}

// Load decodes the config from the environment
func Load() (Config, error) {
	var cfg Config
	err := envdecode.StrictDecode(&cfg)
	if err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, errors.Wrap(err, "Error reading config from the environment")
	}

	return cfg, nil
}

// Level is the zerolog level named by LogLevel. Unknown names mean info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// Delays returns the pacing for opponent moves
func (c Config) Delays() (Delays, error) {
	if c.DisableDelays {
		return Delays{}, nil
	}
	if c.DelaysFile == "" {
		return DefaultDelays(), nil
	}
	return ParseDelayConfig(c.DelaysFile)
}
