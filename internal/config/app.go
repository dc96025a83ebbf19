package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/grubbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"GRUBBOT_RUNTIME_PATH" envDefault:".grubbot"`

	// Poller cadence
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"10s"`

	// Upper bound for a single gateway or store call
	CallTimeout time.Duration `env:"CALL_TIMEOUT" envDefault:"30s"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "grubbot.db")
}
