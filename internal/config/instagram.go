package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/grubbot/pkg/log"
)

type InstagramConfig struct {
	Username string `env:"INSTAGRAM_USERNAME,required,notEmpty"`
	Password string `env:"INSTAGRAM_PASSWORD,required,notEmpty"`
}

func NewInstagramConfig(ctx context.Context) *InstagramConfig {
	c := &InstagramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Instagram config")
	}
	return c
}
