package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/grubbot/internal/config"
	"github.com/sandevgo/grubbot/internal/gateway/instagram"
	"github.com/sandevgo/grubbot/internal/service/command"
	"github.com/sandevgo/grubbot/internal/service/ledger"
	"github.com/sandevgo/grubbot/internal/service/order"
	"github.com/sandevgo/grubbot/internal/service/poller"
	"github.com/sandevgo/grubbot/internal/session"
	"github.com/sandevgo/grubbot/internal/storage/sqlite"
	"github.com/sandevgo/grubbot/pkg/log"
	"github.com/sandevgo/grubbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	igCfg := config.NewInstagramConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Session Manager over the gateway
	sess := session.NewManager(instagram.NewClient(), igCfg)

	// 4. Domain services
	led := ledger.New(sqlite.NewProcessedRepo(db))
	store := order.NewStore(sqlite.NewMenuRepo(db), sqlite.NewOrdersRepo(db))
	router := command.New(command.NewHandlers(store))

	// 5. Poller Loop
	pol := poller.New(sess, led, router, appCfg.PollInterval, appCfg.CallTimeout)
	services = append(services, pol)

	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
