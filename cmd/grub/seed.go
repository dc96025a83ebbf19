package main

import (
	"github.com/sandevgo/grubbot/internal/config"
	"github.com/sandevgo/grubbot/internal/core"
	"github.com/sandevgo/grubbot/internal/storage/sqlite"
	"github.com/sandevgo/grubbot/pkg/log"
	"github.com/spf13/cobra"
)

// starterMenu is the bootstrap catalogue; admin tooling owns the menu after that.
var starterMenu = []core.MenuItem{
	{
		Name:        "Margherita Pizza",
		Description: "Classic tomato and mozzarella pizza",
		Category:    "Pizza",
		Price:       12.99,
		Available:   true,
	},
	{
		Name:        "Chicken Burger",
		Description: "Grilled chicken with fresh vegetables",
		Category:    "Burgers",
		Price:       8.99,
		Available:   true,
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the starter menu",
	Long:  `Inserts the starter menu items into the database. Safe to run repeatedly; existing items are updated in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()
		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		appCfg := config.NewAppConfig(ctx)

		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		menuRepo := sqlite.NewMenuRepo(db)
		for _, item := range starterMenu {
			if err := menuRepo.Upsert(ctx, item); err != nil {
				return err
			}
			logger.Info().Str("name", item.Name).Float64("price", item.Price).Msg("seeded menu item")
		}

		logger.Info().Int("count", len(starterMenu)).Msg("menu seeding complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
