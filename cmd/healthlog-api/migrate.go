package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sid-c23/cs6440-project/internal/config"
	"github.com/sid-c23/cs6440-project/internal/logger"
	"github.com/sid-c23/cs6440-project/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Connect to PostgreSQL and apply the users/events schema. Safe to re-run.`,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("database.url is required (set DATABASE_URL)")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		return err
	}

	log.Info().Msg("schema applied")
	return nil
}
