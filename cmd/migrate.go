package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/docaid/DocAid-BookingService/internal/config"
	"github.com/docaid/DocAid-BookingService/internal/infra/storage/migrations"
	"github.com/docaid/DocAid-BookingService/pkg/logger"
	"github.com/docaid/DocAid-BookingService/pkg/txmanager"
)

const migrateTimeout = 2 * time.Minute

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfigAndLogger(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			return applyMigrations(cfg, log)
		},
	}
}

func applyMigrations(cfg *config.Config, log *logger.Logger) error {
	if cfg.Storage.Backend != config.StoragePostgres {
		log.Info("Storage backend is %s, nothing to migrate", cfg.Storage.Backend)
		return nil
	}

	db, stop, err := openDatabase(cfg, nil, log)
	if err != nil {
		return err
	}
	defer func() {
		close(stop)
		_ = db.Unwrap().Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	migrator := migrations.NewMigrator(db, txmanager.NewTransactionManager(db), migrations.Embedded(), log)
	applied, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info("Migrations applied: %d", applied)
	return nil
}
