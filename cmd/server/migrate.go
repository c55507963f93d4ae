package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"payment-initiation-backend/internal/config"
	"payment-initiation-backend/internal/repository"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			if err := repository.AutoMigrate(db); err != nil {
				return err
			}
			slog.Info("migrations applied", "driver", cfg.DBDriver)
			return nil
		},
	}
}
