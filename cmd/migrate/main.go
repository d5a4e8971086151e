package main

import (
	"fmt"
	"os"

	"kidsedu/internal/config"
	"kidsedu/internal/database"
	"kidsedu/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "migrate",
		Short:             "Apply or roll back the vocabulary database schema",
		PersistentPreRunE: setup,
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.RunMigrations(databaseURL); err != nil {
				return err
			}
			logger.Get().Info("Migrations applied")
			return nil
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			if err := database.RollbackMigrations(databaseURL, steps); err != nil {
				return err
			}
			logger.Get().Info("Rolled back migrations", zap.Int("steps", steps))
			return nil
		},
	}
	down.Flags().Int("steps", 1, "Number of migrations to roll back")

	root.AddCommand(up, down)
	// bare `migrate` applies everything
	root.RunE = up.RunE
	return root
}

var databaseURL string

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	databaseURL = cfg.Database.URL
	return nil
}
