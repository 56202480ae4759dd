package cli

import (
	"os"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Portfolio content API",
	Long:          "portfolio serves the REST API behind a personal portfolio site and manages its database.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd)
}

// Execute runs the command line. Without a subcommand the API is served.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration, sets up logging and opens the database.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.Env)

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("database connected", "driver", cfg.DBDriver)
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("failed to close database", "error", err)
	}
}
