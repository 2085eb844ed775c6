package main

import (
	"github.com/spf13/cobra"

	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database auto-migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer cfg.Logger.Sync()

		infrastructure, err := db.NewInfrastructure(cfg)
		if err != nil {
			return err
		}
		defer infrastructure.Close()

		return db.Migrate(infrastructure.DB, cfg.Logger)
	},
}
