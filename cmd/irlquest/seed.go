package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wekeepgrowing/irlquest-backend/internal/adapter/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/db"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default quest template knowledge",
	Long:  "Insert the default quest template knowledge records. Records whose content already exists are skipped.",
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

		knowledgeUC := usecase.NewKnowledgeUseCase(cfg.Logger, repository.NewKnowledgeRepository(infrastructure.DB))
		added, err := knowledgeUC.SeedDefaults(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d knowledge record(s)\n", added)
		return nil
	},
}
