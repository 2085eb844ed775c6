package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wekeepgrowing/irlquest-backend/internal/config"
)

// configFile --config 플래그 값. 비어 있으면 configs/{APP_ENV}/irlquest.yaml을 찾습니다.
var configFile string

var rootCmd = &cobra.Command{
	Use:   "irlquest",
	Short: "IRL Quest backend",
	Long: `IRL Quest turns everyday TODO items into RPG-style quests.

The serve command runs the HTTP API. The migrate and seed commands prepare
the database, and the dataset commands run the quest generator offline over
a newline-separated file.`,
	SilenceUsage: true,
}

// Execute 루트 명령 실행
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "설정 파일 경로")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("설정 로드 실패: %w", err)
	}
	return cfg, nil
}
