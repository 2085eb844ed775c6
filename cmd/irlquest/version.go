package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildVersion 빌드 시 -ldflags "-X main.buildVersion=..."로 주입됩니다
var buildVersion = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "irlquest version %s\n", buildVersion)
	},
}
