package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zenmed-health/zenmed/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize zenmed configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the server settings and writes them to the config file (zenmed.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
