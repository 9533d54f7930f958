package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zenmed-health/zenmed/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "zenmed",
	Short: "ZenMed diabetes care web app",
	Long: `ZenMed serves the ZenMed web app: a landing page with sign-in and
registration forms, and a patient dashboard covering glucose, exercise,
posture, nutrition, reminders, analytics and a doctor portal. All figures
are sample data; nothing is persisted.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
}
