// Command gcpmigrate is the thin CLI front-end over the translation core:
// migrate runs the pipeline on one file, plan builds and executes a
// RefactoringPlan over a directory, catalog prints the service catalog.
// This is glue over internal/translate; none of the Core's invariants
// live here.
package main

import (
	"fmt"
	"os"

	"github.com/catherinevee/gcpmigrate/cmd/gcpmigrate/commands"
	"github.com/catherinevee/gcpmigrate/internal/config"
	"github.com/catherinevee/gcpmigrate/internal/observability/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "gcpmigrate",
	Short:   "Source-to-source AWS/Azure to GCP cloud SDK migration engine",
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromViper(viper.GetViper(), cfgFile)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		logger.Initialize(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: cfg.Logging.Output})
		commands.SetConfig(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().Bool("llm-enabled", false, "enable the LLM refinement adapter")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	viper.BindPFlag("llm.enabled", rootCmd.PersistentFlags().Lookup("llm-enabled"))
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(commands.MigrateCmd)
	rootCmd.AddCommand(commands.PlanCmd)
	rootCmd.AddCommand(commands.CatalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
