package cmd

import (
	"errors"
	"os"

	"github.com/mj1618/forms-cli/internal/logger"
	"github.com/mj1618/forms-cli/internal/output"
	"github.com/mj1618/forms-cli/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forms-cli",
	Short: "Locate and drive components of a forms application",
	Long: `A CLI that locates components of a forms application by name, by value and
by their position on screen, and drives them: set and verify fields, find
table rows by their column values, tick row checkboxes, press buttons.

The form is opened through a toolkit binding. The built-in "snapshot"
binding works on a YAML or JSON form snapshot given with --snapshot.`,
	SilenceUsage: true,
}

// errReported marks a failure whose result was already printed.
var errReported = errors.New("failed")

func Execute() {
	err := rootCmd.Execute()
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./forms-cli.yaml if present)")
	rootCmd.PersistentFlags().StringArray("set", nil, "Override a config setting, e.g. --set geometry.gap_tolerance=20")
	rootCmd.PersistentFlags().String("binding", "snapshot", "Toolkit binding used to open the form")
	rootCmd.PersistentFlags().String("snapshot", "", "Form source passed to the binding (snapshot file path)")
	rootCmd.PersistentFlags().Bool("write", false, "Write the form back to --snapshot after mutating commands")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Log.File != "" {
			if err := logger.Init(cfg.Log.File, cfg.Log.Level); err != nil {
				return err
			}
		}
		return nil
	}
}
