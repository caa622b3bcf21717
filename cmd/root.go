// Package cmd implements the cardopt CLI commands.
package cmd

import (
	"os"

	"github.com/rpgo/card-optimizer/internal/calculation"
	"github.com/rpgo/card-optimizer/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagInput  string
	flagFormat string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "cardopt",
	Short: "Credit card payment optimizer",
	Long: "Split a monthly budget across credit cards so that next month's total balance is as low as possible,\n" +
		"and compare minimum, current and suggested payments over the coming year.",
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default "+config.SettingsPath()+")")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// addInputFlags registers the flags shared by commands that read a request.
func addInputFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagInput, "input", "i", "", "Request file (YAML or JSON)")
	c.Flags().StringVarP(&flagFormat, "format", "f", "console", "Output format: console, json, csv")
	_ = c.MarkFlagRequired("input")
}

// loadSettings reads the settings file and applies the --debug flag.
func loadSettings() (config.Settings, error) {
	settings, err := config.LoadSettings(flagConfig)
	if err != nil {
		return settings, err
	}
	if flagDebug {
		settings.Engine.Debug = true
	}
	return settings, nil
}

// newEngine builds a calculation engine with a stderr logger.
func newEngine(c *cobra.Command, settings config.Settings) (*calculation.CalculationEngine, calculation.Logger, error) {
	engine, err := calculation.NewCalculationEngineWithSettings(settings.Engine)
	if err != nil {
		return nil, nil, err
	}
	logger := calculation.NewStdLogger(c.ErrOrStderr(), settings.Engine.Debug)
	engine.SetLogger(logger)
	return engine, logger, nil
}
