package cmd

import (
	"github.com/rpgo/card-optimizer/internal/config"
	"github.com/rpgo/card-optimizer/internal/output"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare minimum, current and suggested payments month by month",
	RunE:  runCompare,
}

func init() {
	addInputFlags(compareCmd)
	rootCmd.AddCommand(compareCmd)
}

func runCompare(c *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if _, err := output.GetFormatterByName(flagFormat); err != nil {
		return err
	}
	req, err := config.NewInputParser().LoadFromFile(flagInput)
	if err != nil {
		return err
	}
	engine, logger, err := newEngine(c, settings)
	if err != nil {
		return err
	}

	report, err := engine.Compare(c.Context(), req)
	if err != nil {
		return err
	}
	hits, misses, size := engine.Projection.Projector.Stats()
	logger.Debugf("projector cache: %d hits, %d misses, %d entries", hits, misses, size)
	return output.WriteComparison(c.OutOrStdout(), flagFormat, report)
}
