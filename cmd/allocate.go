package cmd

import (
	"github.com/rpgo/card-optimizer/internal/config"
	"github.com/rpgo/card-optimizer/internal/output"

	"github.com/spf13/cobra"
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Suggest how to split this month's budget across cards",
	RunE:  runAllocate,
}

func init() {
	addInputFlags(allocateCmd)
	rootCmd.AddCommand(allocateCmd)
}

func runAllocate(c *cobra.Command, _ []string) error {
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
	engine, _, err := newEngine(c, settings)
	if err != nil {
		return err
	}

	summary, err := engine.Allocate(c.Context(), req)
	if err != nil {
		return err
	}
	return output.WriteAllocation(c.OutOrStdout(), flagFormat, summary)
}
