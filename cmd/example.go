package cmd

import (
	"fmt"

	"github.com/rpgo/card-optimizer/internal/config"

	"github.com/spf13/cobra"
)

var flagOutput string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print or write a sample request file",
	RunE:  runExample,
}

func init() {
	exampleCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the example to this file instead of stdout")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(c *cobra.Command, _ []string) error {
	req := config.NewInputParser().CreateExampleRequest()
	if flagOutput != "" {
		if err := config.SaveRequest(req, flagOutput); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "Example request written to %s\n", flagOutput)
		return nil
	}
	data, err := config.MarshalRequest(req)
	if err != nil {
		return err
	}
	_, err = c.OutOrStdout().Write(data)
	return err
}
