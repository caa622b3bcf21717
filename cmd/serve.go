package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/card-optimizer/internal/server"

	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(c *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if flagAddr != "" {
		settings.Server.Addr = flagAddr
	}
	engine, logger, err := newEngine(c, settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, err := server.NewCache(ctx, settings.Cache, logger)
	if err != nil {
		return err
	}
	return server.New(settings, engine, cache, logger).Run(ctx)
}
