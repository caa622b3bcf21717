package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/card-optimizer/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current settings",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(c *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	path := flagConfig
	if path == "" {
		path = config.SettingsPath()
	}

	out := c.OutOrStdout()
	fmt.Fprintf(out, "  Settings file: %s\n", path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(out, "  Status: using defaults (no settings file)")
	} else {
		fmt.Fprintln(out, "  Status: loaded")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [engine]")
	fmt.Fprintf(out, "    cache_capacity:  %d\n", settings.Engine.CacheCapacity)
	fmt.Fprintf(out, "    solver:          %s\n", settings.Engine.Solver)
	fmt.Fprintf(out, "    projection_mode: %s\n", settings.Engine.ProjectionMode)
	fmt.Fprintf(out, "    horizon_months:  %d\n", settings.Engine.HorizonMonths)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [server]")
	fmt.Fprintf(out, "    addr:                  %s\n", settings.Server.Addr)
	fmt.Fprintf(out, "    rate_limit_per_minute: %d\n", settings.Server.RateLimitPerMinute)
	fmt.Fprintf(out, "    allowed_origins:       %s\n", strings.Join(settings.Server.AllowedOrigins, ", "))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [cache]")
	switch {
	case settings.Cache.Disabled:
		fmt.Fprintln(out, "    backend: disabled")
	case settings.Cache.RedisAddr != "":
		fmt.Fprintf(out, "    backend: redis (%s)\n", settings.Cache.RedisAddr)
	default:
		fmt.Fprintf(out, "    backend: memory (max %d entries)\n", settings.Cache.MaxEntries)
	}
	fmt.Fprintf(out, "    ttl_seconds: %d\n", settings.Cache.TTLSeconds)
	return nil
}
