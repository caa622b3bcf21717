package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/card-optimizer/internal/domain"
)

// Settings holds engine and server configuration.
type Settings struct {
	Engine domain.EngineSettings `toml:"engine"`
	Server ServerSettings        `toml:"server"`
	Cache  CacheSettings         `toml:"cache"`
}

// ServerSettings configures the HTTP boundary. RateLimitPerMinute is the
// per-client request budget; 0 disables rate limiting.
type ServerSettings struct {
	Addr               string   `toml:"addr"`
	RateLimitPerMinute int      `toml:"rate_limit_per_minute"`
	AllowedOrigins     []string `toml:"allowed_origins"`
}

// CacheSettings configures the response cache. An empty RedisAddr selects
// the in-memory cache, bounded by MaxEntries; Disabled turns caching off.
type CacheSettings struct {
	Disabled   bool   `toml:"disabled"`
	RedisAddr  string `toml:"redis_addr,omitempty"`
	TTLSeconds int    `toml:"ttl_seconds"`
	MaxEntries int    `toml:"max_entries"`
}

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	return Settings{
		Engine: domain.DefaultEngineSettings(),
		Server: ServerSettings{
			Addr:               ":8080",
			RateLimitPerMinute: 60,
			AllowedOrigins: []string{
				"http://localhost",
				"http://localhost:8080",
				"http://0.0.0.0:1234",
			},
		},
		Cache: CacheSettings{
			TTLSeconds: 3600,
			MaxEntries: 1024,
		},
	}
}

// SettingsDir returns the XDG-compliant config directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cardopt")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cardopt")
}

// SettingsPath returns the default settings file path.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "settings.toml")
}

// LoadSettings reads a TOML settings file, returning defaults if it doesn't
// exist. An empty path means SettingsPath().
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	if path == "" {
		path = SettingsPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing settings: %w", err)
	}

	if err := ValidateSettings(cfg); err != nil {
		return cfg, fmt.Errorf("settings validation failed: %w", err)
	}
	return cfg, nil
}

// SaveSettings writes settings to path as TOML.
func SaveSettings(cfg Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// ValidateSettings checks ranges and enum values.
func ValidateSettings(cfg Settings) error {
	e := cfg.Engine
	if e.CacheCapacity <= 0 {
		return fmt.Errorf("engine.cache_capacity must be positive")
	}
	if e.Solver != domain.SolverGreedy && e.Solver != domain.SolverSimplex {
		return fmt.Errorf("engine.solver must be %q or %q", domain.SolverGreedy, domain.SolverSimplex)
	}
	if e.ProjectionMode != domain.ProjectionRolling && e.ProjectionMode != domain.ProjectionConstant {
		return fmt.Errorf("engine.projection_mode must be %q or %q", domain.ProjectionRolling, domain.ProjectionConstant)
	}
	if e.HorizonMonths < 1 || e.HorizonMonths > 120 {
		return fmt.Errorf("engine.horizon_months must be between 1 and 120")
	}
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if cfg.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute cannot be negative")
	}
	if cfg.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache.ttl_seconds cannot be negative")
	}
	if !cfg.Cache.Disabled && cfg.Cache.RedisAddr == "" && cfg.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be positive for the in-memory cache")
	}
	return nil
}
