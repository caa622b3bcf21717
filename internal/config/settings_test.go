package config

import (
	"path/filepath"
	"testing"

	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), cfg)
	assert.Equal(t, 64, cfg.Engine.CacheCapacity)
	assert.Equal(t, domain.SolverGreedy, cfg.Engine.Solver)
}

func TestLoadSettings_Overrides(t *testing.T) {
	path := writeTemp(t, "settings_*.toml", `
[engine]
cache_capacity = 256
solver = "simplex"
projection_mode = "constant"
horizon_months = 24

[server]
addr = "127.0.0.1:9090"
allowed_origins = ["https://example.test"]

[cache]
redis_addr = "localhost:6379"
ttl_seconds = 60
`)

	cfg, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Engine.CacheCapacity)
	assert.Equal(t, domain.SolverSimplex, cfg.Engine.Solver)
	assert.Equal(t, domain.ProjectionConstant, cfg.Engine.ProjectionMode)
	assert.Equal(t, 24, cfg.Engine.HorizonMonths)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 60, cfg.Server.RateLimitPerMinute, "unset keys keep defaults")
	assert.Equal(t, []string{"https://example.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"bad toml", "[engine\nsolver=", "parsing settings"},
		{"unknown solver", "[engine]\nsolver = \"annealing\"\n", "engine.solver"},
		{"bad mode", "[engine]\nprojection_mode = \"sideways\"\n", "engine.projection_mode"},
		{"zero horizon", "[engine]\nhorizon_months = 0\n", "engine.horizon_months"},
		{"zero cache", "[engine]\ncache_capacity = 0\n", "engine.cache_capacity"},
		{"negative ttl", "[cache]\nttl_seconds = -1\n", "cache.ttl_seconds"},
		{"zero memory cache size", "[cache]\nmax_entries = 0\n", "cache.max_entries"},
		{"negative rate limit", "[server]\nrate_limit_per_minute = -5\n", "server.rate_limit_per_minute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeTemp(t, "settings_*.toml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	cfg := DefaultSettings()
	cfg.Engine.Solver = domain.SolverSimplex
	cfg.Server.RateLimitPerMinute = 5

	require.NoError(t, SaveSettings(cfg, path))
	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSettingsPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "cardopt", "settings.toml"), SettingsPath())
}

func TestLoadSettings_ZeroRateLimitDisablesLimiting(t *testing.T) {
	cfg, err := LoadSettings(writeTemp(t, "settings_*.toml", "[server]\nrate_limit_per_minute = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, 1024, cfg.Cache.MaxEntries)
}

func TestLoadSettings_RedisIgnoresMaxEntries(t *testing.T) {
	cfg, err := LoadSettings(writeTemp(t, "settings_*.toml", "[cache]\nredis_addr = \"localhost:6379\"\nmax_entries = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
}
