package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todosync/internal/platform/config"
)

// Profile tests read the repository's configs/ directory and so cannot run
// in parallel with t.Chdir.
func TestLoad_Profiles(t *testing.T) {
	tests := []struct {
		profile string
		env     map[string]string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host, "from base")
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.False(t, cfg.Telemetry.Enabled)
				assert.Equal(t, config.StrategyOptimistic, cfg.Sync.Strategy)
				assert.Equal(t, 1, cfg.Client.Retry.MaxAttempts, "from base")
				assert.Equal(t, 5, cfg.Client.CircuitBreaker.MaxFailures, "from base")
				assert.Equal(t, 5, cfg.View.ItemsPerPage, "from base")
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "json", cfg.Log.Format)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
				assert.NotEmpty(t, cfg.Telemetry.Endpoint)
				assert.Equal(t, config.StrategyConfirm, cfg.Sync.Strategy, "from base")
				assert.Equal(t, 30*time.Second, cfg.Sync.RefreshInterval)
				assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
				assert.InDelta(t, 20.0, cfg.Client.RateLimit.RequestsPerSecond, 0)
			},
		},
		{
			profile: "local",
			env: map[string]string{
				"APP_SERVER_PORT":               "9090",
				"APP_SERVER_READ_TIMEOUT":       "15s",
				"APP_CLIENT_RETRY_MAX_ATTEMPTS": "7",
				"APP_CLIENT_BASE_URL":           "http://todos.internal:3000",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 7, cfg.Client.Retry.MaxAttempts)
				assert.Equal(t, "http://todos.internal:3000", cfg.Client.BaseURL)
			},
		},
		{
			profile: "prod",
			env: map[string]string{
				"APP_SYNC_STRATEGY":       "optimistic",
				"APP_VIEW_ITEMS_PER_PAGE": "10",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.StrategyOptimistic, cfg.Sync.Strategy)
				assert.Equal(t, 10, cfg.View.ItemsPerPage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Chdir("../../..")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load(tt.profile)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "client:\n  base_url: \"http://todos.test\"\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "log:\n  level: warn\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "http://todos.test", cfg.Client.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, config.StrategyConfirm, cfg.Sync.Strategy)
	assert.Equal(t, 5, cfg.View.ItemsPerPage)
	assert.Equal(t, 1, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "view:\n  items_per_page: 0\n")
	writeFile(t, filepath.Join(dir, "bad.yaml"), "log: [unterminated\n")
	writeFile(t, filepath.Join(dir, "ok.yaml"), "log:\n  level: info\n")

	tests := []struct {
		name    string
		profile string
		wantErr string
	}{
		{"blank profile", "  ", "must not be empty"},
		{"traversal", "../etc", "bare file name"},
		{"separator", "a/b", "bare file name"},
		{"missing file", "nonexistent", "loading nonexistent config"},
		{"malformed yaml", "bad", "loading bad config"},
		{"invalid values", "ok", "view.items_per_page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(tt.profile, config.WithConfigDir(dir))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"valid", func(*config.Config) {}, ""},
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }, "server.port"},
		{"unknown log level", func(c *config.Config) { c.Log.Level = "verbose" }, "log.level"},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}, "endpoint"},
		{"unknown strategy", func(c *config.Config) { c.Sync.Strategy = "eventual" }, "sync.strategy"},
		{"items per page zero", func(c *config.Config) { c.View.ItemsPerPage = 0 }, "view.items_per_page"},
		{"rate limit without burst", func(c *config.Config) {
			c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5}
		}, "burst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
		Sync:      config.SyncConfig{Strategy: config.StrategyConfirm},
		View:      config.ViewConfig{ItemsPerPage: 5},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
