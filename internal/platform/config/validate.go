package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
	strategies = []string{StrategyConfirm, StrategyOptimistic}
)

// Validate reports every invalid setting at once, each prefixed with its
// dotted key.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout", "must be positive, got %s", s.ReadTimeout)
	p.check(s.WriteTimeout > 0, "server.write_timeout", "must be positive, got %s", s.WriteTimeout)
	p.check(s.RequestTimeout >= 0, "server.request_timeout", "must not be negative, got %s", s.RequestTimeout)

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	cl := c.Client
	p.check(cl.BaseURL != "", "client.base_url", "must not be empty")
	p.check(cl.Timeout > 0, "client.timeout", "must be positive, got %s", cl.Timeout)
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts", "must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier", "must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1, "client.circuit_breaker.max_failures",
		"must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second",
		"must not be negative, got %g", rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1, "client.rate_limit.burst_size",
		"must be >= 1 when rate limiting, got %d", rl.BurstSize)

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint",
			"must not be empty when exporter is otlp")
	}

	p.oneOf("sync.strategy", c.Sync.Strategy, strategies)
	p.check(c.Sync.RefreshInterval >= 0, "sync.refresh_interval",
		"must not be negative, got %s", c.Sync.RefreshInterval)

	p.check(c.View.ItemsPerPage >= 1, "view.items_per_page", "must be >= 1, got %d", c.View.ItemsPerPage)

	return errors.Join(p...)
}

type problems []error

func (p *problems) check(ok bool, key, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.check(slices.Contains(allowed, got), key, "must be one of %v, got %q", allowed, got)
}
