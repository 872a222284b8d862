// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Series   SeriesConfig   `koanf:"series"`
	Forecast ForecastConfig `koanf:"forecast"`
	Cache    CacheConfig    `koanf:"cache"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8080)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SeriesConfig controls the deterministic historical dataset. The same
// seed and year span always produce bit-identical observations, so
// changing any of these values changes every derived forecast.
//
// Environment Variables:
//   - SERIES_SEED: PRNG seed for series generation (default: 42)
//   - SERIES_START_YEAR: First observation year (default: 2018)
//   - SERIES_END_YEAR: Last observation year (default: 2026)
type SeriesConfig struct {
	Seed      int64 `koanf:"seed"`
	StartYear int   `koanf:"start_year"`
	EndYear   int   `koanf:"end_year"`
}

// ForecastConfig holds forecasting defaults and bounds.
//
// Environment Variables:
//   - FORECAST_DEFAULT_HORIZON: Years predicted when unspecified (default: 5)
//   - FORECAST_MAX_HORIZON: Upper bound on requested horizon (default: 30)
type ForecastConfig struct {
	DefaultHorizon int `koanf:"default_horizon"`
	MaxHorizon     int `koanf:"max_horizon"`
}

// CacheConfig holds result-cache sizing.
//
// Environment Variables:
//   - CACHE_CAPACITY: Max memoized results (default: 2048)
//   - CACHE_TTL: Entry time-to-live (default: 30m)
type CacheConfig struct {
	Capacity int           `koanf:"capacity"`
	TTL      time.Duration `koanf:"ttl"`
}

// APIConfig holds API-level policy settings.
//
// Environment Variables:
//   - API_RATE_LIMIT_REQUESTS: Requests per window per client (default: 300)
//   - API_RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - API_CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - API_MAX_COMPARE: Max locations in one comparison (default: 10)
type APIConfig struct {
	RateLimitReqs   int           `koanf:"rate_limit_requests"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	MaxCompare      int           `koanf:"max_compare"`
}

// LoggingConfig holds log output settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would produce a
// broken or nonsensical service.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}

	if c.Series.StartYear >= c.Series.EndYear {
		return fmt.Errorf("series.start_year (%d) must be before series.end_year (%d)",
			c.Series.StartYear, c.Series.EndYear)
	}
	// A quadratic fit needs at least three observations per location.
	if span := c.Series.EndYear - c.Series.StartYear + 1; span < 3 {
		return fmt.Errorf("series span must cover at least 3 years, got %d", span)
	}

	if c.Forecast.DefaultHorizon < 1 {
		return fmt.Errorf("forecast.default_horizon must be at least 1, got %d", c.Forecast.DefaultHorizon)
	}
	if c.Forecast.MaxHorizon < c.Forecast.DefaultHorizon {
		return fmt.Errorf("forecast.max_horizon (%d) must be >= forecast.default_horizon (%d)",
			c.Forecast.MaxHorizon, c.Forecast.DefaultHorizon)
	}

	if c.Cache.Capacity < 1 {
		return fmt.Errorf("cache.capacity must be at least 1, got %d", c.Cache.Capacity)
	}

	if c.API.RateLimitReqs < 1 {
		return fmt.Errorf("api.rate_limit_requests must be at least 1, got %d", c.API.RateLimitReqs)
	}
	if c.API.MaxCompare < 2 {
		return fmt.Errorf("api.max_compare must be at least 2, got %d", c.API.MaxCompare)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}
