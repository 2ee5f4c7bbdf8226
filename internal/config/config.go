// Package config reads the command's settings from the environment.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/obrafacil/takeoff/annotation"
)

// Environment variables.
const (
	EnvConcurrency    = "TAKEOFF_CONCURRENCY"
	EnvUnitPreference = "TAKEOFF_UNIT_PREFERENCE"
	EnvLogLevel       = "TAKEOFF_LOG_LEVEL"
	EnvTimeout        = "TAKEOFF_TIMEOUT"
)

// Config holds the command configuration.
type Config struct {
	Concurrency    int
	UnitPreference annotation.UnitPreference
	LogLevel       logrus.Level
	Timeout        time.Duration // 0 means no limit
}

// Load reads the configuration from the environment. Unset variables take
// their defaults; malformed ones are errors.
func Load() (*Config, error) {
	concurrency, err := getEnvAsIntOrDefault(EnvConcurrency, runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvConcurrency, err)
	}
	cfg := &Config{Concurrency: concurrency}
	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", EnvConcurrency, cfg.Concurrency)
	}

	pref, err := annotation.ParseUnitPreference(getEnvOrDefault(EnvUnitPreference, ""))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvUnitPreference, err)
	}
	cfg.UnitPreference = pref

	level, err := logrus.ParseLevel(getEnvOrDefault(EnvLogLevel, "info"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	cfg.LogLevel = level

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// getEnvOrDefault gets environment variable or returns default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault gets environment variable as int or returns default
func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	return strconv.Atoi(valueStr)
}
