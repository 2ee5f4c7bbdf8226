package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/obrafacil/takeoff/annotation"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvConcurrency, EnvUnitPreference, EnvLogLevel, EnvTimeout} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Concurrency != runtime.GOMAXPROCS(0) {
		t.Errorf("concurrency = %d", cfg.Concurrency)
	}
	if cfg.UnitPreference != annotation.PreferMeters {
		t.Errorf("unit preference = %v", cfg.UnitPreference)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	if cfg.Timeout != 0 {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConcurrency, "3")
	t.Setenv(EnvUnitPreference, "cm")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvTimeout, "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Concurrency != 3 || cfg.UnitPreference != annotation.PreferCentimeters ||
		cfg.LogLevel != logrus.DebugLevel || cfg.Timeout != 90*time.Second {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvConcurrency, "0"},
		{EnvConcurrency, "many"},
		{EnvUnitPreference, "polegadas"},
		{EnvLogLevel, "loud"},
		{EnvTimeout, "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
