package config

import (
	"testing"
	"time"
)

func minimalConfig() *Config {
	cfg := &Config{}
	cfg.Database.Name = "propsight"
	cfg.Database.User = "postgres"
	return cfg
}

func TestFinalizeAppliesDefaults(t *testing.T) {
	for _, key := range []string{
		EnvServiceShutdownTimeout, EnvServerHost, EnvServerPort,
		EnvServerMaxBodySize, EnvCacheTTL, EnvFeatureEnableCaching, EnvFeatureUseRealAPIs,
	} {
		t.Setenv(key, "")
	}

	cfg := minimalConfig()
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if got := cfg.ShutdownTimeoutDuration(); got != 30*time.Second {
		t.Errorf("shutdown timeout = %v, want 30s", got)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("addr = %q", got)
	}
	if got := cfg.Server.ReadTimeoutDuration(); got != 15*time.Second {
		t.Errorf("read timeout = %v", got)
	}
	if got := cfg.Server.MaxBodyBytes(); got != 1000000 {
		t.Errorf("max body bytes = %d", got)
	}
	if got := cfg.Database.Port; got != 5432 {
		t.Errorf("database port = %d", got)
	}
	if got := cfg.Cache.TTLDuration(); got != 15*time.Minute {
		t.Errorf("cache ttl = %v", got)
	}
	if !cfg.Features.CachingEnabled() {
		t.Error("caching should default to enabled")
	}
	if cfg.Features.UseRealAPIs {
		t.Error("real provider calls should default to disabled")
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv(EnvServiceShutdownTimeout, "45s")
	t.Setenv(EnvServerPort, "9090")
	t.Setenv(EnvCacheTTL, "1h")

	cfg := minimalConfig()
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if got := cfg.ShutdownTimeoutDuration(); got != 45*time.Second {
		t.Errorf("shutdown timeout = %v, want 45s", got)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if got := cfg.Cache.TTLDuration(); got != time.Hour {
		t.Errorf("cache ttl = %v, want 1h", got)
	}
}

func TestFinalizeRejectsBadDurations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"shutdown timeout", func(cfg *Config) { cfg.ShutdownTimeout = "soon" }},
		{"read timeout", func(cfg *Config) { cfg.Server.ReadTimeout = "fast" }},
		{"cache ttl", func(cfg *Config) { cfg.Cache.TTL = "forever" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.mutate(cfg)
			if err := cfg.Finalize(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestMergeOverlayPrecedence(t *testing.T) {
	base := minimalConfig()
	base.Server.Port = 8080
	base.Server.Host = "0.0.0.0"

	overlay := &Config{}
	overlay.Server.Port = 9000
	overlay.Database.Name = "propsight_test"

	base.Merge(overlay)

	if base.Server.Port != 9000 {
		t.Errorf("port = %d, overlay should win", base.Server.Port)
	}
	if base.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, zero overlay value should not clobber", base.Server.Host)
	}
	if base.Database.Name != "propsight_test" {
		t.Errorf("database name = %q", base.Database.Name)
	}
}
