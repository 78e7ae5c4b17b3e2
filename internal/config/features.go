package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names for feature flags and cache configuration.
const (
	EnvFeatureUseRealAPIs   = "USE_REAL_APIS"
	EnvFeatureEnableCaching = "ENABLE_CACHING"
	EnvCacheTTL             = "CACHE_TTL"
)

// FeatureConfig holds global feature flags. UseRealAPIs gates every external
// data-provider call; EnableCaching gates the aggregation cache.
type FeatureConfig struct {
	UseRealAPIs   bool  `toml:"use_real_apis"`
	EnableCaching *bool `toml:"enable_caching"`
}

// CachingEnabled reports whether the aggregation cache is active.
// Caching defaults to on when unset.
func (c *FeatureConfig) CachingEnabled() bool {
	return c.EnableCaching == nil || *c.EnableCaching
}

// Finalize loads environment overrides.
func (c *FeatureConfig) Finalize() {
	if v := os.Getenv(EnvFeatureUseRealAPIs); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UseRealAPIs = b
		}
	}
	if v := os.Getenv(EnvFeatureEnableCaching); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.EnableCaching = &b
		}
	}
}

// Merge applies values from overlay configuration.
func (c *FeatureConfig) Merge(overlay *FeatureConfig) {
	if overlay.UseRealAPIs {
		c.UseRealAPIs = true
	}
	if overlay.EnableCaching != nil {
		c.EnableCaching = overlay.EnableCaching
	}
}

// CacheConfig holds aggregation cache settings.
type CacheConfig struct {
	TTL string `toml:"ttl"`
}

// TTLDuration parses and returns the cache TTL as a time.Duration.
func (c *CacheConfig) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the cache configuration.
func (c *CacheConfig) Finalize() error {
	if c.TTL == "" {
		c.TTL = "15m"
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		c.TTL = v
	}
	if _, err := time.ParseDuration(c.TTL); err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *CacheConfig) Merge(overlay *CacheConfig) {
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
}
