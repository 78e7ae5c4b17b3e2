package config

import "os"

// Environment variable names for provider endpoint configuration.
const (
	EnvRepliersBaseURL = "REPLIERS_BASE_URL"
	EnvRepliersRegion  = "REPLIERS_REGION"
	EnvRedfinBaseURL   = "REDFIN_BASE_URL"
	EnvZillowBaseURL   = "ZILLOW_BASE_URL"
	EnvMLSBaseURL      = "MLS_BASE_URL"
)

// ProviderConfig holds external data-provider endpoints. Base URLs are
// configurable so tests can point clients at local stub servers.
type ProviderConfig struct {
	RepliersBaseURL string `toml:"repliers_base_url"`
	RepliersRegion  string `toml:"repliers_region"`
	RedfinBaseURL   string `toml:"redfin_base_url"`
	ZillowBaseURL   string `toml:"zillow_base_url"`
	MLSBaseURL      string `toml:"mls_base_url"`
}

// Finalize applies defaults and loads environment overrides.
func (c *ProviderConfig) Finalize() {
	c.loadDefaults()
	c.loadEnv()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ProviderConfig) Merge(overlay *ProviderConfig) {
	if overlay.RepliersBaseURL != "" {
		c.RepliersBaseURL = overlay.RepliersBaseURL
	}
	if overlay.RepliersRegion != "" {
		c.RepliersRegion = overlay.RepliersRegion
	}
	if overlay.RedfinBaseURL != "" {
		c.RedfinBaseURL = overlay.RedfinBaseURL
	}
	if overlay.ZillowBaseURL != "" {
		c.ZillowBaseURL = overlay.ZillowBaseURL
	}
	if overlay.MLSBaseURL != "" {
		c.MLSBaseURL = overlay.MLSBaseURL
	}
}

func (c *ProviderConfig) loadDefaults() {
	if c.RepliersBaseURL == "" {
		c.RepliersBaseURL = "https://api.repliers.io/v1"
	}
	if c.RepliersRegion == "" {
		c.RepliersRegion = "us"
	}
	if c.RedfinBaseURL == "" {
		c.RedfinBaseURL = "https://api.redfin.com/v1"
	}
	if c.ZillowBaseURL == "" {
		c.ZillowBaseURL = "https://api.bridgedataoutput.com/api/v2"
	}
	if c.MLSBaseURL == "" {
		c.MLSBaseURL = "https://api.mlsgrid.com/v2"
	}
}

func (c *ProviderConfig) loadEnv() {
	if v := os.Getenv(EnvRepliersBaseURL); v != "" {
		c.RepliersBaseURL = v
	}
	if v := os.Getenv(EnvRepliersRegion); v != "" {
		c.RepliersRegion = v
	}
	if v := os.Getenv(EnvRedfinBaseURL); v != "" {
		c.RedfinBaseURL = v
	}
	if v := os.Getenv(EnvZillowBaseURL); v != "" {
		c.ZillowBaseURL = v
	}
	if v := os.Getenv(EnvMLSBaseURL); v != "" {
		c.MLSBaseURL = v
	}
}
