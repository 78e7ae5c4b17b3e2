package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Credentials holds every external API key the service may use. It is
// assembled once at startup and passed explicitly to the components that
// need it; a missing key disables the corresponding provider rather than
// failing startup.
type Credentials struct {
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	MistralAPIKey   string `envconfig:"MISTRAL_API_KEY"`
	RepliersAPIKey  string `envconfig:"REPLIERS_API_KEY"`
	RedfinAPIKey    string `envconfig:"REDFIN_API_KEY"`
	ZillowAPIKey    string `envconfig:"ZILLOW_API_KEY"`
	MLSAPIKey       string `envconfig:"MLS_API_KEY"`
}

// LoadCredentials reads credentials from the environment.
func LoadCredentials() (*Credentials, error) {
	var creds Credentials
	if err := envconfig.Process("", &creds); err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	return &creds, nil
}
