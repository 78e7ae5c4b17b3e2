package llm

import (
	"fmt"
	"log/slog"

	"propsight/internal/config"
)

// Registry holds one client per provider with a configured credential.
// Providers without credentials are absent and resolve to
// ErrProviderUnavailable.
type Registry struct {
	clients map[ProviderID]Client
}

// NewRegistry builds a Registry from the configured credentials.
func NewRegistry(creds *config.Credentials, logger *slog.Logger) *Registry {
	clients := make(map[ProviderID]Client)

	if creds.OpenAIAPIKey != "" {
		clients[ProviderOpenAI] = NewOpenAI(creds.OpenAIAPIKey)
	}
	if creds.AnthropicAPIKey != "" {
		clients[ProviderAnthropic] = NewAnthropic(creds.AnthropicAPIKey)
	}
	if creds.MistralAPIKey != "" {
		clients[ProviderMistral] = NewMistral(creds.MistralAPIKey)
	}

	logger.Info("model providers configured", "available", len(clients))
	return &Registry{clients: clients}
}

// NewRegistryFromClients builds a Registry over preconstructed clients.
func NewRegistryFromClients(clients map[ProviderID]Client) *Registry {
	return &Registry{clients: clients}
}

// Resolve returns the client for a provider, or ErrProviderUnavailable when
// no credential was configured for it.
func (r *Registry) Resolve(provider ProviderID) (Client, error) {
	client, ok := r.clients[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, provider)
	}
	return client, nil
}

// Available lists the providers with configured clients.
func (r *Registry) Available() []ProviderID {
	providers := make([]ProviderID, 0, len(r.clients))
	for id := range r.clients {
		providers = append(providers, id)
	}
	return providers
}
