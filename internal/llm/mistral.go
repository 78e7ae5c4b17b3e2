package llm

// Default Mistral configuration values.
const (
	DefaultMistralModel   = "mistral-large-latest"
	DefaultMistralBaseURL = "https://api.mistral.ai"
)

// NewMistral creates a chat completion client for the Mistral API, which is
// wire-compatible with OpenAI chat completions.
func NewMistral(apiKey string, opts ...OpenAIOption) *OpenAIClient {
	base := []OpenAIOption{
		WithOpenAIBaseURL(DefaultMistralBaseURL),
		WithOpenAIModel(DefaultMistralModel),
	}
	return NewOpenAI(apiKey, append(base, opts...)...)
}
