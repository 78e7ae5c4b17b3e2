package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"github.com/sourcegraph/conc"

	"propsight/internal/agentlogs"
	"propsight/internal/listings"
	"propsight/internal/llm"
	"propsight/internal/tools"
)

// logDetailLimit bounds how much prompt and response text an audit record
// carries.
const logDetailLimit = 500

// fallbackAnalysis is returned by Run when the agent's provider is
// unavailable or the model call fails. Callers receive it as a normal
// result so the surface stays usable without any model credentials.
const fallbackAnalysis = `# AI Analysis Currently Unavailable

We're sorry, but the AI analysis is currently unavailable. This could be due to:

- Missing API keys
- Service disruption
- Configuration issues

Please try again later or contact support if the issue persists.

In the meantime, here are some general insights about real estate investment:

## General Investment Principles

1. Location is crucial - look for areas with strong economic indicators
2. Cash flow is king for rental properties
3. Consider long-term appreciation potential
4. Diversify your portfolio across different property types and locations
5. Always maintain adequate reserves for unexpected expenses

These general principles apply to most real estate investments, but for personalized advice, please try again when the AI service is available.`

// Fallback is the structured-output substitute returned when a model call
// fails.
type Fallback struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func serviceFallback() *Fallback {
	return &Fallback{
		Error:   "AI service unavailable",
		Message: "The AI service is currently unavailable. Please try again later.",
	}
}

// StructuredResult is the outcome of RunStructured: either the model's JSON
// object or a fallback when generation failed.
type StructuredResult struct {
	Object   json.RawMessage
	Fallback *Fallback
}

// MarshalJSON renders the model object directly, or the fallback payload
// when generation failed.
func (r StructuredResult) MarshalJSON() ([]byte, error) {
	if r.Fallback != nil {
		return json.Marshal(r.Fallback)
	}
	return r.Object, nil
}

// Runner executes agents: it resolves the provider client, drives the tool
// call loop, and records every invocation in the audit log.
type Runner struct {
	agents   *Registry
	models   *llm.Registry
	tools    *tools.Registry
	logs     agentlogs.System
	market   tools.Aggregator
	listings listings.System
	logger   *slog.Logger
}

// Options configures a Runner.
type Options struct {
	Agents   *Registry
	Models   *llm.Registry
	Tools    *tools.Registry
	Logs     agentlogs.System
	Market   tools.Aggregator
	Listings listings.System
	Logger   *slog.Logger
}

// NewRunner creates a Runner. When opts.Agents is nil the standard catalog
// is used.
func NewRunner(opts Options) *Runner {
	registry := opts.Agents
	if registry == nil {
		registry = NewRegistry()
	}
	return &Runner{
		agents:   registry,
		models:   opts.Models,
		tools:    opts.Tools,
		logs:     opts.Logs,
		market:   opts.Market,
		listings: opts.Listings,
		logger:   opts.Logger.With("system", "agents"),
	}
}

// Agents exposes the runner's agent catalog.
func (r *Runner) Agents() *Registry {
	return r.agents
}

// Run invokes an agent with a free-form prompt and returns its text
// response. An error is returned only for an unknown agent key; model and
// provider failures degrade to fallback guidance so callers always get a
// usable response.
func (r *Runner) Run(ctx context.Context, key, prompt string) (string, error) {
	def, err := r.agents.Lookup(key)
	if err != nil {
		return "", err
	}

	text, err := r.generate(ctx, def, prompt)
	if err != nil {
		r.logger.Warn("agent run failed", "agent", key, "error", err)
		r.logAttempt(ctx, def, agentlogs.ActionGenerate, map[string]any{
			"prompt": prompt,
			"error":  err.Error(),
		}, err)
		return fallbackAnalysis, nil
	}

	r.logAttempt(ctx, def, agentlogs.ActionGenerate, map[string]any{
		"prompt":   prompt,
		"response": truncated(text),
	}, nil)

	return text, nil
}

// RunStructured invokes an agent and asks for a JSON object matching the
// given schema. Generation failures produce a StructuredResult carrying a
// fallback payload rather than an error.
func (r *Runner) RunStructured(ctx context.Context, key, prompt string, schema json.RawMessage) (*StructuredResult, error) {
	def, err := r.agents.Lookup(key)
	if err != nil {
		return nil, err
	}

	object, err := r.generateObject(ctx, def, prompt, schema)
	if err != nil {
		r.logger.Warn("structured agent run failed", "agent", key, "error", err)
		r.logAttempt(ctx, def, agentlogs.ActionGenerateStructured, map[string]any{
			"prompt": prompt,
			"error":  err.Error(),
		}, err)
		return &StructuredResult{Fallback: serviceFallback()}, nil
	}

	r.logAttempt(ctx, def, agentlogs.ActionGenerateStructured, map[string]any{
		"prompt":   prompt,
		"response": truncated(string(object)),
	}, nil)

	return &StructuredResult{Object: object}, nil
}

// RunNetwork executes several agents concurrently, one prompt per agent
// key. Each result slot is independent: a failing agent yields an error
// string in its slot without affecting the others.
func (r *Runner) RunNetwork(ctx context.Context, prompts map[string]string) map[string]string {
	var (
		mu      sync.Mutex
		results = make(map[string]string, len(prompts))
		wg      conc.WaitGroup
	)

	for key, prompt := range prompts {
		wg.Go(func() {
			text, err := r.Run(ctx, key, prompt)
			if err != nil {
				text = "Error: " + err.Error()
			}
			mu.Lock()
			results[key] = text
			mu.Unlock()
		})
	}

	wg.Wait()
	return results
}

// generate drives the model and tool loop until the model stops requesting
// tools or the agent's step budget runs out.
func (r *Runner) generate(ctx context.Context, def *Definition, prompt string) (string, error) {
	client, err := r.models.Resolve(def.Provider)
	if err != nil {
		return "", err
	}

	schemas := r.tools.Schemas(def.Tools)
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: def.SystemPrompt},
		{Role: llm.RoleUser, Content: prompt},
	}

	maxSteps := def.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 3
	}

	for step := 0; step < maxSteps; step++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		resp, err := client.Generate(ctx, messages, schemas)
		if err != nil {
			return "", fmt.Errorf("agent %s: %w", def.Key, err)
		}

		if len(resp.ToolCalls) == 0 {
			return resp.Content, nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    r.executeTool(ctx, call),
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("agent %s: %w", def.Key, ErrMaxStepsExceeded)
}

// executeTool runs one tool call and renders its result for the model.
// Tool failures become error strings the model can react to.
func (r *Runner) executeTool(ctx context.Context, call llm.ToolCall) string {
	tool, err := r.tools.Resolve(call.Name)
	if err != nil {
		return "Error: " + err.Error()
	}

	result, err := tool.Call(ctx, call.Arguments)
	if err != nil {
		return "Error: " + err.Error()
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return "Error: " + err.Error()
	}
	return string(encoded)
}

// generateObject runs the agent with an instruction to emit a single JSON
// object matching the schema, then extracts and validates that object.
func (r *Runner) generateObject(ctx context.Context, def *Definition, prompt string, schema json.RawMessage) (json.RawMessage, error) {
	structured := *def
	structured.SystemPrompt = def.SystemPrompt + "\n\nRespond with a single JSON object matching this JSON schema and nothing else:\n" + string(schema)

	text, err := r.generate(ctx, &structured, prompt)
	if err != nil {
		return nil, err
	}

	object, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", def.Key, err)
	}
	return object, nil
}

// extractJSON pulls the outermost JSON object out of a model response,
// tolerating surrounding prose and markdown fences.
func extractJSON(text string) (json.RawMessage, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("response contains no JSON object")
	}

	candidate := text[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, fmt.Errorf("response contains malformed JSON")
	}
	return json.RawMessage(candidate), nil
}

// logAttempt records an invocation in the audit log. Failures to write the
// record are logged and swallowed.
func (r *Runner) logAttempt(ctx context.Context, def *Definition, action agentlogs.Action, details map[string]any, runErr error) {
	encoded, err := json.Marshal(details)
	if err != nil {
		r.logger.Warn("encode agent log details", "agent", def.Key, "error", err)
		return
	}

	entry := agentlogs.Entry{
		ID:         ulid.Make().String(),
		AgentName:  def.Name,
		ActionType: action,
		Details:    encoded,
		Success:    runErr == nil,
	}
	if runErr != nil {
		msg := runErr.Error()
		entry.ErrorMessage = &msg
	}

	if err := r.logs.Insert(ctx, entry); err != nil {
		r.logger.Warn("insert agent log", "agent", def.Key, "error", err)
	}
}

// truncated caps audit detail text and marks it as elided. The cut backs up
// to a rune boundary so a multi-byte character is never split.
func truncated(s string) string {
	if len(s) > logDetailLimit {
		cut := logDetailLimit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s + "..."
}
