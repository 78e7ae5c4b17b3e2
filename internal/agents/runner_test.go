package agents_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"

	"propsight/internal/agentlogs"
	"propsight/internal/agents"
	"propsight/internal/listings"
	"propsight/internal/llm"
	"propsight/internal/realestate"
	"propsight/internal/saved"
	"propsight/internal/tools"
)

type stubClient struct {
	mu        sync.Mutex
	responses []*llm.Response
	err       error
	calls     [][]llm.Message
}

func (s *stubClient) Generate(ctx context.Context, messages []llm.Message, schemas []llm.ToolSchema) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, messages)
	if s.err != nil {
		return nil, s.err
	}

	i := len(s.calls) - 1
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return s.responses[i], nil
}

type recordingLogStore struct {
	entries []agentlogs.Entry
}

func (f *recordingLogStore) Insert(ctx context.Context, entry agentlogs.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *recordingLogStore) Recent(ctx context.Context, agentName string, limit int) ([]agentlogs.Entry, error) {
	return f.entries, nil
}

type stubAggregator struct{}

func (stubAggregator) SearchProperties(ctx context.Context, params realestate.SearchParams) ([]realestate.Property, error) {
	return nil, nil
}

func (stubAggregator) MarketTrends(ctx context.Context, params realestate.TrendParams) ([]realestate.MarketTrend, error) {
	return nil, nil
}

func (stubAggregator) PropertyValuation(ctx context.Context, propertyID string) (*realestate.Valuation, error) {
	return &realestate.Valuation{PropertyID: propertyID}, nil
}

func (stubAggregator) NeighborhoodInfo(ctx context.Context, params realestate.NeighborhoodParams) (*realestate.NeighborhoodInfo, error) {
	return &realestate.NeighborhoodInfo{}, nil
}

func (stubAggregator) MarketInsights(ctx context.Context, params realestate.InsightParams) (*realestate.MarketInsight, error) {
	return &realestate.MarketInsight{Region: params.Region}, nil
}

func (stubAggregator) PropertyAnalysis(ctx context.Context, propertyID string) (*realestate.PropertyAnalysis, error) {
	return &realestate.PropertyAnalysis{PropertyID: propertyID}, nil
}

func (stubAggregator) OpportunityZones(ctx context.Context, params realestate.InsightParams) ([]realestate.OpportunityZone, error) {
	return []realestate.OpportunityZone{
		{Region: "Downtown"}, {Region: "Westside"}, {Region: "Eastside"}, {Region: "Northgate"},
	}, nil
}

type stubListingStore struct{}

func (stubListingStore) Search(ctx context.Context, filters listings.Filters) ([]listings.Listing, error) {
	return nil, nil
}

func (stubListingStore) Find(ctx context.Context, id uuid.UUID) (*listings.Listing, error) {
	return nil, listings.ErrNotFound
}

func (stubListingStore) Deals(ctx context.Context, minScore *int, limit int) ([]listings.Listing, error) {
	return nil, nil
}

type stubSavedStore struct{}

func (stubSavedStore) Save(ctx context.Context, userID, listingID uuid.UUID) (*saved.SavedListing, error) {
	return nil, saved.ErrNotFound
}

func (stubSavedStore) Unsave(ctx context.Context, userID, listingID uuid.UUID) error {
	return saved.ErrNotFound
}

func (stubSavedStore) List(ctx context.Context, userID uuid.UUID, limit int) ([]saved.SavedListing, error) {
	return nil, nil
}

func newTestRunner(clients map[llm.ProviderID]llm.Client, logs *recordingLogStore) *agents.Runner {
	agg := stubAggregator{}
	return agents.NewRunner(agents.Options{
		Models:   llm.NewRegistryFromClients(clients),
		Tools:    tools.NewRegistry(agg, stubListingStore{}, stubSavedStore{}),
		Logs:     logs,
		Market:   agg,
		Listings: stubListingStore{},
		Logger:   slog.New(slog.DiscardHandler),
	})
}

func TestRunUnknownAgent(t *testing.T) {
	runner := newTestRunner(nil, &recordingLogStore{})

	_, err := runner.Run(context.Background(), "stock-picker", "pick stocks")
	if !errors.Is(err, agents.ErrAgentNotFound) {
		t.Errorf("error = %v, want ErrAgentNotFound", err)
	}
}

func TestRunProviderUnavailableFallsBack(t *testing.T) {
	logs := &recordingLogStore{}
	runner := newTestRunner(map[llm.ProviderID]llm.Client{}, logs)

	text, err := runner.Run(context.Background(), "market-analyzer", "analyze Austin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "AI Analysis Currently Unavailable") {
		t.Errorf("expected fallback guidance, got %q", text)
	}

	if len(logs.entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(logs.entries))
	}
	entry := logs.entries[0]
	if entry.Success {
		t.Error("entry should record failure")
	}
	if entry.AgentName != "Market Analyzer" {
		t.Errorf("agent name = %q", entry.AgentName)
	}
	if entry.ErrorMessage == nil || !strings.Contains(*entry.ErrorMessage, "provider unavailable") {
		t.Errorf("error message = %v", entry.ErrorMessage)
	}
	if entry.ID == "" {
		t.Error("entry should carry an invocation id")
	}
}

func TestRunSuccess(t *testing.T) {
	logs := &recordingLogStore{}
	client := &stubClient{responses: []*llm.Response{
		{Content: "Austin looks strong.", StopReason: llm.StopReasonEnd},
	}}
	runner := newTestRunner(map[llm.ProviderID]llm.Client{llm.ProviderOpenAI: client}, logs)

	text, err := runner.Run(context.Background(), "market-analyzer", "analyze Austin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Austin looks strong." {
		t.Errorf("text = %q", text)
	}

	if len(client.calls) != 1 {
		t.Fatalf("model calls = %d, want 1", len(client.calls))
	}
	first := client.calls[0]
	if first[0].Role != llm.RoleSystem || !strings.Contains(first[0].Content, "market analyzer") {
		t.Errorf("first message should be the agent system prompt, got %+v", first[0])
	}

	if len(logs.entries) != 1 || !logs.entries[0].Success {
		t.Fatalf("expected one successful log entry, got %+v", logs.entries)
	}

	var details map[string]string
	if err := json.Unmarshal(logs.entries[0].Details, &details); err != nil {
		t.Fatalf("details: %v", err)
	}
	if !strings.HasSuffix(details["response"], "...") {
		t.Errorf("response detail should be marked elided, got %q", details["response"])
	}
}

func TestRunLogTruncationKeepsRunesIntact(t *testing.T) {
	logs := &recordingLogStore{}
	client := &stubClient{responses: []*llm.Response{
		{Content: strings.Repeat("a", 499) + "éxito total", StopReason: llm.StopReasonEnd},
	}}
	runner := newTestRunner(map[llm.ProviderID]llm.Client{llm.ProviderOpenAI: client}, logs)

	if _, err := runner.Run(context.Background(), "market-analyzer", "analyze"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var details map[string]string
	if err := json.Unmarshal(logs.entries[0].Details, &details); err != nil {
		t.Fatalf("details: %v", err)
	}
	response := details["response"]
	if !utf8.ValidString(response) {
		t.Errorf("truncation split a rune: %q", response)
	}
	if !strings.HasSuffix(response, "...") {
		t.Errorf("response detail should be marked elided, got %q", response)
	}
	if len(response) > 500+len("...") {
		t.Errorf("response detail too long: %d bytes", len(response))
	}
}

func TestRunToolLoop(t *testing.T) {
	client := &stubClient{responses: []*llm.Response{
		{
			ToolCalls: []llm.ToolCall{{
				ID:   "call-1",
				Name: "investment-calculator",
				Arguments: map[string]any{
					"property_price":   300000.0,
					"down_payment":     60000.0,
					"interest_rate":    6.0,
					"loan_term":        30.0,
					"calculation_type": "mortgage",
				},
			}},
			StopReason: llm.StopReasonToolUse,
		},
		{Content: "The monthly payment fits the budget.", StopReason: llm.StopReasonEnd},
	}}
	runner := newTestRunner(map[llm.ProviderID]llm.Client{llm.ProviderOpenAI: client}, &recordingLogStore{})

	text, err := runner.Run(context.Background(), "investment-advisor", "evaluate this deal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "The monthly payment fits the budget." {
		t.Errorf("text = %q", text)
	}

	if len(client.calls) != 2 {
		t.Fatalf("model calls = %d, want 2", len(client.calls))
	}

	second := client.calls[1]
	last := second[len(second)-1]
	if last.Role != llm.RoleTool || last.ToolCallID != "call-1" {
		t.Errorf("tool result message = %+v", last)
	}
	if !strings.Contains(last.Content, "monthly_payment") {
		t.Errorf("tool result should carry calculator output, got %q", last.Content)
	}

	assistant := second[len(second)-2]
	if assistant.Role != llm.RoleAssistant {
		t.Fatalf("tool result must follow an assistant turn, got role %q", assistant.Role)
	}
	if len(assistant.ToolCalls) != 1 || assistant.ToolCalls[0].ID != "call-1" {
		t.Errorf("assistant turn must echo its tool calls, got %+v", assistant.ToolCalls)
	}
	if assistant.ToolCalls[0].Name != "investment-calculator" {
		t.Errorf("tool call name = %q", assistant.ToolCalls[0].Name)
	}
}

func TestRunToolErrorsSurfaceToModel(t *testing.T) {
	client := &stubClient{responses: []*llm.Response{
		{
			ToolCalls:  []llm.ToolCall{{ID: "call-1", Name: "no-such-tool"}},
			StopReason: llm.StopReasonToolUse,
		},
		{Content: "done", StopReason: llm.StopReasonEnd},
	}}
	runner := newTestRunner(map[llm.ProviderID]llm.Client{llm.ProviderOpenAI: client}, &recordingLogStore{})

	if _, err := runner.Run(context.Background(), "market-analyzer", "analyze"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := client.calls[1]
	last := second[len(second)-1]
	if !strings.HasPrefix(last.Content, "Error: ") {
		t.Errorf("tool failure should be an error string, got %q", last.Content)
	}
}

func TestRunStructured(t *testing.T) {
	schema := json.RawMessage(`{"type":"object","properties":{"score":{"type":"number"}}}`)

	t.Run("extracts fenced object", func(t *testing.T) {
		client := &stubClient{responses: []*llm.Response{
			{Content: "```json\n{\"score\": 87}\n```", StopReason: llm.StopReasonEnd},
		}}
		runner := newTestRunner(map[llm.ProviderID]llm.Client{llm.ProviderOpenAI: client}, &recordingLogStore{})

		result, err := runner.RunStructured(context.Background(), "market-analyzer", "score Austin", schema)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Fallback != nil {
			t.Fatal("expected model object, got fallback")
		}

		var payload struct {
			Score float64 `json:"score"`
		}
		if err := json.Unmarshal(result.Object, &payload); err != nil {
			t.Fatalf("object: %v", err)
		}
		if payload.Score != 87 {
			t.Errorf("score = %v", payload.Score)
		}
	})

	t.Run("non-JSON response falls back", func(t *testing.T) {
		logs := &recordingLogStore{}
		client := &stubClient{responses: []*llm.Response{
			{Content: "I cannot answer in JSON.", StopReason: llm.StopReasonEnd},
		}}
		runner := newTestRunner(map[llm.ProviderID]llm.Client{llm.ProviderOpenAI: client}, logs)

		result, err := runner.RunStructured(context.Background(), "market-analyzer", "score Austin", schema)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Fallback == nil {
			t.Fatal("expected fallback")
		}
		if result.Fallback.Error != "AI service unavailable" {
			t.Errorf("fallback error = %q", result.Fallback.Error)
		}
		if len(logs.entries) != 1 || logs.entries[0].Success {
			t.Errorf("expected one failed log entry, got %+v", logs.entries)
		}
	})
}

func TestRunNetworkSlotsAreIndependent(t *testing.T) {
	client := &stubClient{responses: []*llm.Response{
		{Content: "analysis complete", StopReason: llm.StopReasonEnd},
	}}
	runner := newTestRunner(map[llm.ProviderID]llm.Client{
		llm.ProviderOpenAI:    client,
		llm.ProviderAnthropic: client,
	}, &recordingLogStore{})

	results := runner.RunNetwork(context.Background(), map[string]string{
		"market-analyzer": "analyze Austin",
		"deal-finder":     "find deals",
		"stock-picker":    "pick stocks",
	})

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if results["market-analyzer"] != "analysis complete" {
		t.Errorf("market-analyzer = %q", results["market-analyzer"])
	}
	if results["deal-finder"] != "analysis complete" {
		t.Errorf("deal-finder = %q", results["deal-finder"])
	}
	if !strings.HasPrefix(results["stock-picker"], "Error: ") {
		t.Errorf("unknown agent slot = %q", results["stock-picker"])
	}
}

func TestGenerateInvestmentStrategyFallback(t *testing.T) {
	runner := newTestRunner(map[llm.ProviderID]llm.Client{}, &recordingLogStore{})

	result, err := runner.GenerateInvestmentStrategy(context.Background(), agents.StrategyParams{
		Region: "Austin",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.OpportunityZones) != 3 {
		t.Errorf("zones = %d, want top 3", len(result.OpportunityZones))
	}
	if !strings.Contains(result.InvestmentStrategy, "AI Analysis Currently Unavailable") {
		t.Errorf("strategy should carry fallback guidance, got %q", result.InvestmentStrategy)
	}
}
