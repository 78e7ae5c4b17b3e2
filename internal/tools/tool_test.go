package tools

import (
	"context"
	"strings"
	"testing"
)

func validationTool() *Tool {
	return &Tool{
		Name:        "probe",
		Description: "validation probe",
		Params: map[string]ParamDef{
			"query":  {Type: TypeString, Required: true},
			"limit":  {Type: TypeInteger, Default: 10.0},
			"ratio":  {Type: TypeNumber},
			"strict": {Type: TypeBoolean},
			"mode":   {Type: TypeString, Enum: []string{"fast", "full"}},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			return args, nil
		},
	}
}

func TestCallValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		wantErr string
	}{
		{
			"valid full set",
			map[string]any{"query": "austin", "limit": 5.0, "ratio": 1.5, "strict": true, "mode": "fast"},
			"",
		},
		{
			"unknown parameter",
			map[string]any{"query": "austin", "bogus": 1},
			"unknown parameter",
		},
		{
			"missing required",
			map[string]any{"limit": 5.0},
			"missing required parameter",
		},
		{
			"wrong type for string",
			map[string]any{"query": 12},
			`parameter "query"`,
		},
		{
			"fractional value for integer",
			map[string]any{"query": "austin", "limit": 2.5},
			`parameter "limit"`,
		},
		{
			"whole float accepted for integer",
			map[string]any{"query": "austin", "limit": 3.0},
			"",
		},
		{
			"enum violation",
			map[string]any{"query": "austin", "mode": "turbo"},
			"not in",
		},
		{
			"wrong type for boolean",
			map[string]any{"query": "austin", "strict": "yes"},
			`parameter "strict"`,
		},
	}

	tool := validationTool()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Call(context.Background(), tt.args)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestCallAppliesDefaults(t *testing.T) {
	tool := validationTool()

	result, err := tool.Call(context.Background(), map[string]any{"query": "austin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	args := result.(map[string]any)
	if got := args["limit"]; got != 10.0 {
		t.Errorf("limit default = %v, want 10.0", got)
	}
	if _, present := args["ratio"]; present {
		t.Error("optional parameter without default should be absent")
	}
}

func TestSchemaShape(t *testing.T) {
	schema := validationTool().Schema()

	if schema.Name != "probe" {
		t.Errorf("name = %q", schema.Name)
	}

	input := schema.InputSchema
	if input["type"] != "object" {
		t.Errorf("type = %v", input["type"])
	}

	properties := input["properties"].(map[string]any)
	if len(properties) != 5 {
		t.Errorf("properties = %d, want 5", len(properties))
	}

	required := input["required"].([]string)
	if len(required) != 1 || required[0] != "query" {
		t.Errorf("required = %v, want [query]", required)
	}

	mode := properties["mode"].(map[string]any)
	if enum := mode["enum"].([]string); len(enum) != 2 {
		t.Errorf("mode enum = %v", enum)
	}
}
