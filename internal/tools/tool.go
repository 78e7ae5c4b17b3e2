// Package tools defines the callable tools exposed to agents. Every tool
// declares a parameter schema that is validated before execution, so agents
// never reach an executor with malformed arguments.
package tools

import (
	"context"
	"fmt"
	"math"

	"propsight/internal/llm"
)

// Param types for tool schemas.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// ParamDef describes a single tool parameter.
type ParamDef struct {
	Type        string
	Description string
	Required    bool
	Default     any
	Enum        []string
}

// Tool is a named operation an agent may call. Execute receives arguments
// that have already passed schema validation with defaults applied.
type Tool struct {
	Name        string
	Description string
	Params      map[string]ParamDef
	Execute     func(ctx context.Context, args map[string]any) (any, error)
}

// Schema converts the tool definition to the provider tool schema format.
func (t *Tool) Schema() llm.ToolSchema {
	properties := make(map[string]any, len(t.Params))
	required := make([]string, 0)

	for name, def := range t.Params {
		prop := map[string]any{
			"type":        def.Type,
			"description": def.Description,
		}
		if len(def.Enum) > 0 {
			prop["enum"] = def.Enum
		}
		properties[name] = prop

		if def.Required {
			required = append(required, name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	return llm.ToolSchema{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: schema,
	}
}

// Call validates args against the parameter schema, applies defaults, and
// runs the executor.
func (t *Tool) Call(ctx context.Context, args map[string]any) (any, error) {
	validated, err := t.validate(args)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", t.Name, err)
	}
	return t.Execute(ctx, validated)
}

func (t *Tool) validate(args map[string]any) (map[string]any, error) {
	validated := make(map[string]any, len(t.Params))

	for name := range args {
		if _, ok := t.Params[name]; !ok {
			return nil, fmt.Errorf("unknown parameter %q", name)
		}
	}

	for name, def := range t.Params {
		value, present := args[name]
		if !present || value == nil {
			if def.Required && def.Default == nil {
				return nil, fmt.Errorf("missing required parameter %q", name)
			}
			if def.Default != nil {
				validated[name] = def.Default
			}
			continue
		}

		coerced, err := coerce(value, def)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		validated[name] = coerced
	}

	return validated, nil
}

// coerce checks a raw argument against its declared type. JSON decoding
// produces float64 for every number, so integers arrive as floats.
func coerce(value any, def ParamDef) (any, error) {
	switch def.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		if len(def.Enum) > 0 {
			for _, allowed := range def.Enum {
				if s == allowed {
					return s, nil
				}
			}
			return nil, fmt.Errorf("value %q not in %v", s, def.Enum)
		}
		return s, nil

	case TypeNumber:
		f, ok := toFloat(value)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", value)
		}
		return f, nil

	case TypeInteger:
		f, ok := toFloat(value)
		if !ok || f != math.Trunc(f) {
			return nil, fmt.Errorf("expected integer, got %v", value)
		}
		return f, nil

	case TypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", value)
		}
		return b, nil

	default:
		return nil, fmt.Errorf("unsupported parameter type %q", def.Type)
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Argument accessors used by executors after validation.

func argString(args map[string]any, key string) string {
	if s, ok := args[key].(string); ok {
		return s
	}
	return ""
}

func argFloat(args map[string]any, key string) float64 {
	if f, ok := toFloat(args[key]); ok {
		return f
	}
	return 0
}

func argInt(args map[string]any, key string) int {
	return int(argFloat(args, key))
}
