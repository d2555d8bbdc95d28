package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// CandidateJSONSchema describes the object the resume prompt asks for.
// Nothing is required: the check is advisory and every field is optional downstream.
func CandidateJSONSchema() map[string]any {
	entry := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "object"},
		},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":            map[string]any{"type": "string"},
			"email":           map[string]any{"type": "string"},
			"phone":           map[string]any{"type": []any{"string", "number"}},
			"skills":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"education":       map[string]any{"type": "array", "items": entry},
			"work_experience": map[string]any{"type": "array", "items": entry},
		},
	}
}

// TaskPlanJSONSchema describes the list the task-plan prompt asks for.
func TaskPlanJSONSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"task_name":   map[string]any{"type": "string", "minLength": 1},
				"description": map[string]any{"type": "string"},
				"due_in_days": map[string]any{"type": "integer", "minimum": 0},
				"assigned_to": map[string]any{"type": "string"},
				"category":    map[string]any{"type": "string"},
			},
			"required": []string{"task_name", "description", "due_in_days", "assigned_to", "category"},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// SchemaCheck runs ValidateJSONAgainstSchema and only logs the outcome.
// It reports whether the document conformed.
func SchemaCheck(logger *slog.Logger, name string, schemaMap map[string]any, data []byte) bool {
	if logger == nil {
		logger = slog.Default()
	}
	if err := ValidateJSONAgainstSchema(schemaMap, data); err != nil {
		logger.Warn("llm.extract.schema_mismatch", "schema", name, "error", err)
		return false
	}
	logger.Debug("llm.extract.schema_ok", "schema", name)
	return true
}
