package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema describes the on-disk catalog document.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "topics", "questions"},
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^v[0-9]+(\.[0-9]+){0,2}$`,
		},
		"topics": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"id", "name"},
				"additionalProperties": false,
				"properties": map[string]any{
					"id":    map[string]any{"type": "integer"},
					"name":  map[string]any{"type": "string", "minLength": 1},
					"image": map[string]any{"type": "string"},
				},
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"id", "topic_id", "text", "options", "answer_index"},
				"additionalProperties": false,
				"properties": map[string]any{
					"id":       map[string]any{"type": "integer"},
					"topic_id": map[string]any{"type": "integer"},
					"text":     map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": OptionCount,
						"maxItems": OptionCount,
						"items":    map[string]any{"type": "string"},
					},
					"answer_index": map[string]any{
						"type":    "integer",
						"minimum": 0,
						"maximum": OptionCount - 1,
					},
				},
			},
		},
	},
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a plain JSON value, so round-trip the Go literal.
	defBytes, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://glassquiz-catalog.json"
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
})

// validateDocument checks a decoded document against the catalog schema.
// doc may come from any decoder; it is normalized through JSON first.
func validateDocument(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("normalize document: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
