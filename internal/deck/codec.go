package deck

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// deckFileSchema validates deck JSON files before any rows are written.
// The shape matches what Export produces.
var deckFileSchema = map[string]any{
	"type":     "object",
	"required": []any{"title", "cards"},
	"properties": map[string]any{
		"id":          map[string]any{"type": "string"},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"cards": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"prompt", "answer"},
				"properties": map[string]any{
					"id":        map[string]any{"type": "string"},
					"prompt":    map[string]any{"type": "string", "minLength": 1},
					"answer":    map[string]any{"type": "string", "minLength": 1},
					"keypoints": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"archived":  map[string]any{"type": "boolean"},
					"alternativeAnswers": map[string]any{
						"type": "array", "items": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func fileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		b, err := json.Marshal(deckFileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal deck schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://deck-file.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://deck-file.json")
	})
	return compiledSchema, compileErr
}

// Decode validates raw deck JSON against the file schema and unmarshals it.
func Decode(data []byte) (*Deck, error) {
	schema, err := fileSchema()
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("deck file validation failed: %w", err)
	}

	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal deck: %w", err)
	}
	return &d, nil
}

// Encode serializes a deck to the import/export JSON shape.
func Encode(d *Deck) ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal deck: %w", err)
	}
	return b, nil
}
