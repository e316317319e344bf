package blocks

import (
	"errors"
	"testing"
)

func TestValidateAttributesWithFieldList(t *testing.T) {
	schema := map[string]any{
		"fields": []any{
			map[string]any{"name": "title", "type": "string", "required": true},
			map[string]any{"name": "level", "type": "integer"},
		},
	}

	if err := ValidateAttributes(schema, map[string]any{"title": "Hello", "level": 2}); err != nil {
		t.Fatalf("expected attributes to validate, got %v", err)
	}

	err := ValidateAttributes(schema, map[string]any{"level": 2})
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	issues := Issues(err)
	if len(issues) == 0 {
		t.Fatal("expected at least one validation issue")
	}
}

func TestValidateAttributesWithJSONSchema(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
		},
		"required": []any{"title"},
	}

	if err := ValidateAttributes(schema, map[string]any{"title": "Hello"}); err != nil {
		t.Fatalf("expected attributes to validate, got %v", err)
	}
	if err := ValidateAttributes(schema, map[string]any{"title": 7}); err == nil {
		t.Fatal("expected type mismatch to fail")
	}
}

func TestValidateAttributesNilSchemaAcceptsEverything(t *testing.T) {
	if err := ValidateAttributes(nil, map[string]any{"anything": true}); err != nil {
		t.Fatalf("expected nil schema to validate everything, got %v", err)
	}
}

func TestValidateSchemaRejectsMalformedSchema(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "not-a-type"},
		},
	}

	err := ValidateSchema(schema)
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}
