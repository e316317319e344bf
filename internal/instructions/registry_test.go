package instructions_test

import (
	"errors"
	"testing"

	"github.com/almanaclabs/yoastseo/internal/blocks"
	"github.com/almanaclabs/yoastseo/internal/instructions"
)

func newRegistry(t *testing.T) *instructions.Registry {
	t.Helper()
	registry, err := instructions.DefaultRegistry(instructions.DefaultTitleOptions(), nil, nil)
	if err != nil {
		t.Fatalf("build default registry: %v", err)
	}
	return registry
}

func TestDefaultRegistryRegistersTitle(t *testing.T) {
	registry := newRegistry(t)

	instruction, ok := registry.Lookup("title")
	if !ok {
		t.Fatal("expected title instruction to be registered")
	}
	if instruction.Key() != instructions.TitleKey {
		t.Fatalf("expected title key, got %q", instruction.Key())
	}
	if got := registry.Keys(); len(got) != 1 || got[0] != "title" {
		t.Fatalf("unexpected keys %v", got)
	}
}

func TestLookupCanonicalizesKeys(t *testing.T) {
	registry := newRegistry(t)

	for _, key := range []string{"Title", "TITLE", " title ", "yoast/title"} {
		if _, ok := registry.Lookup(key); !ok {
			t.Fatalf("expected lookup %q to resolve the title instruction", key)
		}
	}
}

func TestValidateBlockDispatchesByKind(t *testing.T) {
	registry := newRegistry(t)

	valid := registry.ValidateBlock(blocks.NewInstance("title", map[string]any{"title": "Hello"}), "en")
	if valid.Status != blocks.StatusValid {
		t.Fatalf("expected StatusValid, got %s", valid.Status)
	}

	failing := registry.ValidateBlock(blocks.NewInstance("title", map[string]any{"title": "  "}), "en")
	if failing.Status != blocks.StatusMissingRequiredAttribute {
		t.Fatalf("expected StatusMissingRequiredAttribute, got %s", failing.Status)
	}
}

func TestValidateBlockSkipsUnknownKinds(t *testing.T) {
	registry := newRegistry(t)
	subject := blocks.NewInstance("paragraph", map[string]any{"text": "hello"})

	result := registry.ValidateBlock(subject, "en")

	if result.Status != blocks.StatusSkipped {
		t.Fatalf("expected StatusSkipped, got %s", result.Status)
	}
	if result.Message != "" {
		t.Fatalf("expected no message on skipped result, got %q", result.Message)
	}
	if result.SubjectKind != "paragraph" {
		t.Fatalf("expected subject kind paragraph, got %q", result.SubjectKind)
	}
}

func TestValidateTreeWalksDescendants(t *testing.T) {
	registry := newRegistry(t)
	tree := blocks.NewInstance("job-posting", nil,
		blocks.NewInstance("title", map[string]any{"title": "Open position"}),
		blocks.NewInstance("paragraph", map[string]any{"text": "body"}),
	)

	results := registry.ValidateTree(tree, "en")

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Status != blocks.StatusSkipped {
		t.Fatalf("expected root to be skipped, got %s", results[0].Status)
	}
	if results[1].Status != blocks.StatusValid {
		t.Fatalf("expected title child to be valid, got %s", results[1].Status)
	}
	if results[2].Status != blocks.StatusSkipped {
		t.Fatalf("expected paragraph child to be skipped, got %s", results[2].Status)
	}
}

func TestRegisterRejectsNilAndEmptyKeys(t *testing.T) {
	registry := instructions.NewRegistry(nil)

	if err := registry.Register(nil); !errors.Is(err, instructions.ErrNilInstruction) {
		t.Fatalf("expected ErrNilInstruction, got %v", err)
	}

	title, err := instructions.NewTitle(instructions.DefaultTitleOptions(), nil)
	if err != nil {
		t.Fatalf("build title instruction: %v", err)
	}
	if err := registry.Register(title); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func TestRegisterReplacesExistingKey(t *testing.T) {
	registry := instructions.NewRegistry(nil)

	first, err := instructions.NewTitle(instructions.DefaultTitleOptions(), nil)
	if err != nil {
		t.Fatalf("build first title: %v", err)
	}
	second, err := instructions.NewTitle(instructions.TitleOptions{
		AttributeKey: "heading",
		FieldLabel:   "Heading",
	}, nil)
	if err != nil {
		t.Fatalf("build second title: %v", err)
	}

	if err := registry.Register(first); err != nil {
		t.Fatalf("register first: %v", err)
	}
	if err := registry.Register(second); err != nil {
		t.Fatalf("register second: %v", err)
	}

	got, ok := registry.Lookup("title")
	if !ok {
		t.Fatal("expected title instruction")
	}
	titleInstruction, ok := got.(*instructions.Title)
	if !ok {
		t.Fatalf("expected *Title, got %T", got)
	}
	if titleInstruction.Options().AttributeKey != "heading" {
		t.Fatal("expected the second registration to replace the first")
	}
	if keys := registry.Keys(); len(keys) != 1 {
		t.Fatalf("expected a single key, got %v", keys)
	}
}
