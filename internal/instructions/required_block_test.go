package instructions_test

import (
	"errors"
	"testing"

	"github.com/almanaclabs/yoastseo/internal/blocks"
	"github.com/almanaclabs/yoastseo/internal/i18n"
	"github.com/almanaclabs/yoastseo/internal/instructions"
)

func newRequiredBlock(t *testing.T, presence blocks.PresenceLevel) *instructions.RequiredBlock {
	t.Helper()
	svc, err := i18n.NewDefaultService("en")
	if err != nil {
		t.Fatalf("build i18n service: %v", err)
	}
	instruction, err := instructions.NewRequiredBlock(instructions.RequiredBlockOptions{
		Key:        "job-posting",
		ChildKind:  "title",
		FieldLabel: "Job posting",
		Presence:   presence,
	}, svc.Translator())
	if err != nil {
		t.Fatalf("build required-block instruction: %v", err)
	}
	return instruction
}

func TestRequiredBlockAcceptsNestedChild(t *testing.T) {
	instruction := newRequiredBlock(t, blocks.PresenceRequired)
	subject := blocks.NewInstance("job-posting", nil,
		blocks.NewInstance("section", nil,
			blocks.NewInstance("title", map[string]any{"title": "Open position"}),
		),
	)

	result := instruction.Validate(subject, "en")

	if result.Status != blocks.StatusValid {
		t.Fatalf("expected StatusValid, got %s", result.Status)
	}
}

func TestRequiredBlockReportsMissingChild(t *testing.T) {
	instruction := newRequiredBlock(t, blocks.PresenceRequired)
	subject := blocks.NewInstance("job-posting", nil,
		blocks.NewInstance("paragraph", nil),
	)

	result := instruction.Validate(subject, "en")

	if result.Status != blocks.StatusMissingRequiredBlock {
		t.Fatalf("expected StatusMissingRequiredBlock, got %s", result.Status)
	}
	if result.Presence != blocks.PresenceRequired {
		t.Fatalf("expected PresenceRequired, got %s", result.Presence)
	}
	if result.Message != "Job posting is missing a required title block." {
		t.Fatalf("unexpected message %q", result.Message)
	}
}

func TestRequiredBlockRecommendedPhrasing(t *testing.T) {
	instruction := newRequiredBlock(t, blocks.PresenceRecommended)
	subject := blocks.NewInstance("job-posting", nil)

	result := instruction.Validate(subject, "en")

	if result.Presence != blocks.PresenceRecommended {
		t.Fatalf("expected PresenceRecommended, got %s", result.Presence)
	}
	if result.Message != "Job posting is missing a recommended title block." {
		t.Fatalf("unexpected message %q", result.Message)
	}
}

func TestRequiredBlockDefaultsPresence(t *testing.T) {
	instruction, err := instructions.NewRequiredBlock(instructions.RequiredBlockOptions{
		Key:        "job-posting",
		ChildKind:  "title",
		FieldLabel: "Job posting",
	}, nil)
	if err != nil {
		t.Fatalf("build required-block instruction: %v", err)
	}

	result := instruction.Validate(blocks.NewInstance("job-posting", nil), "en")
	if result.Presence != blocks.PresenceRequired {
		t.Fatalf("expected default PresenceRequired, got %s", result.Presence)
	}
}

func TestRequiredBlockRejectsBadOptions(t *testing.T) {
	_, err := instructions.NewRequiredBlock(instructions.RequiredBlockOptions{
		ChildKind: "title",
	}, nil)
	if err == nil {
		t.Fatal("expected option validation to fail")
	}
	if !errors.Is(err, instructions.ErrOptionsInvalid) {
		t.Fatalf("expected ErrOptionsInvalid, got %v", err)
	}

	_, err = instructions.NewRequiredBlock(instructions.RequiredBlockOptions{
		Key:        "job-posting",
		ChildKind:  "title",
		FieldLabel: "Job posting",
		Presence:   blocks.PresenceOptional,
	}, nil)
	if err == nil {
		t.Fatal("expected optional presence to be rejected")
	}
}
