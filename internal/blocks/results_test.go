package blocks

import (
	"testing"

	"github.com/google/uuid"
)

func TestValidResultCarriesNoMessage(t *testing.T) {
	subject := NewInstance("title", map[string]any{"title": "Hello"})

	result := Valid(subject)

	if result.Status != StatusValid {
		t.Fatalf("expected StatusValid, got %s", result.Status)
	}
	if result.Message != "" {
		t.Fatalf("expected no message on valid result, got %q", result.Message)
	}
	if result.SubjectID != subject.ClientID {
		t.Fatalf("expected subject id %s, got %s", subject.ClientID, result.SubjectID)
	}
	if result.SubjectKind != "title" {
		t.Fatalf("expected subject kind title, got %q", result.SubjectKind)
	}
	if err := result.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestFailureResultCarriesMessageAndPresence(t *testing.T) {
	subject := NewInstance("title", map[string]any{})

	result := Failure(subject, StatusMissingRequiredAttribute, PresenceRequired, "Title has been left empty.")

	if result.OK() {
		t.Fatal("expected failing result")
	}
	if result.Presence != PresenceRequired {
		t.Fatalf("expected PresenceRequired, got %s", result.Presence)
	}
	if err := result.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestResultValidateRejectsInvariantViolations(t *testing.T) {
	subject := NewInstance("title", nil)

	cases := []struct {
		name   string
		result ValidationResult
	}{
		{
			name: "valid result with message",
			result: ValidationResult{
				SubjectID:   subject.ClientID,
				SubjectKind: "title",
				Status:      StatusValid,
				Message:     "should not be here",
			},
		},
		{
			name: "failure without message",
			result: ValidationResult{
				SubjectID:   subject.ClientID,
				SubjectKind: "title",
				Status:      StatusMissingRequiredAttribute,
				Presence:    PresenceRequired,
			},
		},
		{
			name: "failure with blank message",
			result: ValidationResult{
				SubjectID:   subject.ClientID,
				SubjectKind: "title",
				Status:      StatusMissingRequiredAttribute,
				Presence:    PresenceRequired,
				Message:     "   ",
			},
		},
		{
			name: "failure without presence",
			result: ValidationResult{
				SubjectID:   subject.ClientID,
				SubjectKind: "title",
				Status:      StatusMissingRequiredAttribute,
				Message:     "Title has been left empty.",
			},
		},
		{
			name: "unknown presence level",
			result: ValidationResult{
				SubjectID:   subject.ClientID,
				SubjectKind: "title",
				Status:      StatusMissingRequiredAttribute,
				Presence:    PresenceLevel("mandatory"),
				Message:     "Title has been left empty.",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.result.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSkippedResultForNilSubject(t *testing.T) {
	result := Skipped(nil)

	if result.Status != StatusSkipped {
		t.Fatalf("expected StatusSkipped, got %s", result.Status)
	}
	if result.SubjectID != uuid.Nil {
		t.Fatalf("expected nil subject id, got %s", result.SubjectID)
	}
	if result.Message != "" {
		t.Fatalf("expected no message, got %q", result.Message)
	}
}

func TestResultsAreFreshPerPass(t *testing.T) {
	subject := NewInstance("title", map[string]any{"title": "Hello"})

	first := Valid(subject)
	second := Valid(subject)

	if first != second {
		t.Fatal("expected equal results for the same subject")
	}
	second.Message = "mutated"
	if first.Message != "" {
		t.Fatal("results must not share state")
	}
}
