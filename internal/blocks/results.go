package blocks

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ValidationStatus tags the outcome of a single instruction check.
type ValidationStatus string

const (
	// StatusValid marks a block that satisfied the check.
	StatusValid ValidationStatus = "valid"
	// StatusInvalid marks a generic failure not covered by a sharper status.
	StatusInvalid ValidationStatus = "invalid"
	// StatusMissingRequiredAttribute marks a required attribute that is
	// absent or blank.
	StatusMissingRequiredAttribute ValidationStatus = "missing_required_attribute"
	// StatusMissingRequiredBlock marks a required nested block that is absent.
	StatusMissingRequiredBlock ValidationStatus = "missing_required_block"
	// StatusSkipped marks a block no registered instruction could check.
	StatusSkipped ValidationStatus = "skipped"
)

// PresenceLevel describes how strongly a failed expectation was held.
type PresenceLevel string

const (
	PresenceRequired    PresenceLevel = "required"
	PresenceRecommended PresenceLevel = "recommended"
	PresenceOptional    PresenceLevel = "optional"
)

// ValidationResult is the tagged outcome an instruction reports for one
// block. Results are constructed fresh on every validation pass and carry no
// identity of their own: two passes over the same block yield equal but
// distinct values.
type ValidationResult struct {
	SubjectID   uuid.UUID
	SubjectKind string
	Status      ValidationStatus
	Presence    PresenceLevel
	Message     string
}

// OK reports whether the subject passed the check.
func (r ValidationResult) OK() bool {
	return r.Status == StatusValid
}

// Valid builds the passing result for a subject. Passing results never carry
// a message.
func Valid(subject *Instance) ValidationResult {
	id, kind := subjectRef(subject)
	return ValidationResult{
		SubjectID:   id,
		SubjectKind: kind,
		Status:      StatusValid,
	}
}

// Skipped builds the unchecked result reported for block kinds without a
// registered instruction.
func Skipped(subject *Instance) ValidationResult {
	id, kind := subjectRef(subject)
	return ValidationResult{
		SubjectID:   id,
		SubjectKind: kind,
		Status:      StatusSkipped,
	}
}

// Failure builds a non-passing result. The message explains the failure to
// the editor user and must not be empty; Validate enforces that.
func Failure(subject *Instance, status ValidationStatus, presence PresenceLevel, message string) ValidationResult {
	id, kind := subjectRef(subject)
	return ValidationResult{
		SubjectID:   id,
		SubjectKind: kind,
		Status:      status,
		Presence:    presence,
		Message:     message,
	}
}

func subjectRef(subject *Instance) (uuid.UUID, string) {
	if subject == nil {
		return uuid.Nil, ""
	}
	return subject.ClientID, subject.Kind()
}

// Validate checks the result invariants: passing and skipped results stay
// silent, failures explain themselves and carry a presence level.
func (r ValidationResult) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SubjectKind, validation.Required),
		validation.Field(&r.Status, validation.Required, validation.In(
			StatusValid,
			StatusInvalid,
			StatusMissingRequiredAttribute,
			StatusMissingRequiredBlock,
			StatusSkipped,
		)),
		validation.Field(&r.Message, validation.By(r.messageRule)),
		validation.Field(&r.Presence, validation.By(r.presenceRule)),
	)
}

func (r ValidationResult) messageRule(any) error {
	switch r.Status {
	case StatusValid, StatusSkipped:
		if r.Message != "" {
			return fmt.Errorf("must be empty for status %s", r.Status)
		}
	default:
		if BlankText(r.Message) {
			return fmt.Errorf("required for status %s", r.Status)
		}
	}
	return nil
}

func (r ValidationResult) presenceRule(any) error {
	switch r.Status {
	case StatusValid, StatusSkipped:
		return nil
	}
	switch r.Presence {
	case PresenceRequired, PresenceRecommended, PresenceOptional:
		return nil
	case "":
		return errors.New("required for failing results")
	default:
		return fmt.Errorf("unknown presence level %q", string(r.Presence))
	}
}
