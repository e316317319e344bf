// Package blocks re-exports the block data model for consumers of the
// module: instances, tagged validation results, and the attribute helpers
// instructions build on.
package blocks

import "github.com/almanaclabs/yoastseo/internal/blocks"

// Instance exports the block instance model.
type Instance = blocks.Instance

// ValidationResult exports the tagged validation outcome.
type ValidationResult = blocks.ValidationResult

// ValidationStatus exports the outcome discriminator.
type ValidationStatus = blocks.ValidationStatus

// PresenceLevel exports the declared importance of a failed expectation.
type PresenceLevel = blocks.PresenceLevel

const (
	StatusValid                    = blocks.StatusValid
	StatusInvalid                  = blocks.StatusInvalid
	StatusMissingRequiredAttribute = blocks.StatusMissingRequiredAttribute
	StatusMissingRequiredBlock     = blocks.StatusMissingRequiredBlock
	StatusSkipped                  = blocks.StatusSkipped

	PresenceRequired    = blocks.PresenceRequired
	PresenceRecommended = blocks.PresenceRecommended
	PresenceOptional    = blocks.PresenceOptional
)

// NewInstance builds an instance with a fresh random client identifier.
func NewInstance(name string, attributes map[string]any, inner ...*Instance) *Instance {
	return blocks.NewInstance(name, attributes, inner...)
}

// Valid builds the passing result for a subject.
func Valid(subject *Instance) ValidationResult {
	return blocks.Valid(subject)
}

// Skipped builds the unchecked result for unknown block kinds.
func Skipped(subject *Instance) ValidationResult {
	return blocks.Skipped(subject)
}

// Failure builds a non-passing result.
func Failure(subject *Instance, status ValidationStatus, presence PresenceLevel, message string) ValidationResult {
	return blocks.Failure(subject, status, presence, message)
}

// StringAttribute returns the named attribute when it holds a string.
func StringAttribute(attributes map[string]any, key string) (string, bool) {
	return blocks.StringAttribute(attributes, key)
}

// BlankText reports whether trimming Unicode whitespace leaves nothing.
func BlankText(value string) bool {
	return blocks.BlankText(value)
}
