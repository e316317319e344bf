package instructions

import (
	"github.com/almanaclabs/yoastseo/internal/blocks"
)

// Instruction is a pluggable rule attached to a block kind. It contributes a
// validation contract and declares whether it also contributes rendered
// output to the composed content tree.
//
// Instructions are pure: Validate never mutates the subject and only inspects
// the attributes its options name. Results are built fresh on every call.
type Instruction interface {
	// Key identifies the block kind the instruction checks, e.g. "title".
	Key() string

	// Renderable reports whether the instruction contributes visual output.
	// Validation-only instructions return false; the editor framework reads
	// this as a capability flag and skips them during rendering.
	Renderable() bool

	// Validate checks the subject and reports a tagged result. Messages on
	// failing results resolve against the given locale.
	Validate(subject *blocks.Instance, locale string) blocks.ValidationResult
}
