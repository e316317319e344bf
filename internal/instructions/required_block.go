package instructions

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/almanaclabs/yoastseo/internal/blocks"
	"github.com/almanaclabs/yoastseo/internal/i18n"
	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

const (
	requiredBlockMessageKey    = "validation.required_block_missing"
	requiredBlockFallback      = "%s is missing a required %s block."
	recommendedBlockMessageKey = "validation.recommended_block_missing"
	recommendedBlockFallback   = "%s is missing a recommended %s block."
)

// RequiredBlockOptions configures a nested-block expectation: blocks of the
// configured kind must contain at least one descendant of the child kind.
type RequiredBlockOptions struct {
	Key        string
	ChildKind  string
	FieldLabel string
	Presence   blocks.PresenceLevel
}

// Validate checks the options before an instruction is built from them.
func (o RequiredBlockOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Key, validation.Required),
		validation.Field(&o.ChildKind, validation.Required),
		validation.Field(&o.FieldLabel, validation.Required),
		validation.Field(&o.Presence, validation.In(
			blocks.PresenceRequired,
			blocks.PresenceRecommended,
		)),
	)
}

// RequiredBlock checks that a block nests at least one descendant of a named
// kind, at any depth. Presence decides how the failure is phrased: required
// expectations are authoring errors, recommended ones are advisories.
type RequiredBlock struct {
	opts       RequiredBlockOptions
	translator interfaces.Translator
}

var _ Instruction = (*RequiredBlock)(nil)

// NewRequiredBlock builds the nested-block instruction. Presence defaults to
// required when unset.
func NewRequiredBlock(opts RequiredBlockOptions, translator interfaces.Translator) (*RequiredBlock, error) {
	opts.Key = strings.TrimSpace(opts.Key)
	opts.ChildKind = strings.TrimSpace(opts.ChildKind)
	opts.FieldLabel = strings.TrimSpace(opts.FieldLabel)
	if opts.Presence == "" {
		opts.Presence = blocks.PresenceRequired
	}
	if err := opts.Validate(); err != nil {
		return nil, wrapOptionsError(fmt.Errorf("%w: %v", ErrOptionsInvalid, err))
	}
	return &RequiredBlock{opts: opts, translator: translator}, nil
}

// Key satisfies Instruction.
func (r *RequiredBlock) Key() string {
	return r.opts.Key
}

// Renderable satisfies Instruction.
func (r *RequiredBlock) Renderable() bool {
	return false
}

// Validate walks the subject's inner blocks looking for the configured child
// kind.
func (r *RequiredBlock) Validate(subject *blocks.Instance, locale string) blocks.ValidationResult {
	if subject.HasDescendantOfKind(r.opts.ChildKind) {
		return blocks.Valid(subject)
	}

	messageKey := requiredBlockMessageKey
	fallback := requiredBlockFallback
	if r.opts.Presence == blocks.PresenceRecommended {
		messageKey = recommendedBlockMessageKey
		fallback = recommendedBlockFallback
	}

	message := i18n.Message(r.translator, locale, messageKey, fallback, r.opts.FieldLabel, r.opts.ChildKind)
	return blocks.Failure(subject, blocks.StatusMissingRequiredBlock, r.opts.Presence, message)
}
