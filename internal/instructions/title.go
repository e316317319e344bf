package instructions

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/almanaclabs/yoastseo/internal/blocks"
	"github.com/almanaclabs/yoastseo/internal/i18n"
	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

// TitleKey is the registry key the title instruction registers under.
const TitleKey = "title"

const fieldEmptyMessageKey = "validation.field_empty"
const fieldEmptyFallback = "%s has been left empty."

// TitleOptions configures the title check: which attribute holds the title
// text, the human-readable label interpolated into failure messages, and the
// heading levels the block may render as. Composition replaces the source
// ecosystem's Title < Heading < BlockInstruction inheritance chain.
type TitleOptions struct {
	AttributeKey  string
	FieldLabel    string
	HeadingLevels []int
}

// Validate checks the options before an instruction is built from them.
func (o TitleOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.AttributeKey, validation.Required),
		validation.Field(&o.FieldLabel, validation.Required),
		validation.Field(&o.HeadingLevels, validation.By(headingLevelsRule)),
	)
}

func headingLevelsRule(value any) error {
	levels, _ := value.([]int)
	for _, level := range levels {
		if level < 1 || level > 6 {
			return fmt.Errorf("heading level %d out of range 1..6", level)
		}
	}
	return nil
}

// DefaultTitleOptions returns the configuration the editor ships with.
func DefaultTitleOptions() TitleOptions {
	return TitleOptions{
		AttributeKey:  "title",
		FieldLabel:    "Title",
		HeadingLevels: []int{1, 2, 3, 4, 5, 6},
	}
}

// TitleAttributeSchema describes the title block's attribute shape for hosts
// that enable schema validation: the configured attribute, when present, must
// be a string. Blankness stays the instruction's concern.
func TitleAttributeSchema(opts TitleOptions) map[string]any {
	key := strings.TrimSpace(opts.AttributeKey)
	if key == "" {
		key = DefaultTitleOptions().AttributeKey
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			key: map[string]any{"type": "string"},
		},
	}
}

// Title validates that a block's configured title attribute holds non-blank
// text. It contributes no rendered output.
type Title struct {
	opts       TitleOptions
	translator interfaces.Translator
}

var _ Instruction = (*Title)(nil)

// NewTitle builds the title instruction. A nil translator falls back to the
// built-in English message template.
func NewTitle(opts TitleOptions, translator interfaces.Translator) (*Title, error) {
	opts.AttributeKey = strings.TrimSpace(opts.AttributeKey)
	opts.FieldLabel = strings.TrimSpace(opts.FieldLabel)
	if err := opts.Validate(); err != nil {
		return nil, wrapOptionsError(fmt.Errorf("%w: %v", ErrOptionsInvalid, err))
	}
	return &Title{opts: opts, translator: translator}, nil
}

// Key satisfies Instruction.
func (t *Title) Key() string {
	return TitleKey
}

// Renderable satisfies Instruction. The title check is validation-only.
func (t *Title) Renderable() bool {
	return false
}

// Options returns a copy of the configured options.
func (t *Title) Options() TitleOptions {
	opts := t.opts
	opts.HeadingLevels = append([]int(nil), t.opts.HeadingLevels...)
	return opts
}

// Validate reports StatusValid when the configured attribute exists and trims
// to non-empty text. Anything else, including non-string values, is a missing
// required attribute. Attributes other than the configured key are never
// inspected.
func (t *Title) Validate(subject *blocks.Instance, locale string) blocks.ValidationResult {
	var attributes map[string]any
	if subject != nil {
		attributes = subject.Attributes
	}

	text, ok := blocks.StringAttribute(attributes, t.opts.AttributeKey)
	if ok && !blocks.BlankText(text) {
		return blocks.Valid(subject)
	}

	message := i18n.Message(t.translator, locale, fieldEmptyMessageKey, fieldEmptyFallback, t.opts.FieldLabel)
	return blocks.Failure(subject, blocks.StatusMissingRequiredAttribute, blocks.PresenceRequired, message)
}
