package widgets

import (
	"io"

	"github.com/almanaclabs/yoastseo/internal/i18n"
)

// Buttons renders a primary/secondary button row, the smallest widget in the
// catalog.
type Buttons struct{}

// NewButtons builds the widget.
func NewButtons() *Buttons {
	return &Buttons{}
}

// Descriptor returns the catalog entry for this widget.
func (b *Buttons) Descriptor() Descriptor {
	return Descriptor{
		ID:          "buttons",
		DisplayName: "Buttons",
		Render:      b.Render,
	}
}

// Render satisfies RenderFunc.
func (b *Buttons) Render(w io.Writer, rc RenderContext) error {
	return rc.Engine.Render(w, "widgets/buttons", map[string]any{
		"primary":   i18n.Message(rc.Translator, rc.Locale, "buttons.primary", "Publish"),
		"secondary": i18n.Message(rc.Translator, rc.Locale, "buttons.secondary", "Cancel"),
		"dir":       string(rc.Direction),
	})
}
