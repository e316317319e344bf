package widgets

import (
	"io"
	"strings"
	"sync"

	"github.com/almanaclabs/yoastseo/internal/i18n"
)

// WizardStep is one entry in the wizard's step list.
type WizardStep struct {
	Label string
}

// Wizard renders a numbered step list with one active step. Navigation only
// moves within the configured steps; out-of-range requests are clamped.
type Wizard struct {
	mu     sync.Mutex
	steps  []WizardStep
	active int
}

// NewWizard builds the widget. Step labels that trim to nothing are dropped.
func NewWizard(steps []WizardStep) *Wizard {
	kept := make([]WizardStep, 0, len(steps))
	for _, step := range steps {
		if strings.TrimSpace(step.Label) != "" {
			kept = append(kept, WizardStep{Label: strings.TrimSpace(step.Label)})
		}
	}
	return &Wizard{steps: kept}
}

// Activate moves the active step, clamping to the valid range.
func (z *Wizard) Activate(index int) {
	z.mu.Lock()
	defer z.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if max := len(z.steps) - 1; index > max && max >= 0 {
		index = max
	}
	z.active = index
}

// Descriptor returns the catalog entry for this widget.
func (z *Wizard) Descriptor() Descriptor {
	return Descriptor{
		ID:          "wizard",
		DisplayName: "Wizard",
		Render:      z.Render,
	}
}

// Render satisfies RenderFunc.
func (z *Wizard) Render(w io.Writer, rc RenderContext) error {
	z.mu.Lock()
	steps := append([]WizardStep(nil), z.steps...)
	active := z.active
	z.mu.Unlock()

	rows := make([]map[string]any, 0, len(steps))
	for i, step := range steps {
		rows = append(rows, map[string]any{
			"number": i + 1,
			"label":  i18n.Message(rc.Translator, rc.Locale, "wizard.step", "Step %d: %s", i+1, step.Label),
			"active": i == active,
		})
	}

	return rc.Engine.Render(w, "widgets/wizard", map[string]any{
		"steps": rows,
		"dir":   string(rc.Direction),
	})
}
