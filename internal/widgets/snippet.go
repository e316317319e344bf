package widgets

import (
	"io"
	"strings"
	"sync"

	"github.com/goliatone/go-slug"

	"github.com/almanaclabs/yoastseo/internal/i18n"
)

// SnippetPreview is the authored input for the snippet editor: the SEO title,
// an optional slug override, and the meta description. Description markup is
// sanitized before rendering.
type SnippetPreview struct {
	Title       string
	Slug        string
	Description string
}

// SnippetEditor renders a search-snippet preview: title, slug, and meta
// description the way a result page would show them. The slug derives from
// the title when no override is set.
type SnippetEditor struct {
	mu      sync.Mutex
	preview SnippetPreview
}

// NewSnippetEditor builds the widget with an initial preview.
func NewSnippetEditor(preview SnippetPreview) *SnippetEditor {
	return &SnippetEditor{preview: preview}
}

// SetPreview replaces the authored input.
func (s *SnippetEditor) SetPreview(preview SnippetPreview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preview = preview
}

// Descriptor returns the catalog entry for this widget.
func (s *SnippetEditor) Descriptor() Descriptor {
	return Descriptor{
		ID:          "snippet-editor",
		DisplayName: "Snippet editor",
		Render:      s.Render,
	}
}

// Render satisfies RenderFunc.
func (s *SnippetEditor) Render(w io.Writer, rc RenderContext) error {
	s.mu.Lock()
	preview := s.preview
	s.mu.Unlock()

	return rc.Engine.Render(w, "widgets/snippet_editor", map[string]any{
		"title":             strings.TrimSpace(preview.Title),
		"slug":              s.resolveSlug(preview),
		"description":       SanitizeMarkup(preview.Description),
		"title_label":       i18n.Message(rc.Translator, rc.Locale, "snippet.title_label", "SEO title"),
		"slug_label":        i18n.Message(rc.Translator, rc.Locale, "snippet.slug_label", "Slug"),
		"description_label": i18n.Message(rc.Translator, rc.Locale, "snippet.description_label", "Meta description"),
		"dir":               string(rc.Direction),
	})
}

func (s *SnippetEditor) resolveSlug(preview SnippetPreview) string {
	candidate := strings.TrimSpace(preview.Slug)
	if candidate == "" {
		candidate = strings.TrimSpace(preview.Title)
	}
	if candidate == "" {
		return ""
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return strings.ToLower(candidate)
	}
	return normalized
}
