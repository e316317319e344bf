package gallery

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed notes/*.md
var notesFS embed.FS

// Note is one widget's developer documentation: Markdown with YAML
// frontmatter naming the widget it belongs to.
type Note struct {
	WidgetID string
	Title    string
	Order    int
	HTML     string
}

type noteEnvelope struct {
	Widget string `yaml:"widget"`
	Title  string `yaml:"title"`
	Order  int    `yaml:"order"`
}

var (
	notesPolicyOnce sync.Once
	notesPolicy     *bluemonday.Policy
)

// LoadNotes parses the embedded notes into per-widget entries: frontmatter
// for metadata, goldmark for the body, bluemonday to scrub the result.
func LoadNotes() (map[string]Note, error) {
	return loadNotesFrom(notesFS, "notes/*.md")
}

func loadNotesFrom(fsys fs.FS, pattern string) (map[string]Note, error) {
	entries, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("gallery: glob notes: %w", err)
	}

	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	notes := make(map[string]Note, len(entries))
	for _, entry := range entries {
		source, err := fs.ReadFile(fsys, entry)
		if err != nil {
			return nil, fmt.Errorf("gallery: read note %s: %w", entry, err)
		}

		var meta noteEnvelope
		body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
		if err != nil {
			return nil, fmt.Errorf("gallery: parse note frontmatter %s: %w", entry, err)
		}
		widgetID := strings.TrimSpace(meta.Widget)
		if widgetID == "" {
			return nil, fmt.Errorf("gallery: note %s names no widget", entry)
		}

		var rendered bytes.Buffer
		if err := engine.Convert(body, &rendered); err != nil {
			return nil, fmt.Errorf("gallery: render note %s: %w", entry, err)
		}

		notes[widgetID] = Note{
			WidgetID: widgetID,
			Title:    strings.TrimSpace(meta.Title),
			Order:    meta.Order,
			HTML:     strings.TrimSpace(noteSanitizer().Sanitize(rendered.String())),
		}
	}
	return notes, nil
}

func noteSanitizer() *bluemonday.Policy {
	notesPolicyOnce.Do(func() {
		notesPolicy = bluemonday.UGCPolicy()
	})
	return notesPolicy
}
