package gallery

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/almanaclabs/yoastseo/internal/a11y"
	"github.com/almanaclabs/yoastseo/internal/i18n"
	"github.com/almanaclabs/yoastseo/internal/logging"
	"github.com/almanaclabs/yoastseo/internal/render"
	"github.com/almanaclabs/yoastseo/internal/widgets"
	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

var (
	// ErrCatalogRequired reports a shell built without a widget catalog.
	ErrCatalogRequired = errors.New("gallery: widget catalog is required")
	// ErrEngineRequired reports a shell built without template engines.
	ErrEngineRequired = errors.New("gallery: template engines are required")
)

// Options configures the gallery shell.
type Options struct {
	Catalog      *widgets.Registry
	Engine       *render.Engine
	WidgetEngine *render.Engine
	Translator   interfaces.Translator
	Locale       string
	Direction    interfaces.TextDirection
	Announcer    interfaces.Announcer
	Document     *Document
	Theme        ThemeContext
	Links        *NavLinker
	Notes        map[string]Note
	Logger       interfaces.Logger
	ActiveWidget string
}

// Shell lets a developer pick one widget from the catalog and view it in
// isolation. It owns the only mutable gallery state: the active widget id and
// the writing direction. Both are ephemeral and reset on restart.
type Shell struct {
	mu        sync.Mutex
	active    string
	direction interfaces.TextDirection

	catalog      *widgets.Registry
	engine       *render.Engine
	widgetEngine *render.Engine
	translator   interfaces.Translator
	locale       string
	announcer    interfaces.Announcer
	document     *Document
	theme        ThemeContext
	links        *NavLinker
	notes        map[string]Note
	logger       interfaces.Logger
}

// NewShell constructs the shell and writes the initial direction onto the
// document.
func NewShell(opts Options) (*Shell, error) {
	if opts.Catalog == nil {
		return nil, ErrCatalogRequired
	}
	if opts.Engine == nil || opts.WidgetEngine == nil {
		return nil, ErrEngineRequired
	}
	if opts.Direction == "" {
		opts.Direction = interfaces.DirectionLTR
	}
	if opts.Document == nil {
		opts.Document = NewDocument()
	}
	if opts.Announcer == nil {
		opts.Announcer = a11y.Noop()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOp()
	}

	shell := &Shell{
		active:       strings.TrimSpace(opts.ActiveWidget),
		direction:    opts.Direction,
		catalog:      opts.Catalog,
		engine:       opts.Engine,
		widgetEngine: opts.WidgetEngine,
		translator:   opts.Translator,
		locale:       strings.TrimSpace(opts.Locale),
		announcer:    opts.Announcer,
		document:     opts.Document,
		theme:        opts.Theme,
		links:        opts.Links,
		notes:        opts.Notes,
		logger:       opts.Logger,
	}
	shell.document.SetAttribute("dir", string(shell.direction))
	return shell, nil
}

// Navigate sets the active widget id. Ids absent from the catalog are kept as
// given: the subsequent render simply shows no widget, which is acceptable
// demo-tool behavior rather than an error.
func (s *Shell) Navigate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = strings.TrimSpace(id)
}

// Active returns the current widget id.
func (s *Shell) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// ToggleDirection flips the writing direction and propagates it to the
// document's dir attribute so all descendant styling can react. Two toggles
// restore the original attribute value.
func (s *Shell) ToggleDirection() interfaces.TextDirection {
	s.mu.Lock()
	s.direction = s.direction.Opposite()
	direction := s.direction
	s.mu.Unlock()

	s.document.SetAttribute("dir", string(direction))
	s.logger.Debug("direction toggled", "dir", string(direction))
	return direction
}

// Direction returns the current writing direction.
func (s *Shell) Direction() interfaces.TextDirection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.direction
}

// Document exposes the document the shell writes its dir attribute to.
func (s *Shell) Document() *Document {
	return s.document
}

// Render writes the full gallery page: menu, active widget, its note, and
// the live-region payload.
func (s *Shell) Render(w io.Writer) error {
	s.mu.Lock()
	active := s.active
	direction := s.direction
	s.mu.Unlock()

	widgetHTML, displayName := s.renderActive(active, direction)

	entries := s.catalog.List()
	menu := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		menu = append(menu, map[string]any{
			"id":     entry.ID,
			"name":   entry.DisplayName,
			"url":    s.links.WidgetURL(entry.ID),
			"active": entry.ID == active,
		})
	}

	noteHTML := ""
	noteTitle := ""
	if note, ok := s.notes[active]; ok {
		noteHTML = note.HTML
		noteTitle = note.Title
	}

	announcement := ""
	if region, ok := s.announcer.(*a11y.LiveRegion); ok {
		if last, ok := region.Last(); ok {
			announcement = last.Message
		}
	}

	return s.engine.Render(w, "layout", map[string]any{
		"title":        i18n.Message(s.translator, s.locale, "gallery.title", "Component gallery"),
		"toggle_label": i18n.Message(s.translator, s.locale, "gallery.toggle_direction", "Toggle writing direction"),
		"dir":          string(direction),
		"menu":         menu,
		"active":       active,
		"widget_name":  displayName,
		"widget_html":  widgetHTML,
		"note_title":   noteTitle,
		"note_html":    noteHTML,
		"announcement": announcement,
		"theme_style":  s.theme.InlineStyle(),
		"theme_name":   s.theme.Name,
	})
}

// RenderHTML renders the page into a string.
func (s *Shell) RenderHTML() (string, error) {
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderActive renders the active widget, or nothing when the id matches no
// catalog entry.
func (s *Shell) renderActive(active string, direction interfaces.TextDirection) (string, string) {
	if active == "" {
		return "", ""
	}
	descriptor, ok := s.catalog.Get(active)
	if !ok {
		s.logger.Debug("no widget registered for id", "id", active)
		return "", ""
	}

	var buf bytes.Buffer
	rc := widgets.RenderContext{
		Locale:     s.locale,
		Direction:  direction,
		Translator: s.translator,
		Announcer:  s.announcer,
		Engine:     s.widgetEngine,
		Theme:      s.theme.Tokens,
		Logger:     s.logger,
	}
	if err := descriptor.Render(&buf, rc); err != nil {
		s.logger.Error("widget render failed", "id", descriptor.ID, "error", err)
		return "", descriptor.DisplayName
	}
	return buf.String(), descriptor.DisplayName
}
