package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// ErrTemplateSourceRequired reports an engine built without a template FS.
var ErrTemplateSourceRequired = errors.New("render: template fs is required")

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	extension string
	globals   map[string]any
	filters   map[string]FilterFunc
}

// FilterFunc is a template filter: it receives the piped input value and the
// optional filter parameter.
type FilterFunc func(input any, param any) (any, error)

// WithFS sets the filesystem templates load from.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default ".html" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobal seeds a context value available to every template.
func WithGlobal(key string, value any) Option {
	return func(cfg *config) {
		if cfg.globals == nil {
			cfg.globals = make(map[string]any)
		}
		cfg.globals[strings.TrimSpace(key)] = value
	}
}

// WithFilter registers a template filter under the given name when the engine
// is built.
func WithFilter(name string, fn FilterFunc) Option {
	return func(cfg *config) {
		if strings.TrimSpace(name) == "" || fn == nil {
			return
		}
		if cfg.filters == nil {
			cfg.filters = make(map[string]FilterFunc)
		}
		cfg.filters[strings.TrimSpace(name)] = fn
	}
}

// Engine renders HTML through a pongo2 template set loaded from an fs.FS.
// Parsed templates are cached; the engine is safe for concurrent use.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	extension string
	globals   pongo2.Context
}

// New constructs an engine from the provided options. A template filesystem
// is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".html"}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.templates == nil {
		return nil, ErrTemplateSourceRequired
	}

	engine := &Engine{
		set:       pongo2.NewSet("yoastseo", pongo2.NewFSLoader(cfg.templates)),
		templates: make(map[string]*pongo2.Template),
		extension: cfg.extension,
		globals:   pongo2.Context{},
	}
	for key, value := range cfg.globals {
		engine.globals[key] = value
	}
	for name, fn := range cfg.filters {
		if err := engine.RegisterFilter(name, fn); err != nil {
			return nil, fmt.Errorf("render: register filter %q: %w", name, err)
		}
	}
	return engine, nil
}

// Render executes the named template into w. Names without an extension get
// the engine's default appended.
func (e *Engine) Render(w io.Writer, name string, data map[string]any) error {
	if e == nil || e.set == nil {
		return errors.New("render: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.extension) {
		path += e.extension
	}

	tmpl, err := e.template(path)
	if err != nil {
		return err
	}

	ctx := pongo2.Context{}
	ctx.Update(e.globals)
	if len(data) > 0 {
		ctx.Update(pongo2.Context(data))
	}

	if err := tmpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("render: execute template %q: %w", path, err)
	}
	return nil
}

// RenderHTML executes the named template and returns the rendered markup.
func (e *Engine) RenderHTML(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RegisterFilter exposes a Go function as a pongo2 filter. Re-registering a
// name replaces the previous filter.
func (e *Engine) RegisterFilter(name string, fn FilterFunc) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("render: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramValue any
		if param != nil {
			paramValue = param.Interface()
		}
		result, err := fn(in.Interface(), paramValue)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	if pongo2.FilterExists(name) {
		pongo2.ReplaceFilter(name, filter)
		return nil
	}
	return pongo2.RegisterFilter(name, filter)
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}
