package gallery

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// NavLinkerOptions configures the go-urlkit backed link builder.
type NavLinkerOptions struct {
	Manager     *urlkit.RouteManager
	Group       string
	WidgetRoute string
	WidgetParam string
}

// NavLinker builds gallery navigation URLs through a go-urlkit route group.
// Without a route manager it falls back to plain relative paths, so the
// gallery keeps working when the host configures no routes.
type NavLinker struct {
	manager     *urlkit.RouteManager
	group       string
	widgetRoute string
	widgetParam string
}

// NewNavLinker constructs a linker. Route and param names default to
// "widget" and "id".
func NewNavLinker(opts NavLinkerOptions) *NavLinker {
	if strings.TrimSpace(opts.WidgetRoute) == "" {
		opts.WidgetRoute = "widget"
	}
	if strings.TrimSpace(opts.WidgetParam) == "" {
		opts.WidgetParam = "id"
	}
	return &NavLinker{
		manager:     opts.Manager,
		group:       strings.TrimSpace(opts.Group),
		widgetRoute: strings.TrimSpace(opts.WidgetRoute),
		widgetParam: strings.TrimSpace(opts.WidgetParam),
	}
}

// WidgetURL resolves the navigation URL for a widget id.
func (l *NavLinker) WidgetURL(id string) string {
	fallback := "/widgets/" + id
	if l == nil || l.manager == nil || l.group == "" {
		return fallback
	}

	group, err := l.lookupGroup()
	if err != nil {
		return fallback
	}
	builder, err := l.safeBuilder(group)
	if err != nil {
		return fallback
	}
	builder.WithParam(l.widgetParam, id)
	url, err := builder.Build()
	if err != nil || url == "" {
		return fallback
	}
	return url
}

// Group and Builder panic on unknown names, so lookups recover and report an
// error instead.
func (l *NavLinker) lookupGroup() (group *urlkit.Group, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gallery: unknown route group %q: %v", l.group, r)
		}
	}()
	group = l.manager.Group(l.group)
	return group, nil
}

func (l *NavLinker) safeBuilder(group *urlkit.Group) (builder *urlkit.Builder, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gallery: unknown route %q: %v", l.widgetRoute, r)
		}
	}()
	builder = group.Builder(l.widgetRoute)
	return builder, nil
}
