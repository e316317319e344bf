package widgets

import (
	"io"

	"github.com/almanaclabs/yoastseo/internal/render"
	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

// SearchResult is one search hit: a permalink and its display title.
type SearchResult struct {
	Permalink string
	Title     string
}

// RenderContext carries the ambient services a widget renders with. Widgets
// are pure presentational mappings over the context plus their own inputs;
// they never reach for globals.
type RenderContext struct {
	Locale     string
	Direction  interfaces.TextDirection
	Translator interfaces.Translator
	Announcer  interfaces.Announcer
	Engine     *render.Engine
	Theme      map[string]string
	Logger     interfaces.Logger
}

// RenderFunc renders a widget into w.
type RenderFunc func(w io.Writer, rc RenderContext) error

// Descriptor is one catalog entry: a stable id, the name shown in the gallery
// menu, and the render function.
type Descriptor struct {
	ID          string
	DisplayName string
	Render      RenderFunc
}
