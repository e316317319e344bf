package yoastseo

import (
	"github.com/almanaclabs/yoastseo/internal/blocks"
	"github.com/almanaclabs/yoastseo/internal/di"
	"github.com/almanaclabs/yoastseo/internal/gallery"
	"github.com/almanaclabs/yoastseo/internal/i18n"
	"github.com/almanaclabs/yoastseo/internal/instructions"
	"github.com/almanaclabs/yoastseo/internal/widgets"
	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

// Instruction exports the pluggable block-check contract.
type Instruction = instructions.Instruction

// InstructionRegistry exports the explicit instruction table.
type InstructionRegistry = instructions.Registry

// TitleOptions exports the title check configuration.
type TitleOptions = instructions.TitleOptions

// RequiredBlockOptions exports the nested-block check configuration.
type RequiredBlockOptions = instructions.RequiredBlockOptions

// WidgetRegistry exports the gallery widget catalog.
type WidgetRegistry = widgets.Registry

// WidgetDescriptor exports one catalog entry.
type WidgetDescriptor = widgets.Descriptor

// GalleryShell exports the widget gallery shell.
type GalleryShell = gallery.Shell

// GalleryDocument exports the document the shell writes direction onto.
type GalleryDocument = gallery.Document

// LocaleService exports the translation service contract.
type LocaleService = i18n.Service

// Module is the top level runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module from the provided configuration and optional DI
// overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Instructions returns the instruction table the editor dispatches blocks to.
func (m *Module) Instructions() *InstructionRegistry {
	return m.container.Instructions()
}

// Widgets returns the widget catalog.
func (m *Module) Widgets() *WidgetRegistry {
	return m.container.Widgets()
}

// Gallery returns the gallery shell, or nil when the feature is disabled.
func (m *Module) Gallery() *GalleryShell {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Gallery()
}

// I18N returns the configured translation service.
func (m *Module) I18N() LocaleService {
	return m.container.I18NService()
}

// Announcer returns the configured accessibility announcer.
func (m *Module) Announcer() interfaces.Announcer {
	return m.container.Announcer()
}

// NewBlock mints a block instance through the module's id generator.
func (m *Module) NewBlock(name string, attributes map[string]any, inner ...*blocks.Instance) *blocks.Instance {
	return m.container.NewBlockInstance(name, attributes, inner...)
}
