package gallery

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

//go:embed themes/*.yaml
var themeFS embed.FS

// ThemeContext is the resolved theme handed to templates: the selection's
// flattened tokens plus the CSS custom properties derived from them.
type ThemeContext struct {
	Name    string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string
}

// InlineStyle renders the CSS custom properties as a deterministic style
// attribute payload.
func (t ThemeContext) InlineStyle() string {
	if len(t.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(t.CSSVars))
	for key := range t.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&sb, "%s: %s; ", key, t.CSSVars[key])
	}
	return strings.TrimSpace(sb.String())
}

// ThemeSelector resolves theme selections against the embedded manifests.
type ThemeSelector struct {
	registry       *gotheme.MemoryRegistry
	defaultTheme   string
	defaultVariant string
}

// NewThemeSelector loads every embedded manifest into a go-theme registry.
func NewThemeSelector(defaultTheme, defaultVariant string) (*ThemeSelector, error) {
	registry := gotheme.NewRegistry()

	entries, err := fs.Glob(themeFS, "themes/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("gallery: glob theme manifests: %w", err)
	}
	for _, entry := range entries {
		data, err := themeFS.ReadFile(entry)
		if err != nil {
			return nil, fmt.Errorf("gallery: read theme manifest %s: %w", entry, err)
		}
		var manifest gotheme.Manifest
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("gallery: decode theme manifest %s: %w", entry, err)
		}
		if strings.TrimSpace(manifest.Name) == "" {
			return nil, fmt.Errorf("gallery: theme manifest %s has no name", entry)
		}
		if err := registry.Register(&manifest); err != nil {
			return nil, fmt.Errorf("gallery: register theme %s: %w", manifest.Name, err)
		}
	}

	if strings.TrimSpace(defaultTheme) == "" {
		defaultTheme = "base"
	}
	return &ThemeSelector{
		registry:       registry,
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}, nil
}

// Selection resolves a theme/variant pair, falling back to the configured
// defaults when either is empty.
func (s *ThemeSelector) Selection(name, variant string) (ThemeContext, error) {
	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   s.defaultTheme,
		DefaultVariant: s.defaultVariant,
	}

	resolvedName := strings.TrimSpace(name)
	if resolvedName == "" {
		resolvedName = s.defaultTheme
	}
	resolvedVariant := strings.TrimSpace(variant)
	if resolvedVariant == "" {
		resolvedVariant = s.defaultVariant
	}

	selection, err := selector.Select(resolvedName, resolvedVariant)
	if err != nil {
		return ThemeContext{}, fmt.Errorf("gallery: select theme %s: %w", resolvedName, err)
	}

	return ThemeContext{
		Name:    selection.Theme,
		Variant: selection.Variant,
		Tokens:  selection.Tokens(),
		CSSVars: selection.CSSVariables(""),
	}, nil
}
