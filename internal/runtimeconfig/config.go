package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrGalleryFeatureRequired indicates gallery options were set while the
// gallery feature stayed disabled.
var ErrGalleryFeatureRequired = errors.New("yoastseo config: gallery feature must be enabled to configure the gallery")

// ErrDefaultLocaleRequired ensures translation lookups always have an anchor locale.
var ErrDefaultLocaleRequired = errors.New("yoastseo config: default locale is required when i18n is enabled")
var ErrLocalesRequired = errors.New("yoastseo config: at least one locale is required when i18n is enabled")
var ErrHeadingLevelInvalid = errors.New("yoastseo config: title heading levels must be between 1 and 6")
var ErrLoggingProviderRequired = errors.New("yoastseo config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("yoastseo config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("yoastseo config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("yoastseo config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled       bool
	DefaultLocale string
	I18N          I18NConfig
	Instructions  InstructionConfig
	Gallery       GalleryConfig
	Navigation    NavigationConfig
	Features      Features
	Logging       LoggingConfig
}

// I18NConfig wires the embedded message catalog.
type I18NConfig struct {
	Enabled bool
	Locales []string
}

// InstructionConfig carries per-instruction overrides applied when the
// default registry is built.
type InstructionConfig struct {
	Title TitleInstructionConfig
}

// TitleInstructionConfig overrides the title check defaults.
type TitleInstructionConfig struct {
	AttributeKey  string
	FieldLabel    string
	HeadingLevels []int
}

// GalleryConfig captures configuration for the widget gallery shell.
type GalleryConfig struct {
	Theme         string
	ThemeVariant  string
	InitialWidget string
	BaseURL       string
}

// NavigationConfig captures routing configuration for gallery URL resolution.
type NavigationConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based link builder.
type URLKitResolverConfig struct {
	DefaultGroup string
	WidgetRoute  string
	WidgetParam  string
}

// Features toggles module functionality.
type Features struct {
	Gallery          bool
	SchemaValidation bool
	Logger           bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for an embedding editor host.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		I18N: I18NConfig{
			Enabled: true,
			Locales: []string{"en"},
		},
		Instructions: InstructionConfig{
			Title: TitleInstructionConfig{
				AttributeKey:  "title",
				FieldLabel:    "Title",
				HeadingLevels: []int{1, 2, 3, 4, 5, 6},
			},
		},
		Gallery: GalleryConfig{
			BaseURL: "http://localhost:8091",
		},
		Navigation: NavigationConfig{},
		Features:   Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if !cfg.Features.Gallery {
		if strings.TrimSpace(cfg.Gallery.Theme) != "" || strings.TrimSpace(cfg.Gallery.InitialWidget) != "" {
			return ErrGalleryFeatureRequired
		}
	}
	if cfg.I18N.Enabled {
		if strings.TrimSpace(cfg.DefaultLocale) == "" {
			return ErrDefaultLocaleRequired
		}
		if len(cfg.I18N.Locales) == 0 {
			return ErrLocalesRequired
		}
	}
	for _, level := range cfg.Instructions.Title.HeadingLevels {
		if level < 1 || level > 6 {
			return fmt.Errorf("%w: %d", ErrHeadingLevelInvalid, level)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
