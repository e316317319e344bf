package logging

import (
	"context"
	"strings"

	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

const (
	rootModule         = "yoast"
	blocksModule       = "yoast.blocks"
	instructionsModule = "yoast.instructions"
	widgetsModule      = "yoast.widgets"
	galleryModule      = "yoast.gallery"
	i18nModule         = "yoast.i18n"
)

const (
	fieldBlockKind   = "block_kind"
	fieldInstruction = "instruction"
	fieldLocale      = "locale"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// BlocksLogger returns the logger namespace reserved for block model helpers.
func BlocksLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, blocksModule)
}

// InstructionsLogger returns the logger namespace reserved for the
// instruction registry and its validators.
func InstructionsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, instructionsModule)
}

// WidgetsLogger returns the logger namespace reserved for widget rendering.
func WidgetsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, widgetsModule)
}

// GalleryLogger returns the logger namespace reserved for the gallery shell.
func GalleryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, galleryModule)
}

// I18NLogger returns the logger namespace reserved for translation lookups.
func I18NLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, i18nModule)
}

// WithValidationContext enriches the provided logger with the fields common to
// validation passes: the block kind, the instruction key, and the locale the
// messages resolve against. Empty values are ignored.
func WithValidationContext(logger interfaces.Logger, blockKind, instruction, locale string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(blockKind); trimmed != "" {
		fields[fieldBlockKind] = trimmed
	}
	if trimmed := strings.TrimSpace(instruction); trimmed != "" {
		fields[fieldInstruction] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
