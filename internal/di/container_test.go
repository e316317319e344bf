package di_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/almanaclabs/yoastseo/internal/a11y"
	"github.com/almanaclabs/yoastseo/internal/blocks"
	"github.com/almanaclabs/yoastseo/internal/di"
	"github.com/almanaclabs/yoastseo/internal/i18n"
	"github.com/almanaclabs/yoastseo/internal/runtimeconfig"
)

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Gallery.Theme = "base"

	_, err := di.NewContainer(cfg)
	if !errors.Is(err, runtimeconfig.ErrGalleryFeatureRequired) {
		t.Fatalf("expected ErrGalleryFeatureRequired, got %v", err)
	}
}

func TestNewContainerDefaultGraph(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if container.Instructions() == nil {
		t.Fatal("expected the instruction table wired")
	}
	if container.Widgets() == nil {
		t.Fatal("expected the widget catalog wired")
	}
	if container.Gallery() != nil {
		t.Fatal("gallery must stay nil while the feature is disabled")
	}
	if container.I18NService() == nil {
		t.Fatal("expected a translation service")
	}
	if container.LoggerProvider() != nil {
		t.Fatal("logging provider must stay nil while the feature is disabled")
	}
}

func TestNewContainerGalleryEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Gallery = true
	cfg.Gallery.Theme = "base"
	cfg.Gallery.ThemeVariant = "dark"
	cfg.Gallery.InitialWidget = "search-results"

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	shell := container.Gallery()
	if shell == nil {
		t.Fatal("expected the gallery shell wired")
	}
	if shell.Active() != "search-results" {
		t.Fatalf("expected initial widget active, got %q", shell.Active())
	}

	html, err := shell.RenderHTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, `data-theme="base"`) {
		t.Fatalf("expected themed page, got:\n%s", html)
	}
}

func TestNewContainerTitleOverrides(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Instructions.Title.AttributeKey = "heading"
	cfg.Instructions.Title.FieldLabel = "Heading"

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	subject := blocks.NewInstance("title", map[string]any{"heading": "  "})
	result := container.Instructions().ValidateBlock(subject, "en")
	if result.Status != blocks.StatusMissingRequiredAttribute {
		t.Fatalf("expected missing attribute, got %v", result.Status)
	}
	if result.Message != "Heading has been left empty." {
		t.Fatalf("unexpected message %q", result.Message)
	}
}

func TestNewContainerIDGeneratorOverride(t *testing.T) {
	fixed := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	container, err := di.NewContainer(
		runtimeconfig.DefaultConfig(),
		di.WithIDGenerator(func() uuid.UUID { return fixed }),
	)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	instance := container.NewBlockInstance("title", nil)
	if instance.ClientID != fixed {
		t.Fatalf("expected injected id, got %s", instance.ClientID)
	}
}

func TestNewContainerAnnouncerOverride(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Gallery = true

	region := a11y.NewLiveRegion(4)
	container, err := di.NewContainer(cfg, di.WithAnnouncer(region))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if container.Announcer() != region {
		t.Fatal("expected the supplied announcer to win")
	}
}

func TestNewContainerI18NDisabledUsesNoOp(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.I18N.Enabled = false

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	tr := container.I18NService().Translator()
	got, err := tr.Translate("en", "search.no_results")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "search.no_results" {
		t.Fatalf("expected the key echoed back, got %q", got)
	}
}

func TestNewContainerI18NServiceOverride(t *testing.T) {
	svc := i18n.NewNoOpService()
	container, err := di.NewContainer(runtimeconfig.DefaultConfig(), di.WithI18NService(svc))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if container.I18NService() != svc {
		t.Fatal("expected the supplied service to win")
	}
}

func TestNewContainerLoggingProviderValidation(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	_, err := di.NewContainer(cfg)
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestNewContainerSchemaValidationFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.SchemaValidation = true

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	bad := container.NewBlockInstance("yoast/title", map[string]any{"title": true})
	result := container.Instructions().ValidateBlock(bad, "en")
	if result.Status != blocks.StatusInvalid {
		t.Fatalf("expected schema violation, got %v (%q)", result.Status, result.Message)
	}
	if result.Message == "" {
		t.Fatal("schema failures must carry a message")
	}

	good := container.NewBlockInstance("yoast/title", map[string]any{"title": "Hello"})
	if res := container.Instructions().ValidateBlock(good, "en"); res.Status != blocks.StatusValid {
		t.Fatalf("expected valid, got %v (%q)", res.Status, res.Message)
	}
}

func TestNewContainerSchemaValidationDisabled(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	// Without the feature, a non-string title falls through to the title
	// instruction, which treats it as a missing attribute.
	subject := container.NewBlockInstance("yoast/title", map[string]any{"title": true})
	result := container.Instructions().ValidateBlock(subject, "en")
	if result.Status != blocks.StatusMissingRequiredAttribute {
		t.Fatalf("expected missing attribute, got %v", result.Status)
	}
}

func TestNewContainerMintsStableClientIDs(t *testing.T) {
	first, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	second, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	a1 := first.NewBlockInstance("yoast/title", nil)
	a2 := first.NewBlockInstance("yoast/title", nil)
	b1 := second.NewBlockInstance("yoast/title", nil)
	b2 := second.NewBlockInstance("yoast/title", nil)

	if a1.ClientID == uuid.Nil || a2.ClientID == uuid.Nil {
		t.Fatal("expected non-nil client ids")
	}
	if a1.ClientID == a2.ClientID {
		t.Fatal("successive mints must differ")
	}
	if a1.ClientID != b1.ClientID || a2.ClientID != b2.ClientID {
		t.Fatal("expected the same mint sequence across containers")
	}
}

func TestNewContainerFiltersCatalogLocales(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.I18N.Locales = []string{"en"}

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	// Spanish is not configured, so lookups fall back to the default locale.
	got, err := container.I18NService().Translator().Translate("es", "search.no_results")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "No results found." {
		t.Fatalf("expected default-locale fallback, got %q", got)
	}
}

func TestNewContainerConsoleLogging(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "debug"

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.LoggerProvider() == nil {
		t.Fatal("expected a console logging provider")
	}
}
