package i18n

import (
	"errors"
	"fmt"
	"strings"

	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

// ErrMissingTranslation reports a key absent from every candidate locale.
// The raw key is still returned as the value so callers can render something.
var ErrMissingTranslation = errors.New("i18n: missing translation")

var ErrDefaultLocaleRequired = errors.New("i18n: default locale is required")

type Service interface {
	interfaces.LocaleService
}

// ServiceOption customizes a catalog service at construction.
type ServiceOption func(*catalogService)

// WithMissingTranslationHandler installs a handler invoked when a key is
// absent from every candidate locale. Its return value becomes the
// translation and the miss is no longer reported as an error.
func WithMissingTranslationHandler(handler interfaces.MissingTranslationHandler) ServiceOption {
	return func(s *catalogService) {
		s.missing = handler
	}
}

// NewCatalogService builds a translator over an in-memory locale -> key ->
// template table. Lookups walk locale, its regional parent (es-mx -> es),
// then the default locale before giving up. When the config lists locales,
// the table keeps only those plus the default locale.
func NewCatalogService(cfg Config, translations map[string]map[string]string, opts ...ServiceOption) (Service, error) {
	defaultLocale := normalizeLocale(cfg.DefaultLocale)
	if defaultLocale == "" {
		return nil, ErrDefaultLocaleRequired
	}

	allowed := localeFilter(cfg.Locales, defaultLocale)
	table := make(map[string]map[string]string, len(translations))
	for locale, messages := range translations {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if allowed != nil && !allowed[normalized] {
			continue
		}
		copied := make(map[string]string, len(messages))
		for key, template := range messages {
			copied[key] = template
		}
		table[normalized] = copied
	}

	service := &catalogService{
		defaultLocale: defaultLocale,
		table:         table,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(service)
		}
	}
	return service, nil
}

// localeFilter builds the allowed-locale set. An empty list keeps everything.
func localeFilter(locales []string, defaultLocale string) map[string]bool {
	if len(locales) == 0 {
		return nil
	}
	allowed := make(map[string]bool, len(locales)+1)
	allowed[defaultLocale] = true
	for _, locale := range locales {
		if normalized := normalizeLocale(locale); normalized != "" {
			allowed[normalized] = true
		}
	}
	return allowed
}

// NewDefaultService builds a catalog service from the embedded fixture,
// keeping the supplied default locale when the fixture does not set one.
func NewDefaultService(defaultLocale string, opts ...ServiceOption) (Service, error) {
	fixture, err := DefaultFixture()
	if err != nil {
		return nil, err
	}
	cfg := fixture.Config
	if normalizeLocale(defaultLocale) != "" {
		cfg.DefaultLocale = defaultLocale
	}
	return NewCatalogService(cfg, fixture.Translations, opts...)
}

type catalogService struct {
	defaultLocale string
	table         map[string]map[string]string
	missing       interfaces.MissingTranslationHandler
}

var _ Service = (*catalogService)(nil)

func (s *catalogService) Translator() interfaces.Translator {
	return s
}

func (s *catalogService) DefaultLocale() string {
	return s.defaultLocale
}

func (s *catalogService) Direction(locale string) interfaces.TextDirection {
	return Direction(locale)
}

func (s *catalogService) Translate(locale, key string, args ...any) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrMissingTranslation)
	}

	for _, candidate := range s.candidates(locale) {
		messages, ok := s.table[candidate]
		if !ok {
			continue
		}
		template, ok := messages[key]
		if !ok {
			continue
		}
		if len(args) == 0 {
			return template, nil
		}
		return fmt.Sprintf(template, args...), nil
	}

	err := fmt.Errorf("%w: %s", ErrMissingTranslation, key)
	if s.missing != nil {
		return s.missing(locale, key, args, err), nil
	}
	return key, err
}

// candidates returns the fallback chain for a locale, most specific first,
// without duplicates.
func (s *catalogService) candidates(locale string) []string {
	chain := make([]string, 0, 3)
	seen := map[string]bool{}
	push := func(candidate string) {
		if candidate == "" || seen[candidate] {
			return
		}
		seen[candidate] = true
		chain = append(chain, candidate)
	}

	normalized := normalizeLocale(locale)
	push(normalized)
	if idx := strings.IndexByte(normalized, '-'); idx > 0 {
		push(normalized[:idx])
	}
	push(s.defaultLocale)
	return chain
}

func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	return strings.ReplaceAll(locale, "_", "-")
}

// Message resolves a catalog key and falls back to formatting the provided
// template when the key is missing everywhere. Widgets use it so rendering
// survives a pruned catalog.
func Message(tr interfaces.Translator, locale, key, fallback string, args ...any) string {
	if tr != nil {
		if msg, err := tr.Translate(locale, key, args...); err == nil {
			return msg
		}
	}
	if len(args) == 0 {
		return fallback
	}
	return fmt.Sprintf(fallback, args...)
}

// NoOpService echoes keys back. It stands in when i18n is disabled.
type NoOpService struct{}

func NewNoOpService() Service {
	return NoOpService{}
}

func (NoOpService) Translator() interfaces.Translator {
	return noopTranslator{}
}

func (NoOpService) DefaultLocale() string {
	return ""
}

func (NoOpService) Direction(locale string) interfaces.TextDirection {
	return Direction(locale)
}

type noopTranslator struct{}

func (noopTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	return key, nil
}
