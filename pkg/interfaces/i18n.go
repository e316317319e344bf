package interfaces

type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler supplies the value returned when a key resolves
// in no candidate locale. Translation services accept one as an option.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// TextDirection is the writing direction of a locale's script.
type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

// Opposite returns the flipped direction.
func (d TextDirection) Opposite() TextDirection {
	if d == DirectionRTL {
		return DirectionLTR
	}
	return DirectionRTL
}

type LocaleService interface {
	Translator() Translator
	DefaultLocale() string
	Direction(locale string) TextDirection
}
