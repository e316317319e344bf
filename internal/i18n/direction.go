package i18n

import (
	"strings"

	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

// rtlScripts lists the language subtags written right-to-left. Regional
// variants inherit from the language subtag (ar-eg -> ar).
var rtlScripts = map[string]bool{
	"ar": true,
	"dv": true,
	"fa": true,
	"he": true,
	"ps": true,
	"ur": true,
	"yi": true,
}

// Direction reports the writing direction for a locale tag. Unknown and empty
// locales default to left-to-right.
func Direction(locale string) interfaces.TextDirection {
	normalized := normalizeLocale(locale)
	if idx := strings.IndexByte(normalized, '-'); idx > 0 {
		normalized = normalized[:idx]
	}
	if rtlScripts[normalized] {
		return interfaces.DirectionRTL
	}
	return interfaces.DirectionLTR
}
