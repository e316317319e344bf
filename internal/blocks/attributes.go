package blocks

import "strings"

// StringAttribute returns the named attribute when it is present and holds a
// string. Values of any other type report false: a number or object under a
// text attribute key carries no usable text.
func StringAttribute(attributes map[string]any, key string) (string, bool) {
	if len(attributes) == 0 {
		return "", false
	}
	value, ok := attributes[key]
	if !ok {
		return "", false
	}
	text, ok := value.(string)
	return text, ok
}

// BlankText reports whether trimming Unicode whitespace leaves nothing.
// unicode.IsSpace covers ASCII whitespace plus U+0085 and U+00A0, so a title
// holding only non-breaking spaces counts as blank.
func BlankText(value string) bool {
	return strings.TrimSpace(value) == ""
}
