package wml

import "strings"

// NormalizeColor canonicalizes a color value: surrounding space and a
// leading '#' are removed and hex digits are upper-cased. "auto" becomes
// "AUTO".
func NormalizeColor(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	return strings.ToUpper(s)
}

// IsHexColor reports whether s is a 6-hex-digit color, ignoring case and a
// leading '#'.
func IsHexColor(s string) bool {
	s = NormalizeColor(s)
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// SameColor compares two colors case-insensitively.
func SameColor(a, b string) bool {
	return NormalizeColor(a) == NormalizeColor(b)
}

// StyleKey maps a style id or display name to a comparison key, so that
// "List Paragraph" and "ListParagraph" compare equal.
func StyleKey(style string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(style), " ", ""))
}

// SameStyle reports whether two style ids or names refer to the same style.
func SameStyle(a, b string) bool {
	return StyleKey(a) == StyleKey(b)
}

// headingLevels maps built-in heading style keys to heading levels.
var headingLevels = map[string]int{
	"heading1": 1, "heading2": 2, "heading3": 3,
	"heading4": 4, "heading5": 5, "heading6": 6,
	"heading7": 7, "heading8": 8, "heading9": 9,
	"title": 1,
}

// HeadingLevel returns the heading level of a built-in heading style, or 0.
func HeadingLevel(style string) int {
	return headingLevels[StyleKey(style)]
}

// IsHeadingStyle reports whether the style is a built-in heading style.
func IsHeadingStyle(style string) bool {
	return HeadingLevel(style) > 0
}
