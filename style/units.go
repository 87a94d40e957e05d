package style

import (
	"regexp"
	"strings"

	"github.com/npillmayer/pagebuilder/page"
)

// pxProperties lists the properties for which bare numbers are lengths in
// pixels. lineHeight, opacity, zIndex, fontWeight, flexGrow, flexShrink and
// order are unitless in CSS and must stay out of this list.
var pxProperties = map[string]bool{
	"fontSize":      true,
	"padding":       true,
	"paddingTop":    true,
	"paddingRight":  true,
	"paddingBottom": true,
	"paddingLeft":   true,
	"margin":        true,
	"marginTop":     true,
	"marginRight":   true,
	"marginBottom":  true,
	"marginLeft":    true,
	"width":         true,
	"height":        true,
	"minWidth":      true,
	"maxWidth":      true,
	"minHeight":     true,
	"maxHeight":     true,
	"top":           true,
	"right":         true,
	"bottom":        true,
	"left":          true,
	"borderRadius":  true,
	"borderWidth":   true,
	"letterSpacing": true,
	"wordSpacing":   true,
	"gap":           true,
	"rowGap":        true,
	"columnGap":     true,
	"outlineWidth":  true,
	"outlineOffset": true,
	"textIndent":    true,
}

// IsPixelProperty is true if bare numbers for property key are suffixed
// with "px".
func IsPixelProperty(key string) bool {
	return pxProperties[key]
}

var unitPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)(px|em|rem|%|pt)$`)

// HasUnit is true if s is a number with a recognized CSS unit
// (px, em, rem, %, pt).
func HasUnit(s string) bool {
	return unitPattern.MatchString(strings.TrimSpace(s))
}

// Length converts a value into a CSS length. Numbers and plain numeric
// strings get unit u appended (px if u is empty); strings already carrying a
// unit, keywords and expressions are returned as they are.
func Length(x any, u string) Property {
	if u == "" {
		u = "px"
	}
	switch t := x.(type) {
	case nil, bool:
		return NullStyle
	case string:
		s := Sanitize(t)
		if s == "" || HasUnit(s) {
			return Property(s)
		}
		if f, ok := page.AsNumber(s); ok {
			return Property(page.FormatNumber(f) + u)
		}
		return Property(s)
	}
	if f, ok := page.AsNumber(x); ok {
		return Property(page.FormatNumber(f) + u)
	}
	return NullStyle
}

var dangerous = []string{"javascript:", "expression:", "expression(", "vbscript:"}

// Sanitize guards against script injection through style values. Values
// starting with javascript: or expression: (case-insensitive, possibly
// wrapped in url(...)) yield the empty string; all other values are returned
// trimmed.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	head := strings.ToLower(s)
	head = strings.TrimPrefix(head, "url(")
	head = strings.TrimLeft(head, "\"' ")
	for _, d := range dangerous {
		if strings.HasPrefix(head, d) {
			tracer().Debugf("sanitized style value %.30q", s)
			return ""
		}
	}
	return s
}
