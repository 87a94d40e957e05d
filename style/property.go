package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"
	"unicode"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsImportant is true for values flagged with !important.
func (p Property) IsImportant() bool {
	return strings.HasSuffix(strings.TrimSpace(string(p)), "!important")
}

// --- Declarations ----------------------------------------------------------

// Declarations is a flat set of CSS declarations, keyed by camel-cased
// property names ("fontSize"). Custom properties ("--hover-color") keep
// their literal name. nil is a legal empty set.
type Declarations map[string]Property

// Get returns the value for a key, or NullStyle.
func (d Declarations) Get(key string) Property {
	return d[key]
}

// Set stores a value. Empty values are not stored.
func (d Declarations) Set(key string, p Property) {
	if p.IsEmpty() {
		return
	}
	d[key] = p
}

// Merge copies all declarations of o into d, overwriting existing keys.
func (d Declarations) Merge(o Declarations) {
	for k, v := range o {
		d[k] = v
	}
}

// Without returns a copy of d lacking the given keys.
func (d Declarations) Without(keys ...string) Declarations {
	c := make(Declarations, len(d))
	for k, v := range d {
		c[k] = v
	}
	for _, k := range keys {
		delete(c, k)
	}
	return c
}

// Split partitions d into the declarations whose key satisfies pred and the rest.
func (d Declarations) Split(pred func(key string) bool) (in, out Declarations) {
	in, out = Declarations{}, Declarations{}
	for k, v := range d {
		if pred(k) {
			in[k] = v
		} else {
			out[k] = v
		}
	}
	return
}

// Keys returns the keys of d in sorted order.
func (d Declarations) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CSS formats d as the content of an inline style attribute, with
// kebab-cased property names in sorted order:
//
//     background-color: #fff; font-size: 16px
func (d Declarations) CSS() string {
	var sb strings.Builder
	for i, k := range d.Keys() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(KebabCase(k))
		sb.WriteString(": ")
		sb.WriteString(d[k].String())
	}
	return sb.String()
}

// KebabCase converts a camel-cased property name into CSS notation:
// "backgroundColor" => "background-color", "WebkitBoxShadow" =>
// "-webkit-box-shadow". Custom properties are returned unchanged.
func KebabCase(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	var sb strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 || len(key) > 1 {
				sb.WriteRune('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// CamelCase converts a CSS property name into camel case, inverting KebabCase.
func CamelCase(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var sb strings.Builder
	upper := false
	for _, r := range name {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			sb.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// --- Property Groups -------------------------------------------------------

// Symbolic names for groups of CSS properties.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGOutline   = "Outline"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGFlex      = "Flex"
	PGGrid      = "Grid"
	PGPosition  = "Position"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPrefix = []struct {
	prefix string
	group  string
}{
	{"margin", PGMargins},
	{"padding", PGPadding},
	{"border", PGBorder},
	{"outline", PGOutline},
	{"minWidth", PGDimension},
	{"maxWidth", PGDimension},
	{"minHeight", PGDimension},
	{"maxHeight", PGDimension},
	{"width", PGDimension},
	{"height", PGDimension},
	{"display", PGDisplay},
	{"float", PGDisplay},
	{"visibility", PGDisplay},
	{"flex", PGFlex},
	{"alignItems", PGFlex},
	{"alignContent", PGFlex},
	{"alignSelf", PGFlex},
	{"justifyContent", PGFlex},
	{"justifyItems", PGFlex},
	{"gap", PGFlex},
	{"rowGap", PGFlex},
	{"columnGap", PGFlex},
	{"order", PGFlex},
	{"grid", PGGrid},
	{"position", PGPosition},
	{"top", PGPosition},
	{"right", PGPosition},
	{"bottom", PGPosition},
	{"left", PGPosition},
	{"zIndex", PGPosition},
	{"color", PGColor},
	{"background", PGColor},
	{"--hover", PGColor},
	{"font", PGText},
	{"text", PGText},
	{"lineHeight", PGText},
	{"letterSpacing", PGText},
	{"wordSpacing", PGText},
	{"whiteSpace", PGText},
}

// GroupNameFromPropertyKey returns the property group name for a camel-cased
// property key.
// Example:
//    GroupNameFromPropertyKey("marginTop") => "Margins"
//
// Unknown property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	for _, g := range groupNameFromPrefix {
		if key == g.prefix {
			return g.group
		}
		if strings.HasPrefix(key, g.prefix) {
			rest := key[len(g.prefix):]
			if r := []rune(rest); len(r) > 0 && (unicode.IsUpper(r[0]) || g.prefix == "--hover") {
				return g.group
			}
		}
	}
	return PGX
}
