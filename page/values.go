package page

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Values is a mapping of content, style or advanced settings of a node.
// Values may nest structured sub-values, e.g.
//
//     padding: { top: 10, right: 5, bottom: 10, left: 5 }
//
// A nil Values is a legal empty mapping.
type Values map[string]any

// Has is true if key is present, even with a nil value.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// String returns the value for key as a string. Numbers are formatted without
// trailing zeros. All other types yield the empty string.
func (v Values) String(key string) string {
	switch x := v[key].(type) {
	case string:
		return x
	case nil, bool:
		return ""
	}
	if f, ok := AsNumber(v[key]); ok {
		return FormatNumber(f)
	}
	return ""
}

// Bool returns the value for key as a flag. Strings "true", "yes", "1" and
// "on" count as set.
func (v Values) Bool(key string) bool {
	switch x := v[key].(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "1", "on":
			return true
		}
	case float64:
		return x != 0
	case int:
		return x != 0
	}
	return false
}

// Number returns the value for key as a number, if it is one or if it is a
// string holding a plain number.
func (v Values) Number(key string) (float64, bool) {
	return AsNumber(v[key])
}

// Map returns a nested mapping for key, or nil.
func (v Values) Map(key string) Values {
	return AsValues(v[key])
}

// With returns a shallow copy of v with key set to val.
func (v Values) With(key string, val any) Values {
	c := make(Values, len(v)+1)
	for k, x := range v {
		c[k] = x
	}
	c[key] = val
	return c
}

// Copy returns a shallow copy of v. The copy of a nil mapping is an empty,
// non-nil mapping.
func (v Values) Copy() Values {
	c := make(Values, len(v))
	for k, x := range v {
		c[k] = x
	}
	return c
}

// Clone returns a deep copy of v, descending into nested maps and slices.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	c := make(Values, len(v))
	for k, x := range v {
		c[k] = cloneAny(x)
	}
	return c
}

func cloneAny(x any) any {
	switch t := x.(type) {
	case Values:
		return t.Clone()
	case map[string]any:
		return map[string]any(Values(t).Clone())
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneAny(e)
		}
		return s
	}
	return x
}

// AsValues converts a nested map value into Values, or returns nil.
func AsValues(x any) Values {
	switch t := x.(type) {
	case Values:
		return t
	case map[string]any:
		return Values(t)
	}
	return nil
}

// AsNumber converts numeric values of various Go types (as produced by JSON
// or YAML decoders or by client code) to float64. Strings are accepted if they
// hold a plain number without unit.
func AsNumber(x any) (float64, bool) {
	switch t := x.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case uint:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

// FormatNumber formats f in the shortest form, e.g. 16 => "16", 0.5 => "0.5".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
