package style

import (
	"net/url"
	"sort"
	"strings"

	"github.com/npillmayer/pagebuilder/page"
)

// Defaults for background URL rewriting.
const (
	DefaultDevOrigin = "http://localhost:5000"
	DefaultAPIPrefix = "/api/"
)

// Lowerer converts structured style values into flat CSS declarations.
//
// Origin is the public origin of the site; relative background images
// pointing into APIPrefix are made absolute against it. If Origin is a
// localhost address, DevOrigin is used instead, as assets are then served by
// a development server. With an empty Origin, relative URLs are left as
// they are.
type Lowerer struct {
	Origin    string
	DevOrigin string
	APIPrefix string
}

// Lower converts style values into declarations, using a Lowerer with
// default settings.
func Lower(v page.Values) Declarations {
	return (&Lowerer{}).Lower(v)
}

// Lower converts style values into declarations. Keys are processed in
// sorted order, so for colliding keys (e.g. "color" and "textColor") the
// outcome is deterministic.
func (l *Lowerer) Lower(v page.Values) Declarations {
	decl := Declarations{}
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		val := v[key]
		if val == nil {
			continue
		}
		sub := page.AsValues(val)
		switch key {
		case "padding":
			if sub != nil {
				decl.Merge(BuildPadding(sub))
				continue
			}
		case "margin":
			if sub != nil {
				decl.Merge(BuildMargin(sub))
				continue
			}
		case "border":
			if sub != nil {
				decl.Merge(BuildBorder(sub))
				continue
			}
		case "shadow", "boxShadow":
			if sub != nil {
				decl.Set("boxShadow", BuildShadow(sub))
			} else {
				decl.Set("boxShadow", l.value("boxShadow", val))
			}
			continue
		case "background":
			if sub != nil {
				decl.Merge(l.BuildBackground(sub))
				continue
			}
		case "typography":
			if sub != nil {
				decl.Merge(BuildTypography(sub))
			}
			continue
		case "backgroundImage":
			if s, ok := val.(string); ok {
				decl.Set(key, l.BackgroundURL(s))
			}
			continue
		case "textColor":
			decl.Set("color", l.value("color", val))
			continue
		case "bgColor":
			decl.Set("backgroundColor", l.value("backgroundColor", val))
			continue
		case "hoverColor", "textHoverColor":
			decl.Set("--hover-color", l.value("color", val))
			continue
		case "hoverBgColor":
			decl.Set("--hover-bg-color", l.value("backgroundColor", val))
			continue
		}
		decl.Set(key, l.value(key, val))
	}
	return decl
}

// value converts a single scalar or color value for property key.
func (l *Lowerer) value(key string, val any) Property {
	switch t := val.(type) {
	case nil, bool:
		return NullStyle
	case string:
		s := Sanitize(t)
		if IsPixelProperty(key) {
			return Length(s, "px")
		}
		return Property(s)
	}
	if sub := page.AsValues(val); sub != nil {
		return Color(sub)
	}
	if f, ok := page.AsNumber(val); ok {
		if IsPixelProperty(key) {
			return Property(page.FormatNumber(f) + "px")
		}
		return Property(page.FormatNumber(f))
	}
	tracer().Debugf("style value for %q of type %T dropped", key, val)
	return NullStyle
}

// BackgroundURL converts an image reference into a CSS url() value. Relative
// references into the API path are rewritten to absolute URLs.
func (l *Lowerer) BackgroundURL(s string) Property {
	s = Sanitize(s)
	if s == "" {
		return NullStyle
	}
	if strings.Contains(s, "gradient(") {
		return Property(s)
	}
	ref := s
	wrapped := strings.HasPrefix(strings.ToLower(s), "url(") && strings.HasSuffix(s, ")")
	if wrapped {
		ref = strings.Trim(s[4:len(s)-1], "\"' ")
	}
	prefix := l.APIPrefix
	if prefix == "" {
		prefix = DefaultAPIPrefix
	}
	if strings.HasPrefix(ref, prefix) {
		if origin := l.origin(); origin != "" {
			ref = origin + ref
			wrapped = false
		}
	}
	if wrapped {
		return Property(s)
	}
	return Property(`url("` + strings.ReplaceAll(ref, `"`, `\"`) + `")`)
}

// origin returns the origin to prepend to relative URLs, without trailing slash.
func (l *Lowerer) origin() string {
	if l.Origin == "" {
		return ""
	}
	o := l.Origin
	if u, err := url.Parse(o); err == nil && isLocalhost(u.Hostname()) {
		o = l.DevOrigin
		if o == "" {
			o = DefaultDevOrigin
		}
	}
	return strings.TrimRight(o, "/")
}

func isLocalhost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
