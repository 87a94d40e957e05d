/*
Package customcss interprets free-form CSS declarations which users attach
to page nodes (advanced setting "customCss"), e.g.

    color: red; border-bottom: 1px dotted #ccc !important

Declarations are parsed with douceur and converted to style.Declarations.
Values are guarded against script injection the same way lowered styles
are. Malformed input never fails; whatever douceur cannot parse is dropped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package customcss

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/pagebuilder/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pb.style'.
func tracer() tracing.Trace {
	return tracing.Select("pb.style")
}

// Parse converts a list of CSS declarations into style.Declarations with
// camel-cased keys. Declarations flagged !important keep the flag in their
// value. Later declarations for the same property win.
func Parse(text string) style.Declarations {
	decl := style.Declarations{}
	text = strings.TrimSpace(text)
	if text == "" {
		return decl
	}
	if !strings.HasSuffix(text, ";") {
		text += ";" // the parser drops the value of an unterminated last declaration
	}
	dd, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Infof("custom CSS not parseable: %v", err)
		return decl
	}
	for _, d := range dd {
		key, value := convert(d)
		decl.Set(key, value)
	}
	return decl
}

// convert is an adapter from a douceur declaration to a (key, value) pair.
func convert(d *css.Declaration) (string, style.Property) {
	key := style.CamelCase(strings.TrimSpace(d.Property))
	v := style.Sanitize(d.Value)
	if v == "" || key == "" {
		return key, style.NullStyle
	}
	if d.Important {
		v += " !important"
	}
	return key, style.Property(v)
}

// Apply merges custom declarations from text into decl, overwriting
// computed values.
func Apply(decl style.Declarations, text string) style.Declarations {
	if decl == nil {
		decl = style.Declarations{}
	}
	decl.Merge(Parse(text))
	return decl
}
