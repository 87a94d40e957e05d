/*
Package widget holds the registry of widget types a page may contain.

A widget type (e.g. "heading" or "image") is defined by a Widget value:
display name, icon, category, a Renderer producing HTML for a widget node,
a Schema describing its configuration fields and a set of default props.
Widget types are registered once, usually at process start, into an
explicitly constructed Registry, which is then handed to renderers and
editors. There is no package-level registry.

Lookups for unknown widget types never fail: they return nil renderers and
empty schemas and defaults, and clients are expected to treat an unregistered
widget as a regular state (renderers show a placeholder).

Re-registering a widget type replaces the former definition. As this is
usually a mistake, it is traced; registries created with option Strict
refuse re-registration with ErrDuplicate instead.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pb.widget'.
func tracer() tracing.Trace {
	return tracing.Select("pb.widget")
}
