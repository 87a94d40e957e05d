/*
Package render turns a page tree into an HTML node tree.

Rendering dispatches on node kind:

    root     →  div.pb-canvas, a plain container for the sections
    section  →  section.pb-section with an inner flex container
    column   →  div.pb-column, a flex column holding widgets
    widget   →  div.pb-widget wrapping the output of the widget's renderer

Nodes of unknown kind render nothing, together with their sub-trees. The
canonical nesting root → section → column → widget is not enforced; any
kind may contain any other.

Styles are resolved for the canvas' device and lowered to inline style
attributes. Advanced settings cssClass, cssId and customCss apply to every
element.

Editor and published mode differ in two respects. In editor mode elements
carry data attributes (node id, kind) for the editing surface, the selected
node is marked and columns are drop targets. Nodes hidden on the current
device are still rendered in editor mode, dimmed and with an indicator, so
that they can be selected and un-hidden. A published rendering omits them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pb.render'.
func tracer() tracing.Trace {
	return tracing.Select("pb.render")
}
