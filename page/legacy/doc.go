/*
Package legacy converts between the flat "sections array" documents of earlier
versions of the page builder and the node tree of package page.

Legacy documents have a fixed three-level shape:

    [ { id, type: "section", settings, style, columns: [
          { id, width, settings, style, widgets: [
              { id, type, content, style } ] } ] } ]

Converting a legacy document into a tree (ToTree) always succeeds. Converting a
tree back (FromTree) is only possible for trees of the canonical
section → column → widget shape. For those, the round trip

    ToTree(FromTree(root))

preserves node count, ids, kinds, and all props, style, advanced and responsive
values exactly. Column widths travel as a dedicated field in the legacy format
and as the column prop "width" in the tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package legacy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pb.legacy'.
func tracer() tracing.Trace {
	return tracing.Select("pb.legacy")
}
