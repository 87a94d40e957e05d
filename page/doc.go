/*
Package page implements the document model of the page builder: a tree of
layout and widget nodes, together with an algebra of immutable edit operations.

Overview

A page is a tree of nodes. Exactly one node is of kind root; below it live
sections, sections hold columns, columns hold widgets. This canonical nesting
is expected but not enforced, renderers cope with other shapes.

Nodes are treated as immutable values. Every edit operation takes a root and
returns a root: a new one if the edit succeeded, the identical input root if it
did not (unknown ids, attempts to remove the root, indices out of range).
Callers detect success by comparing root pointers:

    r2 := page.Insert(r1, "col-1", page.NewWidget("heading", nil), -1)
    if r2 != r1 {
        // inserted
    }

Edits rebuild only the nodes on the path from the root to the edit position.
All sibling sub-trees are shared between the old and the new root, making each
edit cost O(depth) allocations instead of O(size). Old roots stay valid
snapshots, which is what undo/redo histories build on.

Clients must never modify a node (or its value maps) in place once it is part
of a tree. Use Update or build new nodes with the factory functions.

Ids

Node ids are expected to be unique within a document. Find resolves duplicates
by returning the first match in pre-order. Insert does not check the inserted
node's id for collisions; that is the caller's responsibility. Validate reports
duplicate ids.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package page

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pb.page'.
func tracer() tracing.Trace {
	return tracing.Select("pb.page")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("page: "+msg, msgargs...)
		panic(msg)
	}
}
