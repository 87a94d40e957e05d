/*
Package builder holds the editing state of a page: the current document,
its undo history, the selected node and the autosave machinery.

A Controller wraps the immutable tree algebra of package page. Every
operation which changes the document produces a new root, which becomes
current and is pushed onto a linear history; pushing discards any redo
tail. Undo and redo move through the history without creating entries.
Operations which leave the document unchanged (unknown ids, attempts to
remove the root, moves into a node's own sub-tree) do not create history
entries.

Selection follows the operations: inserted, duplicated and moved nodes
become selected, removing the selected node (or an ancestor of it) clears
the selection, and undo and redo always clear it.

Autosave

Each change notifies an Autosaver, which saves the document after a period
of quiescence. Explicit saves bypass the delay. Saves of the same document
version are coalesced, and saves never run concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builder

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pb.builder'.
func tracer() tracing.Trace {
	return tracing.Select("pb.builder")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = "builder: " + msg
		tracer().Errorf(msg, msgargs...)
		panic("assertion failed")
	}
}
