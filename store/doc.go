/*
Package store defines how page documents are persisted.

A persisted page is a Record: the list of top-level sections of the page
plus metadata. The root node of a page tree is never persisted; Encode drops
it and Decode synthesizes a fresh one. Stored sections may be in the current
tree format or in the legacy flat format (sections → columns → widgets);
Decode detects the format and migrates legacy documents transparently.

Stores are addressed by page name. Two implementations are provided: Memory
keeps records in process memory, Files keeps one JSON file per page in a
directory.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package store

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pb.store'.
func tracer() tracing.Trace {
	return tracing.Select("pb.store")
}
