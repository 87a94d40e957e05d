/*
Package style computes effective styles for page nodes and lowers them into
flat CSS declarations.

Resolution

Every node carries desktop baseline values (props, style, advanced) plus
optional partial overrides for tablet and mobile. Resolving a node for a
device overlays that device's override onto the baseline, key by key. The
overlay is exactly one level deep: an override of a structured value such as
padding replaces the whole structure, it is never merged field by field. Mobile
does not inherit tablet overrides; both devices fall back to desktop only.

Lowering

Style values are structured (padding as {top, right, bottom, left}, shadows,
borders, backgrounds, typography) and may carry bare numbers. Lowering turns
them into Declarations, a flat mapping from (camel-cased) CSS property names to
CSS values:

    fontSize: 16                      => fontSize: 16px
    opacity: 0.5                      => opacity: 0.5
    padding: {top:10, right:10, …}    => padding: 10px
    textColor: "red"                  => color: red
    color: "javascript:alert(1)"      => (dropped)

Lowering never fails. Values which cannot be expressed as CSS are dropped,
values carrying script injections are sanitized to empty and dropped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pb.style'.
func tracer() tracing.Trace {
	return tracing.Select("pb.style")
}
