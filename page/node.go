package page

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind discriminates the structural role of a node.
type Kind string

// The node kinds of a page document.
const (
	KindRoot    Kind = "root"
	KindSection Kind = "section"
	KindColumn  Kind = "column"
	KindWidget  Kind = "widget"
)

// Kinds lists all known node kinds.
var Kinds = []Kind{KindRoot, KindSection, KindColumn, KindWidget}

// Valid reports whether k is one of the known node kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindRoot, KindSection, KindColumn, KindWidget:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// Device is a responsive breakpoint.
type Device string

// Desktop is the baseline device. Its values live in a node's base maps,
// never in Responsive.
const (
	Desktop Device = "desktop"
	Tablet  Device = "tablet"
	Mobile  Device = "mobile"
)

// Devices lists all devices, baseline first.
var Devices = []Device{Desktop, Tablet, Mobile}

// Valid reports whether d is a known device.
func (d Device) Valid() bool {
	return d == Desktop || d == Tablet || d == Mobile
}

func (d Device) String() string {
	return string(d)
}

// ParseDevice converts a string to a Device. The empty string maps to Desktop.
func ParseDevice(s string) (Device, error) {
	if s == "" {
		return Desktop, nil
	}
	d := Device(s)
	if !d.Valid() {
		return Desktop, fmt.Errorf("unknown device %q", s)
	}
	return d, nil
}

// Override is a partial set of values for one device. A nil map means
// "inherit everything from desktop", an absent key inside a map means
// "inherit this key".
type Override struct {
	Props    Values `json:"props,omitempty"`
	Style    Values `json:"style,omitempty"`
	Advanced Values `json:"advanced,omitempty"`
}

// Responsive maps the non-baseline devices (tablet, mobile) to their overrides.
type Responsive map[Device]*Override

// For returns the override for device d, or nil.
func (r Responsive) For(d Device) *Override {
	if r == nil || d == Desktop {
		return nil
	}
	return r[d]
}

// Node is one element of a page document.
type Node struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"kind"`
	WidgetType string     `json:"widgetType,omitempty"` // set for kind widget only
	Props      Values     `json:"props,omitempty"`
	Style      Values     `json:"style,omitempty"`
	Advanced   Values     `json:"advanced,omitempty"`
	Responsive Responsive `json:"responsive,omitempty"`
	Children   []*Node    `json:"children"`
}

func (n *Node) String() string {
	if n == nil {
		return "(Node nil)"
	}
	if n.Kind == KindWidget {
		return fmt.Sprintf("(%s:%s #%s ch=%d)", n.Kind, n.WidgetType, n.ID, len(n.Children))
	}
	return fmt.Sprintf("(%s #%s ch=%d)", n.Kind, n.ID, len(n.Children))
}

// IsLeaf is true for widgets. Widgets may technically carry children, but
// these are never rendered.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindWidget
}

// shallow returns a copy of n sharing all maps and the children slice.
func (n *Node) shallow() *Node {
	c := *n
	return &c
}

// UnmarshalJSON decodes a node. Persisted documents sometimes carry children
// in a non-array form (e.g. a string); such children are coerced into an empty
// list instead of failing the whole document.
func (n *Node) UnmarshalJSON(data []byte) error {
	type plain Node
	var aux struct {
		plain
		Children json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*n = Node(aux.plain)
	n.Children = nil
	raw := bytes.TrimSpace(aux.Children)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] != '[' {
		tracer().Infof("node %q: children of unexpected form %.20s, coerced to empty", n.ID, raw)
		n.Children = []*Node{}
		return nil
	}
	return json.Unmarshal(raw, &n.Children)
}
