package style

import (
	"github.com/npillmayer/pagebuilder/page"
)

// Resolved holds the effective values of a node for one device.
type Resolved struct {
	Props    page.Values
	Style    page.Values
	Advanced page.Values
}

// Resolve computes the effective props, style and advanced values of n for
// device d.
func Resolve(n *page.Node, d page.Device) Resolved {
	return Resolved{
		Props:    MergeProps(n, d),
		Style:    MergeStyle(n, d),
		Advanced: MergeAdvanced(n, d),
	}
}

// MergeStyle returns the effective style of n for device d.
func MergeStyle(n *page.Node, d page.Device) page.Values {
	return cascade(n, d, func(n *page.Node) page.Values { return n.Style },
		func(o *page.Override) page.Values { return o.Style })
}

// MergeAdvanced returns the effective advanced settings of n for device d.
func MergeAdvanced(n *page.Node, d page.Device) page.Values {
	return cascade(n, d, func(n *page.Node) page.Values { return n.Advanced },
		func(o *page.Override) page.Values { return o.Advanced })
}

// MergeProps returns the effective content props of n for device d.
func MergeProps(n *page.Node, d page.Device) page.Values {
	return cascade(n, d, func(n *page.Node) page.Values { return n.Props },
		func(o *page.Override) page.Values { return o.Props })
}

// cascade overlays the override of device d onto the desktop baseline.
// Device overrides shadow desktop key-by-key, no deep recursive merge of
// nested style sub-objects: an override for "margin" replaces the complete
// margin structure. The result is always a fresh, non-nil map.
func cascade(n *page.Node, d page.Device, base func(*page.Node) page.Values,
	over func(*page.Override) page.Values) page.Values {
	//
	if n == nil {
		return page.Values{}
	}
	m := base(n).Copy()
	o := n.Responsive.For(d)
	if o == nil {
		return m
	}
	for k, v := range over(o) {
		m[k] = v
	}
	return m
}

// hideKeys maps devices to their advanced visibility flag.
var hideKeys = map[page.Device]string{
	page.Desktop: "hideDesktop",
	page.Tablet:  "hideTablet",
	page.Mobile:  "hideMobile",
}

// IsHiddenOnDevice is true if the effective advanced settings of n for device
// d flag it as hidden, either generally or for d specifically.
func IsHiddenOnDevice(n *page.Node, d page.Device) bool {
	adv := MergeAdvanced(n, d)
	return adv.Bool("hidden") || adv.Bool(hideKeys[d])
}
