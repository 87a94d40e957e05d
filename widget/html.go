package widget

import (
	"strings"

	"github.com/npillmayer/pagebuilder/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Helpers to construct HTML fragments, shared by renderers.

// El creates an element node.
func El(a atom.Atom, attrs ...html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for _, at := range attrs {
		if at.Key != "" {
			n.Attr = append(n.Attr, at)
		}
	}
	return n
}

// Attr creates an attribute. Attributes with an empty value are dropped by
// El, except for boolean attributes created by Flag.
func Attr(key, val string) html.Attribute {
	if val == "" {
		return html.Attribute{}
	}
	return html.Attribute{Key: key, Val: val}
}

// Flag creates a boolean attribute, e.g. "controls".
func Flag(key string) html.Attribute {
	return html.Attribute{Key: key}
}

// StyleAttr creates a style attribute from declarations.
func StyleAttr(d style.Declarations) html.Attribute {
	return Attr("style", d.CSS())
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Append appends children to parent, skipping nil children, and returns parent.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, ch := range children {
		if ch != nil {
			parent.AppendChild(ch)
		}
	}
	return parent
}

// GetAttr returns the value of an attribute of n, or "".
func GetAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets an attribute of n, replacing an existing one. Empty values
// remove the attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			if val == "" {
				n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			} else {
				n.Attr[i].Val = val
			}
			return
		}
	}
	if val != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	}
}

// AddClass adds CSS classes to n. Classes already present are not repeated.
func AddClass(n *html.Node, classes ...string) {
	have := strings.Fields(GetAttr(n, "class"))
	for _, cs := range classes {
		for _, c := range strings.Fields(cs) {
			if !contains(have, c) {
				have = append(have, c)
			}
		}
	}
	SetAttr(n, "class", strings.Join(have, " "))
}

// HasClass is true if n carries class c.
func HasClass(n *html.Node, c string) bool {
	return contains(strings.Fields(GetAttr(n, "class")), c)
}

func contains(l []string, s string) bool {
	for _, x := range l {
		if x == s {
			return true
		}
	}
	return false
}

// SafeURL returns u, or "" if u would execute script when followed.
func SafeURL(u string) string {
	u = style.Sanitize(u)
	if strings.HasPrefix(strings.ToLower(u), "data:text/html") {
		return ""
	}
	return u
}
