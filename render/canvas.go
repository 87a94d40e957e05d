package render

import (
	"fmt"
	"io"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/style"
	"github.com/npillmayer/pagebuilder/style/customcss"
	"github.com/npillmayer/pagebuilder/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Mode selects between rendering for the editing surface and for publishing.
type Mode int

// Render modes.
const (
	Editor Mode = iota
	Published
)

func (m Mode) String() string {
	if m == Published {
		return "published"
	}
	return "editor"
}

// ParseMode converts a string to a Mode. The empty string maps to Editor.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "editor":
		return Editor, nil
	case "published":
		return Published, nil
	}
	return Editor, fmt.Errorf("unknown render mode %q", s)
}

// DefaultBoxedWidth is the maximum content width of boxed sections, in pixels.
const DefaultBoxedWidth = 1140

// Canvas holds the parameters of a rendering.
type Canvas struct {
	Registry   *widget.Registry // widget types; nil renders all widgets as placeholders
	Lowerer    *style.Lowerer   // nil uses default settings
	Device     page.Device      // empty means desktop
	Mode       Mode
	Selected   string  // id of the selected node (editor mode)
	DragOver   string  // id of the column currently dragged over (editor mode)
	BoxedWidth float64 // default content width of boxed sections; 0 means DefaultBoxedWidth
}

// renderFunc renders a single node of a given kind.
type renderFunc func(c *Canvas, n *page.Node) (*html.Node, error)

// dispatch is the table of renderers by node kind. It has to cover every
// kind in page.Kinds.
var dispatch map[page.Kind]renderFunc

func init() {
	dispatch = map[page.Kind]renderFunc{
		page.KindRoot:    renderRoot,
		page.KindSection: renderSection,
		page.KindColumn:  renderColumn,
		page.KindWidget:  renderWidget,
	}
}

// Render renders a page tree. The result is nil if root renders nothing,
// e.g. because it has an unknown kind. Errors returned by widget renderers
// abort the rendering.
func (c *Canvas) Render(root *page.Node) (*html.Node, error) {
	return c.node(root)
}

// RenderHTML renders a page tree and writes the HTML to w.
func (c *Canvas) RenderHTML(w io.Writer, root *page.Node) error {
	h, err := c.Render(root)
	if err != nil || h == nil {
		return err
	}
	return html.Render(w, h)
}

func (c *Canvas) device() page.Device {
	if c.Device == "" {
		return page.Desktop
	}
	return c.Device
}

func (c *Canvas) lowerer() *style.Lowerer {
	if c.Lowerer == nil {
		return &style.Lowerer{}
	}
	return c.Lowerer
}

func (c *Canvas) editing() bool {
	return c.Mode == Editor
}

// node renders n and its sub-tree.
func (c *Canvas) node(n *page.Node) (*html.Node, error) {
	if n == nil {
		return nil, nil
	}
	f, ok := dispatch[n.Kind]
	if !ok {
		tracer().Debugf("no renderer for kind %q of node %s", n.Kind, n.ID)
		return nil, nil
	}
	hidden := style.IsHiddenOnDevice(n, c.device())
	if hidden && !c.editing() {
		return nil, nil
	}
	h, err := f(c, n)
	if err != nil || h == nil {
		return h, err
	}
	c.decorate(h, n, hidden)
	return h, nil
}

// children renders the children of n and appends them to parent.
func (c *Canvas) children(parent *html.Node, n *page.Node) error {
	for _, ch := range n.Children {
		h, err := c.node(ch)
		if err != nil {
			return err
		}
		widget.Append(parent, h)
	}
	return nil
}

// declarations returns the effective CSS declarations of n: its lowered
// style, overlaid by its custom CSS.
func (c *Canvas) declarations(n *page.Node) style.Declarations {
	r := style.Resolve(n, c.device())
	decl := c.lowerer().Lower(r.Style)
	return customcss.Apply(decl, r.Advanced.String("customCss"))
}

// decorate applies advanced settings and editor markers to the element
// rendered for n.
func (c *Canvas) decorate(h *html.Node, n *page.Node, hidden bool) {
	adv := style.MergeAdvanced(n, c.device())
	if class := adv.String("cssClass"); class != "" {
		widget.AddClass(h, class)
	}
	if id := adv.String("cssId"); id != "" {
		widget.SetAttr(h, "id", id)
	}
	if !c.editing() {
		return
	}
	widget.SetAttr(h, "data-node-id", n.ID)
	widget.SetAttr(h, "data-kind", n.Kind.String())
	if c.Selected != "" && c.Selected == n.ID {
		widget.AddClass(h, "pb-selected")
	}
	if hidden {
		widget.AddClass(h, "pb-hidden")
		appendStyle(h, "opacity: 0.4")
		indicator := widget.Append(
			widget.El(atom.Div, widget.Attr("class", "pb-hidden-indicator")),
			widget.Text("Hidden on this device"),
		)
		h.InsertBefore(indicator, h.FirstChild)
	}
}

func appendStyle(h *html.Node, css string) {
	if s := widget.GetAttr(h, "style"); s != "" {
		css = s + "; " + css
	}
	widget.SetAttr(h, "style", css)
}
