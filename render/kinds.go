package render

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/style"
	"github.com/npillmayer/pagebuilder/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Content width modes of sections.
const (
	Boxed     = "boxed"
	FullWidth = "full_width"
)

// Custom properties exposing the box geometry of boxed sections.
const (
	VarBoxMaxWidth = "--pb-box-max-width"
	VarBoxPadding  = "--pb-box-padding-x"
)

// DefaultBoxPadding is the horizontal padding of boxed section content, in pixels.
const DefaultBoxPadding = 20

// flexKeys are layout settings read from advanced settings, then style.
var flexKeys = []string{"flexDirection", "gap", "alignItems", "justifyContent", "flexWrap"}

func renderRoot(c *Canvas, n *page.Node) (*html.Node, error) {
	div := widget.El(atom.Div, widget.Attr("class", "pb-canvas"))
	if c.editing() {
		widget.SetAttr(div, "data-device", c.device().String())
	}
	return div, c.children(div, n)
}

func renderSection(c *Canvas, n *page.Node) (*html.Node, error) {
	r := style.Resolve(n, c.device())
	decl := c.declarations(n).Without("contentWidth", "boxedWidth", "horizontalPadding")
	layout, decl := c.flexLayout(r, decl, "row")
	mode := setting(r, "contentWidth").String("contentWidth")
	if mode != FullWidth {
		mode = Boxed
	}
	inner := widget.El(atom.Div, widget.Attr("class", "pb-section-inner"))
	switch mode {
	case Boxed:
		boxed := c.BoxedWidth
		if boxed <= 0 {
			boxed = DefaultBoxedWidth
		}
		if f, ok := setting(r, "boxedWidth").Number("boxedWidth"); ok && f > 0 {
			boxed = f
		}
		pad := float64(DefaultBoxPadding)
		if f, ok := setting(r, "horizontalPadding").Number("horizontalPadding"); ok && f >= 0 {
			pad = f
		}
		decl.Set(VarBoxMaxWidth, style.Length(boxed, "px"))
		decl.Set(VarBoxPadding, style.Length(pad, "px"))
		layout.Set("maxWidth", "var("+VarBoxMaxWidth+")")
		layout.Set("marginLeft", "auto")
		layout.Set("marginRight", "auto")
		layout.Set("paddingLeft", "var("+VarBoxPadding+")")
		layout.Set("paddingRight", "var("+VarBoxPadding+")")
	case FullWidth:
		layout.Set("maxWidth", "none")
		layout.Set("padding", "0")
	}
	layout.Set("width", "100%")
	widget.SetAttr(inner, "style", layout.CSS())
	sec := widget.El(atom.Section,
		widget.Attr("class", "pb-section pb-section-"+mode),
		widget.StyleAttr(decl),
	)
	sec.AppendChild(inner)
	return sec, c.children(inner, n)
}

func renderColumn(c *Canvas, n *page.Node) (*html.Node, error) {
	r := style.Resolve(n, c.device())
	layout, decl := c.flexLayout(r, c.declarations(n), "column")
	decl.Merge(layout)
	if w := r.Props["width"]; w != nil {
		width := style.Length(w, "%")
		decl.Set("flexBasis", width)
		decl.Set("maxWidth", width)
		decl.Set("flexGrow", "0")
		decl.Set("flexShrink", "0")
	} else {
		decl.Set("flex", "1 1 0")
	}
	div := widget.El(atom.Div, widget.Attr("class", "pb-column"), widget.StyleAttr(decl))
	if c.editing() {
		widget.SetAttr(div, "data-drop-target", "true")
		if c.DragOver != "" && c.DragOver == n.ID {
			widget.AddClass(div, "pb-drag-over")
		}
		if len(n.Children) == 0 {
			widget.Append(div, widget.Append(
				widget.El(atom.Div, widget.Attr("class", "pb-column-empty")),
				widget.Text("Drop widgets here"),
			))
		}
	}
	return div, c.children(div, n)
}

// flexLayout extracts flex layout settings of a section or column, looked up
// in advanced settings first and in style second. It returns the flex
// declarations and decl without them.
func (c *Canvas) flexLayout(r style.Resolved, decl style.Declarations, dir string) (
	style.Declarations, style.Declarations) {
	//
	layout := style.Declarations{"display": "flex", "flexDirection": style.Property(dir)}
	lowered := c.lowerer().Lower(pick(r, flexKeys...))
	layout.Merge(lowered)
	return layout, decl.Without(flexKeys...)
}

// setting returns the values holding key, advanced settings before style.
func setting(r style.Resolved, key string) page.Values {
	if r.Advanced.Has(key) {
		return r.Advanced
	}
	return r.Style
}

// pick collects keys from advanced settings and style.
func pick(r style.Resolved, keys ...string) page.Values {
	v := page.Values{}
	for _, k := range keys {
		if x := setting(r, k)[k]; x != nil {
			v[k] = x
		}
	}
	return v
}

// container style groups stay on the widget wrapper.
var containerGroups = map[string]bool{
	style.PGDisplay:  true,
	style.PGFlex:     true,
	style.PGGrid:     true,
	style.PGPosition: true,
	style.PGBorder:   true,
	style.PGOutline:  true,
}

func isContainerProperty(key string) bool {
	return containerGroups[style.GroupNameFromPropertyKey(key)]
}

// rawStyleWidgets receive all declarations and apply them to their media
// element; their wrapper stays unstyled.
var rawStyleWidgets = map[string]bool{"image": true, "video": true}

func renderWidget(c *Canvas, n *page.Node) (*html.Node, error) {
	wrapper := widget.El(atom.Div, widget.Attr("class", "pb-widget pb-widget-"+n.WidgetType))
	var r widget.Renderer
	if c.Registry != nil {
		r = c.Registry.Renderer(n.WidgetType)
	}
	props := style.MergeProps(n, c.device())
	if r == nil {
		return widget.Append(wrapper, placeholder(n.WidgetType, props)), nil
	}
	raw := c.declarations(n)
	container, rest := raw.Split(isContainerProperty)
	in := widget.Input{Node: n, Props: props, Style: rest, Raw: raw, Device: c.device()}
	if rawStyleWidgets[n.WidgetType] {
		in.Style = raw
	} else {
		widget.SetAttr(wrapper, "style", container.CSS())
	}
	h, err := r.Render(in)
	if err != nil {
		tracer().Errorf("widget %s: %v", n.ID, err)
		return nil, fmt.Errorf("rendering widget %s (%s): %w", n.ID, n.WidgetType, err)
	}
	return widget.Append(wrapper, h), nil
}

// PropsDumpLimit is the maximum length of the props dump shown by
// placeholders for unregistered widgets, in characters.
const PropsDumpLimit = 120

func placeholder(typ string, props page.Values) *html.Node {
	div := widget.El(atom.Div, widget.Attr("class", "pb-widget-placeholder"))
	label := widget.Append(widget.El(atom.Strong), widget.Text("Unknown widget: "+typ))
	dump, err := json.Marshal(props)
	if err != nil {
		dump = []byte(fmt.Sprintf("%v", map[string]any(props)))
	}
	pre := widget.Append(widget.El(atom.Pre), widget.Text(truncate(string(dump), PropsDumpLimit)))
	return widget.Append(div, label, pre)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit]) + "…"
}
