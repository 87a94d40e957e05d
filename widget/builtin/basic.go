package builtin

import (
	"strings"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var headingTags = map[string]atom.Atom{
	"h1": atom.H1, "h2": atom.H2, "h3": atom.H3,
	"h4": atom.H4, "h5": atom.H5, "h6": atom.H6,
	"div": atom.Div, "p": atom.P, "span": atom.Span,
}

// Heading is a title line with a selectable HTML tag and an optional link.
func Heading() widget.Widget {
	return widget.Widget{
		Type:     "heading",
		Name:     "Heading",
		Icon:     "heading",
		Category: CategoryBasic,
		Renderer: widget.RendererFunc(renderHeading),
		Schema: widget.Schema{
			Content: []widget.Field{
				field("text", "text", "Title", "Add Your Heading Text Here"),
				field("select", "tag", "HTML Tag", "h2"),
				field("url", "link", "Link", nil),
				responsive(field("choose", "align", "Alignment", nil)),
			},
			Style: append([]widget.Field{
				field("color", "textColor", "Text Color", nil),
				responsive(field("typography", "typography", "Typography", nil)),
			}, commonStyle()...),
			Advanced: commonAdvanced(),
		},
	}
}

func renderHeading(in widget.Input) (*html.Node, error) {
	tag, ok := headingTags[in.Props.String("tag")]
	if !ok {
		tag = atom.H2
	}
	decl := in.Style.Without()
	if a := in.Props.String("align"); a != "" {
		decl.Set("textAlign", styleProperty(a))
	}
	h := widget.El(tag, widget.Attr("class", "pb-heading"), widget.StyleAttr(decl))
	text := widget.Text(in.Props.String("text"))
	if href := widget.SafeURL(in.Props.String("link")); href != "" {
		return widget.Append(h, widget.Append(widget.El(atom.A, widget.Attr("href", href)), text)), nil
	}
	return widget.Append(h, text), nil
}

// Text is a block of rich text. Its content is an HTML fragment; elements and
// attributes which could execute script are removed when rendering.
func Text() widget.Widget {
	return widget.Widget{
		Type:     "text",
		Name:     "Text Editor",
		Icon:     "align-left",
		Category: CategoryBasic,
		Renderer: widget.RendererFunc(renderText),
		Schema: widget.Schema{
			Content: []widget.Field{
				field("richtext", "content", "Content", "<p>Add your text here.</p>"),
				responsive(field("choose", "align", "Alignment", nil)),
			},
			Style: append([]widget.Field{
				field("color", "textColor", "Text Color", nil),
				responsive(field("typography", "typography", "Typography", nil)),
			}, commonStyle()...),
			Advanced: commonAdvanced(),
		},
	}
}

func renderText(in widget.Input) (*html.Node, error) {
	decl := in.Style.Without()
	if a := in.Props.String("align"); a != "" {
		decl.Set("textAlign", styleProperty(a))
	}
	div := widget.El(atom.Div, widget.Attr("class", "pb-text"), widget.StyleAttr(decl))
	context := widget.El(atom.Div)
	frags, err := html.ParseFragment(strings.NewReader(in.Props.String("content")), context)
	if err != nil {
		return nil, err
	}
	for _, f := range frags {
		if f = clean(f); f != nil {
			div.AppendChild(f)
		}
	}
	return div, nil
}

// Button is a link styled as a button.
func Button() widget.Widget {
	return widget.Widget{
		Type:     "button",
		Name:     "Button",
		Icon:     "square",
		Category: CategoryBasic,
		Renderer: widget.RendererFunc(renderButton),
		Schema: widget.Schema{
			Content: []widget.Field{
				field("text", "text", "Text", "Click here"),
				field("url", "url", "Link", "#"),
				field("toggle", "newTab", "Open in new tab", false),
				field("select", "size", "Size", "md"),
				responsive(field("choose", "align", "Alignment", nil)),
			},
			Style: append([]widget.Field{
				field("color", "textColor", "Text Color", "#ffffff"),
				field("color", "bgColor", "Background Color", "#2563eb"),
				field("color", "hoverColor", "Hover Text Color", nil),
				field("color", "hoverBgColor", "Hover Background Color", nil),
				responsive(field("typography", "typography", "Typography", nil)),
			}, commonStyle()...),
			Advanced: commonAdvanced(),
		},
		Defaults: page.Values{"text": "Click here", "url": "#"},
	}
}

func renderButton(in widget.Input) (*html.Node, error) {
	href := widget.SafeURL(in.Props.String("url"))
	if href == "" {
		href = "#"
	}
	size := in.Props.String("size")
	if size == "" {
		size = "md"
	}
	a := widget.El(atom.A,
		widget.Attr("href", href),
		widget.Attr("class", "pb-button pb-button-"+size),
		widget.StyleAttr(in.Style),
	)
	if in.Props.Bool("newTab") {
		widget.SetAttr(a, "target", "_blank")
		widget.SetAttr(a, "rel", "noopener noreferrer")
	}
	widget.Append(a, widget.Text(in.Props.String("text")))
	if align := styleProperty(in.Props.String("align")); !align.IsEmpty() {
		wrap := widget.El(atom.Div, widget.Attr("style", "text-align: "+align.String()))
		return widget.Append(wrap, a), nil
	}
	return a, nil
}

// Spacer is an empty block of configurable height.
func Spacer() widget.Widget {
	return widget.Widget{
		Type:     "spacer",
		Name:     "Spacer",
		Icon:     "arrows-v",
		Category: CategoryBasic,
		Renderer: widget.RendererFunc(renderSpacer),
		Schema: widget.Schema{
			Content: []widget.Field{
				responsive(field("slider", "height", "Space", 50)),
			},
			Advanced: commonAdvanced(),
		},
	}
}

func renderSpacer(in widget.Input) (*html.Node, error) {
	decl := in.Style.Without()
	h := in.Props["height"]
	if h == nil {
		h = 50
	}
	decl.Set("height", lengthOf(h))
	return widget.El(atom.Div, widget.Attr("class", "pb-spacer"), widget.StyleAttr(decl)), nil
}

// Divider is a horizontal rule.
func Divider() widget.Widget {
	return widget.Widget{
		Type:     "divider",
		Name:     "Divider",
		Icon:     "minus",
		Category: CategoryBasic,
		Renderer: widget.RendererFunc(renderDivider),
		Schema: widget.Schema{
			Content: []widget.Field{
				field("select", "lineStyle", "Style", "solid"),
				responsive(field("slider", "weight", "Weight", 1)),
				field("color", "color", "Color", "#dddddd"),
				responsive(field("slider", "width", "Width", "100%")),
			},
			Style:    commonStyle(),
			Advanced: commonAdvanced(),
		},
	}
}

func renderDivider(in widget.Input) (*html.Node, error) {
	decl := in.Style.Without()
	lineStyle := in.Props.String("lineStyle")
	if lineStyle == "" {
		lineStyle = "solid"
	}
	weight := in.Props["weight"]
	if weight == nil {
		weight = 1
	}
	color := in.Props.String("color")
	if color == "" {
		color = "#dddddd"
	}
	decl.Set("border", styleProperty("0"))
	decl.Set("borderTop", styleProperty(string(lengthOf(weight))+" "+lineStyle+" "+color))
	if w := in.Props["width"]; w != nil {
		decl.Set("width", lengthOf(w))
	}
	return widget.El(atom.Hr, widget.Attr("class", "pb-divider"), widget.StyleAttr(decl)), nil
}
