package builtin

import (
	"net/url"
	"strings"

	"github.com/npillmayer/pagebuilder/style"
	"github.com/npillmayer/pagebuilder/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Image shows a picture, optionally linked. Image receives the complete
// style declarations and applies them to the img element.
func Image() widget.Widget {
	return widget.Widget{
		Type:     "image",
		Name:     "Image",
		Icon:     "image",
		Category: CategoryMedia,
		Renderer: widget.RendererFunc(renderImage),
		Schema: widget.Schema{
			Content: []widget.Field{
				field("media", "src", "Image", nil),
				field("text", "alt", "Alternative Text", ""),
				field("text", "caption", "Caption", nil),
				field("url", "link", "Link", nil),
				responsive(field("choose", "align", "Alignment", nil)),
			},
			Style: append([]widget.Field{
				responsive(field("slider", "width", "Width", nil)),
				responsive(field("slider", "maxWidth", "Max Width", "100%")),
				field("select", "objectFit", "Object Fit", nil),
			}, commonStyle()...),
			Advanced: commonAdvanced(),
		},
	}
}

func renderImage(in widget.Input) (*html.Node, error) {
	src := widget.SafeURL(in.Props.String("src"))
	if src == "" {
		if m := in.Props.Map("src"); m != nil {
			src = widget.SafeURL(m.String("url"))
		}
	}
	if src == "" {
		return widget.Append(
			widget.El(atom.Div, widget.Attr("class", "pb-image-empty")),
			widget.Text("No image selected"),
		), nil
	}
	img := widget.El(atom.Img,
		widget.Attr("src", src),
		html.Attribute{Key: "alt", Val: in.Props.String("alt")},
		widget.StyleAttr(in.Raw),
	)
	n := img
	if href := widget.SafeURL(in.Props.String("link")); href != "" {
		n = widget.Append(widget.El(atom.A, widget.Attr("href", href)), img)
	}
	caption := in.Props.String("caption")
	align := in.Props.String("align")
	if caption == "" && align == "" {
		return n, nil
	}
	fig := widget.El(atom.Figure, widget.Attr("class", "pb-image"))
	if align != "" {
		widget.SetAttr(fig, "style", "text-align: "+string(styleProperty(align)))
	}
	widget.Append(fig, n)
	if caption != "" {
		widget.Append(fig, widget.Append(widget.El(atom.Figcaption), widget.Text(caption)))
	}
	return fig, nil
}

// Video embeds a video. YouTube and Vimeo links are embedded as players,
// other URLs are played by a video element. Video receives the complete
// style declarations.
func Video() widget.Widget {
	return widget.Widget{
		Type:     "video",
		Name:     "Video",
		Icon:     "youtube",
		Category: CategoryMedia,
		Renderer: widget.RendererFunc(renderVideo),
		Schema: widget.Schema{
			Content: []widget.Field{
				field("url", "url", "Link", nil),
				field("toggle", "autoplay", "Autoplay", false),
				field("toggle", "mute", "Mute", false),
				field("toggle", "loop", "Loop", false),
				field("toggle", "controls", "Player Controls", true),
				field("select", "aspectRatio", "Aspect Ratio", "16:9"),
			},
			Style:    commonStyle(),
			Advanced: commonAdvanced(),
		},
	}
}

func renderVideo(in widget.Input) (*html.Node, error) {
	raw := widget.SafeURL(in.Props.String("url"))
	if raw == "" {
		return widget.Append(
			widget.El(atom.Div, widget.Attr("class", "pb-video-empty")),
			widget.Text("No video selected"),
		), nil
	}
	decl := in.Raw.Without()
	r := in.Props.String("aspectRatio")
	if r == "" {
		r = "16:9"
	}
	if ratio := aspectRatio(r); ratio != "" {
		decl.Set("aspectRatio", style.Property(ratio))
	}
	decl.Set("width", "100%")
	if embed := embedURL(raw, in.Props); embed != "" {
		return widget.El(atom.Iframe,
			widget.Attr("src", embed),
			widget.Attr("class", "pb-video"),
			widget.Attr("allow", "autoplay; encrypted-media; picture-in-picture"),
			widget.Flag("allowfullscreen"),
			widget.StyleAttr(decl),
		), nil
	}
	v := widget.El(atom.Video, widget.Attr("src", raw), widget.Attr("class", "pb-video"),
		widget.StyleAttr(decl))
	controls := !in.Props.Has("controls") || in.Props.Bool("controls")
	flags := []struct {
		name string
		on   bool
	}{
		{"controls", controls},
		{"autoplay", in.Props.Bool("autoplay")},
		{"muted", in.Props.Bool("mute")},
		{"loop", in.Props.Bool("loop")},
	}
	for _, f := range flags {
		if f.on {
			v.Attr = append(v.Attr, widget.Flag(f.name))
		}
	}
	return v, nil
}

// embedURL converts YouTube and Vimeo links into player URLs. Other URLs
// yield "".
func embedURL(raw string, props map[string]any) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	var embed string
	switch host {
	case "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			embed = "https://www.youtube.com/embed/" + id
		}
	case "youtu.be":
		embed = "https://www.youtube.com/embed/" + strings.Trim(u.Path, "/")
	case "vimeo.com":
		embed = "https://player.vimeo.com/video/" + strings.Trim(u.Path, "/")
	}
	if embed == "" {
		return ""
	}
	q := url.Values{}
	for _, key := range []string{"autoplay", "mute", "loop"} {
		if b, ok := props[key].(bool); ok && b {
			q.Set(key, "1")
		}
	}
	if len(q) > 0 {
		embed += "?" + q.Encode()
	}
	return embed
}

func aspectRatio(r string) string {
	if r == "" {
		return ""
	}
	parts := strings.SplitN(r, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[0]) + " / " + strings.TrimSpace(parts[1])
}

// --- Helpers ---------------------------------------------------------------

func styleProperty(s string) style.Property {
	return style.Property(style.Sanitize(s))
}

func lengthOf(x any) style.Property {
	return style.Length(x, "px")
}

// unsafeElements are dropped from rich text, including their content.
var unsafeElements = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Iframe: true, atom.Object: true,
	atom.Embed: true, atom.Link: true, atom.Meta: true, atom.Base: true, atom.Form: true,
}

// clean removes script-capable elements and attributes from a parsed
// fragment. Returns nil if n itself is unsafe.
func clean(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		if unsafeElements[n.DataAtom] {
			return nil
		}
		attrs := n.Attr[:0]
		for _, a := range n.Attr {
			key := strings.ToLower(a.Key)
			if strings.HasPrefix(key, "on") {
				continue
			}
			if (key == "href" || key == "src") && widget.SafeURL(a.Val) == "" {
				continue
			}
			if key == "style" {
				a.Val = style.Sanitize(a.Val)
			}
			attrs = append(attrs, a)
		}
		n.Attr = attrs
	}
	for ch := n.FirstChild; ch != nil; {
		next := ch.NextSibling
		if clean(ch) == nil {
			n.RemoveChild(ch)
		}
		ch = next
	}
	return n
}
