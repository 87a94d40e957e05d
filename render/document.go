package render

import (
	"io"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BaseCSS is the stylesheet supporting rendered pages. Hover colors are
// passed to elements as custom properties and applied here.
const BaseCSS = `*,*::before,*::after{box-sizing:border-box}
.pb-canvas{width:100%}
.pb-section{position:relative;width:100%}
.pb-column{min-height:1px}
.pb-widget a:hover,.pb-button:hover{color:var(--hover-color,inherit);background-color:var(--hover-bg-color,inherit)}
.pb-button{display:inline-block;text-decoration:none;border-radius:4px}
.pb-button-sm{padding:6px 12px}.pb-button-md{padding:10px 20px}.pb-button-lg{padding:14px 28px}
.pb-image img{max-width:100%;height:auto}
.pb-selected{outline:2px solid #2563eb}
.pb-drag-over{background-color:rgba(37,99,235,0.08)}
.pb-column-empty{padding:20px;border:1px dashed #ccc;color:#888;text-align:center}
.pb-hidden-indicator{font-size:11px;color:#888}
@media (max-width:1024px){.pb-section-inner{flex-wrap:wrap}}
@media (max-width:767px){.pb-section-inner{flex-direction:column}.pb-column{max-width:100%!important}}
`

// Document renders a complete HTML document for a page, with title and
// description taken from page metadata.
func (c *Canvas) Document(root *page.Node, title, description string) (*html.Node, error) {
	body, err := c.Render(root)
	if err != nil {
		return nil, err
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	head := widget.Append(widget.El(atom.Head),
		widget.El(atom.Meta, widget.Attr("charset", "utf-8")),
		widget.El(atom.Meta, widget.Attr("name", "viewport"),
			widget.Attr("content", "width=device-width, initial-scale=1")),
		widget.Append(widget.El(atom.Title), widget.Text(title)),
	)
	if description != "" {
		widget.Append(head, widget.El(atom.Meta, widget.Attr("name", "description"),
			widget.Attr("content", description)))
	}
	widget.Append(head, widget.Append(widget.El(atom.Style), widget.Text(BaseCSS)))
	htm := widget.Append(widget.El(atom.Html, widget.Attr("lang", "en")), head,
		widget.Append(widget.El(atom.Body), body))
	doc.AppendChild(htm)
	return doc, nil
}

// WriteDocument renders a complete HTML document and writes it to w.
func (c *Canvas) WriteDocument(w io.Writer, root *page.Node, title, description string) error {
	doc, err := c.Document(root, title, description)
	if err != nil {
		return err
	}
	return html.Render(w, doc)
}
