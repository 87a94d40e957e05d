package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/style"
	"github.com/npillmayer/pagebuilder/widget"
	"github.com/npillmayer/pagebuilder/widget/builtin"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func testRegistry(t *testing.T) *widget.Registry {
	reg := widget.NewRegistry()
	require.NoError(t, builtin.Register(reg))
	return reg
}

// testPage creates
//
//     root
//      └ s1 (boxed)
//         ├ c1 (width 50)
//         │  ├ w1 heading
//         │  ├ w2 image
//         │  └ w3 carousel (unregistered)
//         └ c2 (hidden on mobile)
//            └ w4 button
func testPage() *page.Node {
	w1 := &page.Node{ID: "w1", Kind: page.KindWidget, WidgetType: "heading",
		Props: page.Values{"text": "Hello", "tag": "h1"},
		Style: page.Values{"fontSize": 32, "textColor": "red", "display": "flex",
			"borderWidth": 2, "position": "relative"},
		Advanced: page.Values{"cssClass": "hero", "cssId": "main-title", "customCss": "letter-spacing: 2px"},
		Responsive: page.Responsive{
			page.Mobile: &page.Override{Style: page.Values{"fontSize": 20}},
		},
	}
	w2 := &page.Node{ID: "w2", Kind: page.KindWidget, WidgetType: "image",
		Props: page.Values{"src": "/a.png", "alt": "A"},
		Style: page.Values{"borderRadius": 8, "display": "block"},
	}
	w3 := &page.Node{ID: "w3", Kind: page.KindWidget, WidgetType: "carousel",
		Props: page.Values{"slides": strings.Repeat("x", 200)},
	}
	w4 := &page.Node{ID: "w4", Kind: page.KindWidget, WidgetType: "button",
		Props: page.Values{"text": "Go", "url": "/go"},
	}
	c1 := &page.Node{ID: "c1", Kind: page.KindColumn, Props: page.Values{"width": 50},
		Children: []*page.Node{w1, w2, w3}}
	c2 := &page.Node{ID: "c2", Kind: page.KindColumn, Advanced: page.Values{"hideMobile": true},
		Children: []*page.Node{w4}}
	s1 := &page.Node{ID: "s1", Kind: page.KindSection,
		Advanced: page.Values{"contentWidth": "boxed", "gap": 10},
		Children: []*page.Node{c1, c2}}
	return page.NewRoot(s1)
}

func query(t *testing.T, h *html.Node, sel string) *html.Node {
	n := cascadia.Query(h, cascadia.MustCompile(sel))
	require.NotNil(t, n, "no match for %q", sel)
	return n
}

func attr(n *html.Node, key string) string {
	return widget.GetAttr(n, key)
}

func TestRenderStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	c := &Canvas{Registry: testRegistry(t), Mode: Published}
	h, err := c.Render(testPage())
	require.NoError(t, err)
	query(t, h, "div.pb-canvas > section.pb-section.pb-section-boxed > div.pb-section-inner > div.pb-column")
	assert.Len(t, cascadia.QueryAll(h, cascadia.MustCompile("div.pb-column")), 2)
	assert.Len(t, cascadia.QueryAll(h, cascadia.MustCompile("div.pb-widget")), 4)
	assert.Nil(t, cascadia.Query(h, cascadia.MustCompile("[data-node-id]")), "published output without editor attributes")
}

func TestSectionBoxGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	c := &Canvas{Registry: testRegistry(t), Mode: Published}
	h, err := c.Render(testPage())
	require.NoError(t, err)
	sec := query(t, h, "section")
	assert.Equal(t, "--pb-box-max-width: 1140px; --pb-box-padding-x: 20px", attr(sec, "style"))
	inner := query(t, h, "div.pb-section-inner")
	css := attr(inner, "style")
	assert.Contains(t, css, "max-width: var(--pb-box-max-width)")
	assert.Contains(t, css, "flex-direction: row")
	assert.Contains(t, css, "gap: 10px")
	//
	root := testPage()
	root = page.Update(root, "s1", page.Updates{Advanced: page.Values{"contentWidth": "full_width"}})
	c.BoxedWidth = 960
	h, err = c.Render(root)
	require.NoError(t, err)
	sec = query(t, h, "section.pb-section-full_width")
	assert.Equal(t, "", attr(sec, "style"))
	assert.Contains(t, attr(query(t, h, "div.pb-section-inner"), "style"), "max-width: none")
}

func TestColumnWidthAndDropTargets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	c := &Canvas{Registry: testRegistry(t), Mode: Editor, DragOver: "c2"}
	h, err := c.Render(testPage())
	require.NoError(t, err)
	c1 := query(t, h, `div.pb-column[data-node-id="c1"]`)
	assert.Contains(t, attr(c1, "style"), "flex-basis: 50%")
	assert.Contains(t, attr(c1, "style"), "max-width: 50%")
	assert.Contains(t, attr(c1, "style"), "flex-direction: column")
	assert.Equal(t, "true", attr(c1, "data-drop-target"))
	assert.False(t, widget.HasClass(c1, "pb-drag-over"))
	c2 := query(t, h, `[data-node-id="c2"]`)
	assert.True(t, widget.HasClass(c2, "pb-drag-over"))
}

func TestWidgetStyleSplitting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	c := &Canvas{Registry: testRegistry(t), Mode: Published}
	h, err := c.Render(testPage())
	require.NoError(t, err)
	wrapper := query(t, h, "div.pb-widget-heading")
	assert.Equal(t, "border-width: 2px; display: flex; position: relative", attr(wrapper, "style"))
	h1 := query(t, h, "div.pb-widget-heading > h1")
	assert.Equal(t, "color: red; font-size: 32px; letter-spacing: 2px", attr(h1, "style"))
	assert.Equal(t, "main-title", attr(wrapper, "id"))
	assert.True(t, widget.HasClass(wrapper, "hero"))
	// image receives all declarations, wrapper stays unstyled
	img := query(t, h, "div.pb-widget-image img")
	assert.Equal(t, "border-radius: 8px; display: block", attr(img, "style"))
	assert.Equal(t, "", attr(query(t, h, "div.pb-widget-image"), "style"))
}

func TestDeviceResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	c := &Canvas{Registry: testRegistry(t), Mode: Published, Device: page.Mobile}
	h, err := c.Render(testPage())
	require.NoError(t, err)
	assert.Contains(t, attr(query(t, h, "h1"), "style"), "font-size: 20px")
	assert.Len(t, cascadia.QueryAll(h, cascadia.MustCompile("div.pb-column")), 1, "c2 hidden on mobile")
	assert.Nil(t, cascadia.Query(h, cascadia.MustCompile("a.pb-button")))
}

func TestHiddenInEditor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	c := &Canvas{Registry: testRegistry(t), Mode: Editor, Device: page.Mobile, Selected: "w4"}
	h, err := c.Render(testPage())
	require.NoError(t, err)
	c2 := query(t, h, `[data-node-id="c2"]`)
	assert.True(t, strings.HasSuffix(attr(c2, "style"), "opacity: 0.4"))
	ind := query(t, c2, "div.pb-hidden-indicator")
	assert.Equal(t, "Hidden on this device", ind.FirstChild.Data)
	assert.Equal(t, ind, c2.FirstChild)
	w4 := query(t, h, `[data-node-id="w4"]`)
	assert.True(t, widget.HasClass(w4, "pb-selected"))
	assert.Equal(t, "widget", attr(w4, "data-kind"))
	assert.Len(t, cascadia.QueryAll(h, cascadia.MustCompile(".pb-selected")), 1)
}

func TestUnregisteredPlaceholder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	c := &Canvas{Registry: testRegistry(t), Mode: Published}
	h, err := c.Render(testPage())
	require.NoError(t, err)
	ph := query(t, h, "div.pb-widget-carousel div.pb-widget-placeholder")
	assert.Equal(t, "Unknown widget: carousel", query(t, ph, "strong").FirstChild.Data)
	dump := query(t, ph, "pre").FirstChild.Data
	assert.Equal(t, PropsDumpLimit+1, len([]rune(dump)))
	assert.True(t, strings.HasPrefix(dump, `{"slides":"xxx`))
	// without a registry all widgets are placeholders
	h, err = (&Canvas{}).Render(testPage())
	require.NoError(t, err)
	assert.Len(t, cascadia.QueryAll(h, cascadia.MustCompile("div.pb-widget-placeholder")), 4)
}

func TestUnknownKindsRenderNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	odd := &page.Node{ID: "x", Kind: "slider", Children: []*page.Node{
		{ID: "xw", Kind: page.KindWidget, WidgetType: "heading"},
	}}
	root := page.NewRoot(odd, &page.Node{ID: "w", Kind: page.KindWidget, WidgetType: "spacer"})
	c := &Canvas{Registry: testRegistry(t), Mode: Published}
	h, err := c.Render(root)
	require.NoError(t, err)
	assert.Nil(t, cascadia.Query(h, cascadia.MustCompile("div.pb-widget-heading")))
	// unexpected nesting: widget directly under root
	query(t, h, "div.pb-canvas > div.pb-widget-spacer")
	h, err = c.Render(odd)
	assert.NoError(t, err)
	assert.Nil(t, h)
}

func TestRendererErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	boom := errors.New("boom")
	reg := widget.NewRegistry()
	reg.MustRegister(widget.Widget{Type: "broken", Name: "Broken",
		Renderer: widget.RendererFunc(func(widget.Input) (*html.Node, error) { return nil, boom })})
	root := page.NewRoot(&page.Node{ID: "b", Kind: page.KindWidget, WidgetType: "broken"})
	_, err := (&Canvas{Registry: reg}).Render(root)
	assert.True(t, errors.Is(err, boom))
}

func TestRenderHTMLAndDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	c := &Canvas{Registry: testRegistry(t), Mode: Published, Lowerer: &style.Lowerer{Origin: "https://x.org"}}
	var buf bytes.Buffer
	require.NoError(t, c.RenderHTML(&buf, testPage()))
	assert.True(t, strings.HasPrefix(buf.String(), `<div class="pb-canvas">`))
	buf.Reset()
	require.NoError(t, c.WriteDocument(&buf, testPage(), "Home", "Welcome"))
	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Home", query(t, doc, "head > title").FirstChild.Data)
	assert.Equal(t, "Welcome", attr(query(t, doc, `meta[name="description"]`), "content"))
	query(t, doc, "body > div.pb-canvas")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("published")
	assert.NoError(t, err)
	assert.Equal(t, Published, m)
	m, err = ParseMode("")
	assert.NoError(t, err)
	assert.Equal(t, Editor, m)
	_, err = ParseMode("print")
	assert.Error(t, err)
}

func TestCustomCSSWithoutTerminator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.render")
	defer teardown()
	//
	w := &page.Node{ID: "w", Kind: page.KindWidget, WidgetType: "heading",
		Props:    page.Values{"text": "Hi", "tag": "h1"},
		Style:    page.Values{"textColor": "red"},
		Advanced: page.Values{"customCss": "color: white"},
	}
	col := &page.Node{ID: "c", Kind: page.KindColumn, Children: []*page.Node{w}}
	sec := &page.Node{ID: "s", Kind: page.KindSection, Children: []*page.Node{col},
		Advanced: page.Values{"customCss": "background-color: black"}}
	root := page.NewRoot(sec)
	c := &Canvas{Registry: testRegistry(t), Mode: Published}
	h, err := c.Render(root)
	require.NoError(t, err)
	assert.Equal(t, "color: white", attr(query(t, h, "h1"), "style"))
	assert.Contains(t, attr(query(t, h, "section.pb-section"), "style"), "background-color: black")
}
