package style

import (
	"testing"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func responsiveNode() *page.Node {
	n := page.NewWidget("heading", page.Values{"text": "Hello"})
	n.Style = page.Values{
		"fontSize": 32,
		"color":    "#111",
		"margin":   page.Values{"top": 10, "right": 10, "bottom": 10, "left": 10},
	}
	n.Advanced = page.Values{"cssClass": "title"}
	n.Responsive = page.Responsive{
		page.Tablet: &page.Override{
			Style: page.Values{"fontSize": 24, "margin": page.Values{"top": 4}},
		},
		page.Mobile: &page.Override{
			Advanced: page.Values{"hideMobile": true},
		},
	}
	return n
}

func TestCascadeOverridesKeyByKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	n := responsiveNode()
	desktop := MergeStyle(n, page.Desktop)
	assert.Equal(t, 32, desktop["fontSize"])
	tablet := MergeStyle(n, page.Tablet)
	assert.Equal(t, 24, tablet["fontSize"])
	assert.Equal(t, "#111", tablet["color"], "tablet should inherit color from desktop")
	// one-level merge: margin override replaces the whole structure
	assert.Equal(t, page.Values{"top": 4}, tablet["margin"])
	mobile := MergeStyle(n, page.Mobile)
	assert.Equal(t, 32, mobile["fontSize"], "mobile must not inherit tablet overrides")
}

func TestMergeDoesNotAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	n := responsiveNode()
	m := MergeStyle(n, page.Desktop)
	m["fontSize"] = 99
	assert.Equal(t, 32, n.Style["fontSize"])
	assert.NotNil(t, MergeProps(&page.Node{}, page.Mobile))
	assert.NotNil(t, MergeAdvanced(nil, page.Desktop))
}

func TestResolveAndHidden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	n := responsiveNode()
	r := Resolve(n, page.Mobile)
	assert.Equal(t, "Hello", r.Props["text"])
	assert.Equal(t, "title", r.Advanced["cssClass"])
	assert.True(t, IsHiddenOnDevice(n, page.Mobile))
	assert.False(t, IsHiddenOnDevice(n, page.Tablet))
	assert.False(t, IsHiddenOnDevice(n, page.Desktop))
	n.Advanced = n.Advanced.With("hidden", true)
	assert.True(t, IsHiddenOnDevice(n, page.Desktop))
}

func TestBoxShorthandCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	d := BuildPadding(page.Values{"top": 10, "right": 10, "bottom": 10, "left": 10})
	assert.Equal(t, Declarations{"padding": "10px"}, d)
	d = BuildPadding(page.Values{"top": 10, "right": 5, "bottom": 10, "left": 5})
	assert.Equal(t, Declarations{
		"paddingTop": "10px", "paddingRight": "5px",
		"paddingBottom": "10px", "paddingLeft": "5px",
	}, d)
	d = BuildMargin(page.Values{"top": 8, "bottom": "auto"})
	assert.Equal(t, Declarations{"marginTop": "8px", "marginBottom": "auto"}, d)
	d = BuildMargin(page.Values{"top": 2, "right": 2, "bottom": 2, "left": 2, "unit": "em"})
	assert.Equal(t, Declarations{"margin": "2em"}, d)
}

func TestUnitAllowList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	d := Lower(page.Values{
		"fontSize":   16,
		"opacity":    0.5,
		"zIndex":     3,
		"lineHeight": 1.4,
		"width":      "50%",
		"height":     "120",
		"fontWeight": 700,
	})
	assert.Equal(t, Property("16px"), d["fontSize"])
	assert.Equal(t, Property("0.5"), d["opacity"])
	assert.Equal(t, Property("3"), d["zIndex"])
	assert.Equal(t, Property("1.4"), d["lineHeight"])
	assert.Equal(t, Property("50%"), d["width"])
	assert.Equal(t, Property("120px"), d["height"])
	assert.Equal(t, Property("700"), d["fontWeight"])
}

func TestSanitizeInjection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	d := Lower(page.Values{
		"color":           "javascript:alert(1)",
		"backgroundColor": " EXPRESSION:foo",
		"backgroundImage": "url('javascript:alert(1)')",
		"borderColor":     "red",
	})
	assert.Equal(t, Declarations{"borderColor": "red"}, d)
	assert.Equal(t, "", Sanitize("JavaScript:void(0)"))
	assert.Equal(t, "blue", Sanitize("  blue "))
}

func TestRenamesAndHover(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	d := Lower(page.Values{
		"textColor":    "#222",
		"bgColor":      page.Values{"r": 255, "g": 0, "b": 0, "a": 0.5},
		"hoverColor":   "#f00",
		"hoverBgColor": "#0f0",
	})
	assert.Equal(t, Declarations{
		"color":            "#222",
		"backgroundColor":  "rgba(255, 0, 0, 0.5)",
		"--hover-color":    "#f00",
		"--hover-bg-color": "#0f0",
	}, d)
}

func TestBorderUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	d := BuildBorder(page.Values{"width": "2rem", "color": "#000", "radius": 4})
	assert.Equal(t, Declarations{
		"borderWidth":  "2rem",
		"borderStyle":  "solid",
		"borderColor":  "#000",
		"borderRadius": "4px",
	}, d)
	d = BuildBorder(page.Values{
		"width":  page.Values{"top": 1, "right": 2, "bottom": 1, "left": 2},
		"style":  "dashed",
		"radius": page.Values{"topLeft": "50%", "topRight": "50%", "bottomRight": "50%", "bottomLeft": "50%"},
	})
	assert.Equal(t, Property("1px 2px 1px 2px"), d["borderWidth"])
	assert.Equal(t, Property("dashed"), d["borderStyle"])
	assert.Equal(t, Property("50%"), d["borderRadius"])
	d = BuildBorder(page.Values{"style": "none", "width": 3})
	assert.Equal(t, Declarations{"borderStyle": "none"}, d)
}

func TestShadow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	assert.Equal(t, Property("0px 0px 0px 0px rgba(0, 0, 0, 0.5)"), BuildShadow(page.Values{}))
	assert.Equal(t, Property("inset 2px 4px 8px 1px #333"), BuildShadow(page.Values{
		"inset": true, "offsetX": 2, "offsetY": 4, "blur": 8, "spread": 1, "color": "#333",
	}))
	d := Lower(page.Values{"shadow": page.Values{"horizontal": 1, "vertical": 1, "blur": 2}})
	assert.Equal(t, Property("1px 1px 2px 0px rgba(0, 0, 0, 0.5)"), d["boxShadow"])
	assert.Equal(t, Property("5px 0.5em 3px 0px #000"), BuildShadow(page.Values{
		"offsetX": "5px", "offsetY": "0.5em", "blur": "3", "spread": "wide", "color": "#000",
	}))
}

func TestBackgroundURLRewriting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	l := &Lowerer{Origin: "https://example.org/"}
	assert.Equal(t, Property(`url("https://example.org/api/media/a.png")`),
		l.BackgroundURL("/api/media/a.png"))
	assert.Equal(t, Property(`url("https://example.org/api/media/a.png")`),
		l.BackgroundURL("url(/api/media/a.png)"))
	assert.Equal(t, Property("url(https://cdn.org/b.png)"), l.BackgroundURL("url(https://cdn.org/b.png)"))
	assert.Equal(t, Property(`url("https://cdn.org/b.png")`), l.BackgroundURL("https://cdn.org/b.png"))
	dev := &Lowerer{Origin: "http://localhost:3000"}
	assert.Equal(t, Property(`url("http://localhost:5000/api/x.png")`), dev.BackgroundURL("/api/x.png"))
	none := &Lowerer{}
	assert.Equal(t, Property(`url("/api/x.png")`), none.BackgroundURL("/api/x.png"))
	assert.Equal(t, Property("linear-gradient(red, blue)"), none.BackgroundURL("linear-gradient(red, blue)"))
}

func TestBackgroundAndTypography(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	l := &Lowerer{}
	d := l.Lower(page.Values{
		"background": page.Values{
			"type":     "gradient",
			"color":    "#fff",
			"gradient": page.Values{"angle": 90, "from": "#000", "to": "#fff"},
		},
		"typography": page.Values{"fontSize": 18, "lineHeight": 1.5, "fontFamily": "Inter", "bogus": 1},
	})
	assert.Equal(t, Declarations{
		"backgroundColor": "#fff",
		"backgroundImage": "linear-gradient(90deg, #000 0%, #fff 100%)",
		"fontSize":        "18px",
		"lineHeight":      "1.5",
		"fontFamily":      "Inter",
	}, d)
	d = l.BuildBackground(page.Values{"image": page.Values{"url": "a.png"}, "size": "cover", "repeat": "no-repeat"})
	assert.Equal(t, Declarations{
		"backgroundImage":  `url("a.png")`,
		"backgroundSize":   "cover",
		"backgroundRepeat": "no-repeat",
	}, d)
}

func TestDeclarationsCSS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	d := Declarations{"fontSize": "16px", "backgroundColor": "#fff", "--hover-color": "red"}
	assert.Equal(t, "--hover-color: red; background-color: #fff; font-size: 16px", d.CSS())
	assert.Equal(t, "", Declarations(nil).CSS())
	w := d.Without("fontSize")
	assert.Len(t, w, 2)
	assert.Len(t, d, 3)
	in, out := d.Split(func(k string) bool { return GroupNameFromPropertyKey(k) == PGColor })
	assert.Len(t, in, 2)
	assert.Equal(t, Declarations{"fontSize": "16px"}, out)
}

func TestCaseConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	assert.Equal(t, "background-color", KebabCase("backgroundColor"))
	assert.Equal(t, "-webkit-box-shadow", KebabCase("WebkitBoxShadow"))
	assert.Equal(t, "--x-Y", KebabCase("--x-Y"))
	assert.Equal(t, "backgroundColor", CamelCase("background-color"))
	assert.Equal(t, "WebkitBoxShadow", CamelCase("-webkit-box-shadow"))
}

func TestPropertyGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.style")
	defer teardown()
	//
	for key, group := range map[string]string{
		"marginTop":      PGMargins,
		"display":        PGDisplay,
		"flexDirection":  PGFlex,
		"gridArea":       PGGrid,
		"borderRadius":   PGBorder,
		"outlineColor":   PGOutline,
		"position":       PGPosition,
		"fontSize":       PGText,
		"--hover-color":  PGColor,
		"topology":       PGX,
		"opacity":        PGX,
		"justifyContent": PGFlex,
	} {
		assert.Equal(t, group, GroupNameFromPropertyKey(key), key)
	}
}
