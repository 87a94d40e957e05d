package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pagebuilder/page"
)

var sides = [4]string{"Top", "Right", "Bottom", "Left"}

// BuildPadding expands a structured padding {top, right, bottom, left, unit}
// into CSS declarations. See buildBox.
func BuildPadding(v page.Values) Declarations {
	return buildBox("padding", v)
}

// BuildMargin expands a structured margin {top, right, bottom, left, unit}
// into CSS declarations. See buildBox.
func BuildMargin(v page.Values) Declarations {
	return buildBox("margin", v)
}

// buildBox collapses four equal sides into a single shorthand declaration.
// Otherwise it emits one longhand per side, omitting undefined sides.
func buildBox(prop string, v page.Values) Declarations {
	decl := Declarations{}
	unit := v.String("unit")
	var vals [4]Property
	for i, side := range sides {
		vals[i] = Length(v[strings.ToLower(side)], unit)
	}
	if !vals[0].IsEmpty() && vals[0] == vals[1] && vals[1] == vals[2] && vals[2] == vals[3] {
		decl.Set(prop, vals[0])
		return decl
	}
	for i, side := range sides {
		decl.Set(prop+side, vals[i])
	}
	return decl
}

// feazeCompound4 composes a four-valued CSS shorthand from a structured value
// with keys k[0]…k[3]. Missing entries default to 0.
func feazeCompound4(v page.Values, k [4]string) Property {
	var parts [4]string
	for i, key := range k {
		p := Length(v[key], v.String("unit"))
		if p.IsEmpty() {
			p = "0"
		}
		parts[i] = p.String()
	}
	if parts[0] == parts[1] && parts[1] == parts[2] && parts[2] == parts[3] {
		return Property(parts[0])
	}
	return Property(strings.Join(parts[:], " "))
}

// BuildBorder expands a structured border {width, style, color, radius}.
// width may be a single length or per side {top, right, bottom, left};
// radius a single length or per corner {topLeft, topRight, bottomRight,
// bottomLeft}. Lengths get px appended unless they carry a unit.
func BuildBorder(v page.Values) Declarations {
	decl := Declarations{}
	bstyle := Sanitize(v.String("style"))
	if bstyle == "none" {
		decl.Set("borderStyle", "none")
	} else {
		var width Property
		if w := v.Map("width"); w != nil {
			width = feazeCompound4(w, [4]string{"top", "right", "bottom", "left"})
		} else {
			width = Length(v["width"], "px")
		}
		if !width.IsEmpty() && bstyle == "" {
			bstyle = "solid"
		}
		decl.Set("borderWidth", width)
		decl.Set("borderStyle", Property(bstyle))
		if c := colorValue(v["color"]); !c.IsEmpty() {
			decl.Set("borderColor", c)
		}
	}
	if r := v.Map("radius"); r != nil {
		decl.Set("borderRadius", feazeCompound4(r,
			[4]string{"topLeft", "topRight", "bottomRight", "bottomLeft"}))
	} else {
		decl.Set("borderRadius", Length(v["radius"], "px"))
	}
	return decl
}

// DefaultShadowColor is used for shadows without an explicit color.
const DefaultShadowColor = "rgba(0, 0, 0, 0.5)"

// BuildShadow composes a box-shadow value
//
//     inset? {offsetX}px {offsetY}px {blur}px {spread}px {color}
//
// All numeric components default to 0. horizontal/vertical are accepted as
// alternate names for offsetX/offsetY.
func BuildShadow(v page.Values) Property {
	num := func(keys ...string) string {
		for _, k := range keys {
			if l := Length(v[k], "px"); !l.IsEmpty() && HasUnit(l.String()) {
				return l.String()
			}
		}
		return "0px"
	}
	color := colorValue(v["color"])
	if color.IsEmpty() {
		color = DefaultShadowColor
	}
	var sb strings.Builder
	if v.Bool("inset") {
		sb.WriteString("inset ")
	}
	fmt.Fprintf(&sb, "%s %s %s %s %s",
		num("offsetX", "x", "horizontal"), num("offsetY", "y", "vertical"),
		num("blur"), num("spread"), color)
	return Property(sb.String())
}

// BuildBackground expands a structured background. A background of type
// "gradient" yields a linear or radial gradient image
// from gradient{angle, from, to, fromStop, toStop, kind}; any other type is
// treated as classic with color, image, position, size, repeat and attachment.
func (l *Lowerer) BuildBackground(v page.Values) Declarations {
	decl := Declarations{}
	decl.Set("backgroundColor", colorValue(v["color"]))
	if v.String("type") == "gradient" {
		decl.Set("backgroundImage", buildGradient(v.Map("gradient")))
		return decl
	}
	switch img := v["image"].(type) {
	case string:
		decl.Set("backgroundImage", l.BackgroundURL(img))
	default:
		if m := page.AsValues(img); m != nil {
			decl.Set("backgroundImage", l.BackgroundURL(m.String("url")))
		}
	}
	for _, k := range []string{"position", "size", "repeat", "attachment"} {
		if s := Sanitize(v.String(k)); s != "" {
			decl.Set("background"+strings.ToUpper(k[:1])+k[1:], Property(s))
		}
	}
	return decl
}

func buildGradient(g page.Values) Property {
	from, to := colorValue(g["from"]), colorValue(g["to"])
	if from.IsEmpty() || to.IsEmpty() {
		return NullStyle
	}
	stop := func(key string, dflt float64) string {
		if f, ok := g.Number(key); ok {
			return page.FormatNumber(f)
		}
		return page.FormatNumber(dflt)
	}
	stops := fmt.Sprintf("%s %s%%, %s %s%%", from, stop("fromStop", 0), to, stop("toStop", 100))
	if g.String("kind") == "radial" {
		return Property("radial-gradient(circle, " + stops + ")")
	}
	return Property(fmt.Sprintf("linear-gradient(%sdeg, %s)", stop("angle", 180), stops))
}

var typographyKeys = []string{"fontFamily", "fontSize", "fontWeight", "lineHeight",
	"letterSpacing", "textTransform", "fontStyle", "textDecoration"}

// BuildTypography flattens a typography sub-object into font and text
// declarations. Unknown keys are ignored.
func BuildTypography(v page.Values) Declarations {
	decl := Declarations{}
	var l Lowerer
	for _, k := range typographyKeys {
		if x, ok := v[k]; ok && x != nil {
			decl.Set(k, l.value(k, x))
		}
	}
	return decl
}

// Color converts a structured color {r, g, b, a} into an rgba() value.
// Alpha defaults to 1.
func Color(c page.Values) Property {
	r, okr := c.Number("r")
	g, okg := c.Number("g")
	b, okb := c.Number("b")
	if !okr || !okg || !okb {
		return NullStyle
	}
	a, ok := c.Number("a")
	if !ok {
		a = 1
	}
	return Property(fmt.Sprintf("rgba(%s, %s, %s, %s)", page.FormatNumber(r),
		page.FormatNumber(g), page.FormatNumber(b), page.FormatNumber(a)))
}

func colorValue(x any) Property {
	if s, ok := x.(string); ok {
		return Property(Sanitize(s))
	}
	if m := page.AsValues(x); m != nil {
		return Color(m)
	}
	return NullStyle
}
