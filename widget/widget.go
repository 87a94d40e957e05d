package widget

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/style"
	"golang.org/x/net/html"
)

// Input is what a renderer gets to produce a widget's HTML.
type Input struct {
	Node   *page.Node         // the widget node
	Props  page.Values        // effective props for Device
	Style  style.Declarations // declarations without container properties
	Raw    style.Declarations // all effective declarations
	Device page.Device
}

// Renderer produces the HTML fragment for a widget node. A renderer may
// return nil for widgets without visual representation.
type Renderer interface {
	Render(Input) (*html.Node, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Input) (*html.Node, error)

// Render calls f(in).
func (f RendererFunc) Render(in Input) (*html.Node, error) {
	return f(in)
}

// Widget is the definition of a widget type.
type Widget struct {
	Type     string `validate:"required,max=64"`
	Name     string `validate:"required"`
	Icon     string
	Category string
	Renderer Renderer `validate:"required"`
	Schema   Schema
	Defaults page.Values // default props for new widgets of this type
}

func (w Widget) String() string {
	return fmt.Sprintf("widget(%s)", w.Type)
}

// Schema enumerates the configuration fields of a widget type, grouped by
// the node value maps they control.
type Schema struct {
	Content  []Field `validate:"dive"`
	Style    []Field `validate:"dive"`
	Advanced []Field `validate:"dive"`
}

// Field describes a single configuration field for an editing surface.
// Responsive fields support per-device overrides. Condition, if set,
// controls the visibility of the field depending on sibling values.
type Field struct {
	Type       string `validate:"required"`
	Label      string
	Name       string `validate:"required"`
	Default    any
	Responsive bool
	Condition  *Condition
}

// Condition is an equality or membership predicate over sibling values.
// With In non-empty, the sibling value must equal one of its entries;
// otherwise it must equal Equals.
type Condition struct {
	Field  string `validate:"required"`
	Equals any
	In     []any
}

// Holds evaluates the condition against sibling values. A nil condition
// always holds.
func (c *Condition) Holds(values page.Values) bool {
	if c == nil {
		return true
	}
	v := values[c.Field]
	if len(c.In) > 0 {
		for _, x := range c.In {
			if sameValue(v, x) {
				return true
			}
		}
		return false
	}
	return sameValue(v, c.Equals)
}

// sameValue compares values, treating numbers of different Go types as equal
// if their values are.
func sameValue(a, b any) bool {
	fa, oka := numberOnly(a)
	fb, okb := numberOnly(b)
	if oka && okb {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func numberOnly(x any) (float64, bool) {
	if _, ok := x.(string); ok {
		return 0, false
	}
	return page.AsNumber(x)
}

// Fields returns all fields of the schema, content first.
func (s Schema) Fields() []Field {
	all := make([]Field, 0, len(s.Content)+len(s.Style)+len(s.Advanced))
	all = append(all, s.Content...)
	all = append(all, s.Style...)
	return append(all, s.Advanced...)
}

// Defaults collects the default values of the content fields. These are the
// schema's contribution to a new widget's props.
func (s Schema) Defaults() page.Values {
	return defaultsOf(s.Content)
}

// StyleDefaults collects the default values of the style fields.
func (s Schema) StyleDefaults() page.Values {
	return defaultsOf(s.Style)
}

func defaultsOf(fields []Field) page.Values {
	d := page.Values{}
	for _, f := range fields {
		if f.Default != nil {
			d[f.Name] = f.Default
		}
	}
	return d
}

// Visible returns the fields of group whose conditions hold for values.
func Visible(group []Field, values page.Values) []Field {
	var vis []Field
	for _, f := range group {
		if f.Condition.Holds(values) {
			vis = append(vis, f)
		}
	}
	return vis
}
