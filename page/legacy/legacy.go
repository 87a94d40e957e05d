package legacy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pagebuilder/page"
)

// ErrNotCanonical is returned by FromTree for trees which do not follow the
// section → column → widget shape.
var ErrNotCanonical = errors.New("tree is not of canonical section/column/widget shape")

// Section is a top-level entry of a legacy document.
type Section struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Settings   page.Values     `json:"settings,omitempty"`
	Style      page.Values     `json:"style,omitempty"`
	Advanced   page.Values     `json:"advanced,omitempty"`
	Responsive page.Responsive `json:"responsive,omitempty"`
	Columns    []Column        `json:"columns"`
}

// Column is a column of a legacy section.
type Column struct {
	ID         string          `json:"id"`
	Width      *float64        `json:"width,omitempty"` // percent
	Settings   page.Values     `json:"settings,omitempty"`
	Style      page.Values     `json:"style,omitempty"`
	Advanced   page.Values     `json:"advanced,omitempty"`
	Responsive page.Responsive `json:"responsive,omitempty"`
	Widgets    []Widget        `json:"widgets"`
}

// Widget is a content element of a legacy column.
type Widget struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Content    page.Values     `json:"content,omitempty"`
	Style      page.Values     `json:"style,omitempty"`
	Advanced   page.Values     `json:"advanced,omitempty"`
	Responsive page.Responsive `json:"responsive,omitempty"`
}

// UnmarshalJSON decodes a section, coercing a malformed column list to empty.
func (s *Section) UnmarshalJSON(data []byte) error {
	type plain Section
	var aux struct {
		plain
		Columns json.RawMessage `json:"columns"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = Section(aux.plain)
	s.Columns = []Column{}
	return decodeList(aux.Columns, &s.Columns, s.ID)
}

// UnmarshalJSON decodes a column, coercing a malformed widget list to empty.
func (c *Column) UnmarshalJSON(data []byte) error {
	type plain Column
	var aux struct {
		plain
		Widgets json.RawMessage `json:"widgets"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = Column(aux.plain)
	c.Widgets = []Widget{}
	return decodeList(aux.Widgets, &c.Widgets, c.ID)
}

func decodeList(raw json.RawMessage, into any, owner string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] != '[' {
		tracer().Infof("legacy entry %q: list of unexpected form %.20s, coerced to empty", owner, raw)
		return nil
	}
	return json.Unmarshal(raw, into)
}

// ToTree converts a legacy document into a node tree under a synthesized root.
func ToTree(sections []Section) *page.Node {
	root := page.NewRoot()
	for _, s := range sections {
		sn := &page.Node{
			ID:         s.ID,
			Kind:       page.KindSection,
			Props:      s.Settings,
			Style:      s.Style,
			Advanced:   s.Advanced,
			Responsive: s.Responsive,
			Children:   make([]*page.Node, 0, len(s.Columns)),
		}
		for _, c := range s.Columns {
			cn := &page.Node{
				ID:         c.ID,
				Kind:       page.KindColumn,
				Props:      c.Settings,
				Style:      c.Style,
				Advanced:   c.Advanced,
				Responsive: c.Responsive,
				Children:   make([]*page.Node, 0, len(c.Widgets)),
			}
			if c.Width != nil {
				cn.Props = cn.Props.With("width", *c.Width)
			}
			for _, w := range c.Widgets {
				cn.Children = append(cn.Children, &page.Node{
					ID:         w.ID,
					Kind:       page.KindWidget,
					WidgetType: w.Type,
					Props:      w.Content,
					Style:      w.Style,
					Advanced:   w.Advanced,
					Responsive: w.Responsive,
					Children:   []*page.Node{},
				})
			}
			sn.Children = append(sn.Children, cn)
		}
		root.Children = append(root.Children, sn)
	}
	tracer().Debugf("converted %d legacy sections to tree", len(sections))
	return root
}

// FromTree converts a tree into a legacy document. Trees which are not of the
// canonical shape are rejected with ErrNotCanonical, naming the offending nodes.
func FromTree(root *page.Node) ([]Section, error) {
	if root == nil {
		return []Section{}, nil
	}
	var odd []string
	sections := make([]Section, 0, len(root.Children))
	for _, sn := range root.Children {
		if sn == nil {
			continue
		}
		if sn.Kind != page.KindSection {
			odd = append(odd, sn.ID)
			continue
		}
		s := Section{
			ID:         sn.ID,
			Type:       "section",
			Settings:   sn.Props,
			Style:      sn.Style,
			Advanced:   sn.Advanced,
			Responsive: sn.Responsive,
			Columns:    make([]Column, 0, len(sn.Children)),
		}
		for _, cn := range sn.Children {
			if cn == nil {
				continue
			}
			if cn.Kind != page.KindColumn {
				odd = append(odd, cn.ID)
				continue
			}
			c := Column{
				ID:         cn.ID,
				Settings:   cn.Props,
				Style:      cn.Style,
				Advanced:   cn.Advanced,
				Responsive: cn.Responsive,
				Widgets:    make([]Widget, 0, len(cn.Children)),
			}
			if w, ok := cn.Props["width"].(float64); ok {
				c.Width = &w
				c.Settings = without(cn.Props, "width")
			}
			for _, wn := range cn.Children {
				if wn == nil {
					continue
				}
				if wn.Kind != page.KindWidget || len(wn.Children) > 0 {
					odd = append(odd, wn.ID)
					continue
				}
				c.Widgets = append(c.Widgets, Widget{
					ID:         wn.ID,
					Type:       wn.WidgetType,
					Content:    wn.Props,
					Style:      wn.Style,
					Advanced:   wn.Advanced,
					Responsive: wn.Responsive,
				})
			}
			s.Columns = append(s.Columns, c)
		}
		sections = append(sections, s)
	}
	if len(odd) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotCanonical, strings.Join(odd, ", "))
	}
	return sections, nil
}

// without returns a copy of v lacking key. A mapping left empty becomes nil,
// mirroring an absent settings entry.
func without(v page.Values, key string) page.Values {
	if len(v) <= 1 {
		return nil
	}
	c := make(page.Values, len(v)-1)
	for k, x := range v {
		if k != key {
			c[k] = x
		}
	}
	return c
}
