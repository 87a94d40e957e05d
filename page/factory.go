package page

import (
	"github.com/google/uuid"
)

// RootID is the conventional id of a document's root node.
const RootID = "root"

// IDGenerator creates fresh node ids for nodes of a given kind.
type IDGenerator func(Kind) string

// NewID creates a fresh, globally unique id for a node of kind k.
func NewID(k Kind) string {
	return string(k) + "-" + uuid.NewString()
}

// NewRoot creates an empty document root.
func NewRoot(children ...*Node) *Node {
	return &Node{ID: RootID, Kind: KindRoot, Children: append([]*Node{}, children...)}
}

// NewSection creates a section holding the given number of equally wide,
// empty columns. Sections are boxed by default.
func NewSection(columns int) *Node {
	if columns < 1 {
		columns = 1
	}
	s := &Node{
		ID:       NewID(KindSection),
		Kind:     KindSection,
		Advanced: Values{"contentWidth": "boxed"},
		Children: make([]*Node, columns),
	}
	width := 100.0 / float64(columns)
	for i := range s.Children {
		s.Children[i] = NewColumn(width)
	}
	return s
}

// NewColumn creates an empty column with a width given in percent.
func NewColumn(width float64) *Node {
	return &Node{
		ID:       NewID(KindColumn),
		Kind:     KindColumn,
		Props:    Values{"width": width},
		Children: []*Node{},
	}
}

// NewWidget creates a widget leaf of the given type. props is copied.
func NewWidget(widgetType string, props Values) *Node {
	return &Node{
		ID:         NewID(KindWidget),
		Kind:       KindWidget,
		WidgetType: widgetType,
		Props:      props.Copy(),
		Style:      Values{},
		Children:   []*Node{},
	}
}

// Clone creates a deep copy of a sub-tree, keeping all ids.
func Clone(n *Node) *Node {
	return cloneWith(n, nil)
}

func cloneWith(n *Node, gen IDGenerator) *Node {
	if n == nil {
		return nil
	}
	c := n.shallow()
	if gen != nil {
		c.ID = gen(n.Kind)
	}
	c.Props = n.Props.Clone()
	c.Style = n.Style.Clone()
	c.Advanced = n.Advanced.Clone()
	if n.Responsive != nil {
		c.Responsive = make(Responsive, len(n.Responsive))
		for d, o := range n.Responsive {
			if o == nil {
				c.Responsive[d] = nil
				continue
			}
			c.Responsive[d] = &Override{
				Props:    o.Props.Clone(),
				Style:    o.Style.Clone(),
				Advanced: o.Advanced.Clone(),
			}
		}
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = cloneWith(ch, gen)
		}
	}
	return c
}

// Duplicate clones the sub-tree of the node with the given id, assigning
// fresh ids to every node of the clone, and inserts the clone right after the
// original. It returns the new root and the clone. For the root node or an
// unknown id, the original root and a nil clone are returned.
func Duplicate(root *Node, id string) (*Node, *Node) {
	return DuplicateWith(root, id, NewID)
}

// DuplicateWith is Duplicate with a client-supplied id generator.
func DuplicateWith(root *Node, id string, gen IDGenerator) (*Node, *Node) {
	path, found := locate(root, id)
	if !found || len(path) < 2 {
		return root, nil
	}
	if gen == nil {
		gen = NewID
	}
	clone := cloneWith(path.last().node, gen)
	parentPath := path.dropLast()
	ps := parentPath.last()
	cow := ps.node.shallow()
	cow.Children = insertAt(ps.node.Children, ps.index+1, clone)
	tracer().Debugf("duplicate: %s cloned as %s", path.last().node, clone)
	return parentPath.replaceLast(cow), clone
}
