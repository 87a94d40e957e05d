package page

// --- Queries ---------------------------------------------------------------

// Find locates a node by id. The search is depth-first, pre-order; if ids are
// duplicated, the node found first in pre-order wins. Returns nil if id is not
// present.
func Find(root *Node, id string) *Node {
	path, found := locate(root, id)
	if !found {
		return nil
	}
	return path.last().node
}

// FindWithPath locates a node by id and returns it together with the chain of
// its ancestors, root first and the node itself last.
func FindWithPath(root *Node, id string) (*Node, Path) {
	path, found := locate(root, id)
	if !found {
		return nil, nil
	}
	return path.last().node, path.nodes()
}

// Breadcrumb returns the ancestor chain from root to the node with the given
// id, both inclusive. The result is empty if id is not found.
func Breadcrumb(root *Node, id string) []*Node {
	_, path := FindWithPath(root, id)
	if path == nil {
		return []*Node{}
	}
	return path
}

// Flatten returns all nodes of a tree in pre-order, starting with root.
func Flatten(root *Node) []*Node {
	var nodes []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		nodes = append(nodes, n)
		for _, ch := range n.Children {
			if ch != nil {
				walk(ch)
			}
		}
	}
	if root != nil {
		walk(root)
	}
	return nodes
}

// Index creates a lookup table from ids to nodes. For duplicate ids the first
// node in pre-order is kept, consistent with Find.
func Index(root *Node) map[string]*Node {
	nodes := Flatten(root)
	index := make(map[string]*Node, len(nodes))
	for _, n := range nodes {
		if _, exists := index[n.ID]; !exists {
			index[n.ID] = n
		}
	}
	return index
}

// --- Edits -----------------------------------------------------------------

// Insert adds n as a child of the node with id parentID, at position index.
// An index of -1, or any index out of range, appends n as the last child.
// If parentID is not found, root is returned unchanged.
//
// Insert does not check n's id for collisions with ids already present.
func Insert(root *Node, parentID string, n *Node, index int) *Node {
	if n == nil {
		return root
	}
	path, found := locate(root, parentID)
	if !found {
		tracer().Debugf("insert: parent %q not found", parentID)
		return root
	}
	parent := path.last().node
	cow := parent.shallow()
	cow.Children = insertAt(parent.Children, index, n)
	tracer().Debugf("insert: %s into %s at %d", n, parent, index)
	return path.replaceLast(cow)
}

// Remove deletes the node with the given id, together with its sub-tree.
// Removing the root or an unknown id returns root unchanged.
func Remove(root *Node, id string) *Node {
	path, found := locate(root, id)
	if !found || len(path) < 2 {
		tracer().Debugf("remove: %q not found or is root", id)
		return root
	}
	parentPath := path.dropLast()
	ps := parentPath.last()
	cow := ps.node.shallow()
	cow.Children = removeAt(ps.node.Children, ps.index)
	return parentPath.replaceLast(cow)
}

// Updates holds replacement values for Update. Nil fields leave the
// corresponding node field unchanged; they never clear it. To clear a map,
// pass an empty, non-nil one.
type Updates struct {
	Props      Values
	Style      Values
	Advanced   Values
	Responsive Responsive
	Kind       *Kind
	WidgetType *string
}

// Update replaces fields of the node with the given id. Each non-nil field of
// upd replaces the node's field wholesale; maps are not merged key by key.
// Returns root unchanged if id is not found.
func Update(root *Node, id string, upd Updates) *Node {
	path, found := locate(root, id)
	if !found {
		tracer().Debugf("update: %q not found", id)
		return root
	}
	cow := path.last().node.shallow()
	if upd.Props != nil {
		cow.Props = upd.Props
	}
	if upd.Style != nil {
		cow.Style = upd.Style
	}
	if upd.Advanced != nil {
		cow.Advanced = upd.Advanced
	}
	if upd.Responsive != nil {
		cow.Responsive = upd.Responsive
	}
	if upd.Kind != nil {
		cow.Kind = *upd.Kind
	}
	if upd.WidgetType != nil {
		cow.WidgetType = *upd.WidgetType
	}
	return path.replaceLast(cow)
}

// Move re-parents the node with the given id (and its sub-tree) to the node
// with id targetParentID, at position index within the target's children as
// they are after the node has been removed. Index semantics are those of
// Insert.
//
// Move is a no-op if the node is unknown or the root, if the target parent is
// unknown, or if the target parent is the node itself or one of its
// descendants (which would detach the sub-tree from the document).
func Move(root *Node, id, targetParentID string, index int) *Node {
	path, found := locate(root, id)
	if !found || len(path) < 2 {
		return root
	}
	node := path.last().node
	if Find(node, targetParentID) != nil {
		tracer().Debugf("move: target %q is inside sub-tree of %q", targetParentID, id)
		return root
	}
	if Find(root, targetParentID) == nil {
		return root
	}
	r := Remove(root, id)
	if r == root {
		return root
	}
	moved := Insert(r, targetParentID, node, index)
	if moved == r {
		return root
	}
	return moved
}

// ReorderChildren moves the child at position from to position to, within the
// children of the node with id parentID. Out of range indices leave root
// unchanged.
func ReorderChildren(root *Node, parentID string, from, to int) *Node {
	path, found := locate(root, parentID)
	if !found {
		return root
	}
	parent := path.last().node
	l := len(parent.Children)
	if from < 0 || from >= l || to < 0 || to >= l || from == to {
		return root
	}
	ch := parent.Children[from]
	children := removeAt(parent.Children, from)
	cow := parent.shallow()
	cow.Children = insertAt(children, to, ch)
	return path.replaceLast(cow)
}

// --- Slices of children ----------------------------------------------------

// insertAt returns a new slice with n inserted at i. Out of range indices
// append.
func insertAt(chs []*Node, i int, n *Node) []*Node {
	if i < 0 || i > len(chs) {
		i = len(chs)
	}
	c := make([]*Node, 0, len(chs)+1)
	c = append(c, chs[:i]...)
	c = append(c, n)
	return append(c, chs[i:]...)
}

// removeAt returns a new slice without the element at i.
func removeAt(chs []*Node, i int) []*Node {
	c := make([]*Node, 0, len(chs))
	c = append(c, chs[:i]...)
	return append(c, chs[i+1:]...)
}
