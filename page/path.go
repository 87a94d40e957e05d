package page

import (
	"fmt"
	"strings"
)

// Path is the chain of nodes from the root down to a target node, both inclusive.
type Path []*Node

// Last returns the target node of the path, or nil for an empty path.
func (p Path) Last() *Node {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// Parent returns the parent of the target node, or nil if the target is the
// root or the path is empty.
func (p Path) Parent() *Node {
	if len(p) < 2 {
		return nil
	}
	return p[len(p)-2]
}

func (p Path) String() string {
	ids := make([]string, len(p))
	for i, n := range p {
		ids[i] = n.ID
	}
	return strings.Join(ids, " > ")
}

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node and the index of the next step
// within the node's children. The last slot of a path has index -1.
type slot struct {
	node  *Node
	index int
}

func (s slot) String() string {
	return fmt.Sprintf("%d@%s", s.index, s.node.ID)
}

// --- Slot path -------------------------------------------------------------

type slotPath []slot

func (path slotPath) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath) last() slot {
	if len(path) == 0 {
		return slot{index: -1}
	}
	return path[len(path)-1]
}

func (path slotPath) dropLast() slotPath {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

func (path slotPath) nodes() Path {
	p := make(Path, len(path))
	for i, s := range path {
		p[i] = s.node
	}
	return p
}

func (path slotPath) foldR(f func(slot, slot) slot, zero slot) slot {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

// replaceLast substitutes the target node of the path with n and rebuilds all
// ancestors. Sibling sub-trees are shared with the original tree.
func (path slotPath) replaceLast(n *Node) *Node {
	top := path.dropLast().foldR(cloneSeam, slot{node: n, index: -1})
	tracer().Debugf("replace: new top = %s", top.node)
	return top.node
}

// cloneSeam creates a copy of parent, linking it to child at the slot's index.
func cloneSeam(parent, child slot) slot {
	assertThat(parent.index >= 0 && parent.index < len(parent.node.Children),
		"internal inconsistency: child index %d overflow at %s", parent.index, parent.node.ID)
	cow := parent.node.shallow()
	cow.Children = make([]*Node, len(parent.node.Children))
	copy(cow.Children, parent.node.Children)
	cow.Children[parent.index] = child.node
	return slot{node: cow, index: parent.index}
}

// locate searches for a node by id, depth-first and pre-order, and returns the
// slot path leading to it. The first match wins.
func locate(root *Node, id string) (slotPath, bool) {
	if root == nil {
		return nil, false
	}
	var path slotPath
	var walk func(*Node) bool
	walk = func(n *Node) bool {
		if n.ID == id {
			path = append(path, slot{node: n, index: -1})
			return true
		}
		for i, ch := range n.Children {
			if ch == nil {
				continue
			}
			path = append(path, slot{node: n, index: i})
			if walk(ch) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}
	if !walk(root) {
		return nil, false
	}
	tracer().Debugf("locate: slot path for %q = %s", id, path)
	return path, true
}
