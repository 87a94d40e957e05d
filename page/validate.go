package page

import (
	"errors"
	"fmt"
)

// Causes of validation failures, to be tested with errors.Is.
var (
	ErrEmptyDocument = errors.New("document has no root")
	ErrRootKind      = errors.New("root misplaced")
	ErrCycle         = errors.New("cycle or duplicate id")
	ErrMissingID     = errors.New("node without id")
	ErrMissingKind   = errors.New("node without kind")
)

// ValidationError describes why a document failed validation.
type ValidationError struct {
	NodeID  string // offending node, empty if not identifiable
	Message string
	Err     error // one of the Err… causes above
}

func (e *ValidationError) Error() string {
	if e.NodeID == "" {
		return fmt.Sprintf("invalid document: %s", e.Message)
	}
	return fmt.Sprintf("invalid document: node %q: %s", e.NodeID, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a document for well-formedness: the top node must be the
// only node of kind root, every node must have an id and a kind, and no id may
// be visited twice. A revisited id means either a cycle or a duplicated id;
// both are reported as ErrCycle. Validate does not repair anything.
//
// Validate runs in O(n). It returns nil for a valid document.
func Validate(root *Node) error {
	if root == nil {
		return &ValidationError{Message: "empty document", Err: ErrEmptyDocument}
	}
	if root.Kind != KindRoot {
		return &ValidationError{NodeID: root.ID, Message: "top node is not of kind root", Err: ErrRootKind}
	}
	visited := make(map[string]struct{})
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.ID == "" {
			return &ValidationError{Message: fmt.Sprintf("%s has no id", n.Kind), Err: ErrMissingID}
		}
		if n.Kind == "" {
			return &ValidationError{NodeID: n.ID, Message: "node has no kind", Err: ErrMissingKind}
		}
		if n.Kind == KindRoot && n != root {
			return &ValidationError{NodeID: n.ID, Message: "nested root node", Err: ErrRootKind}
		}
		if _, seen := visited[n.ID]; seen {
			return &ValidationError{NodeID: n.ID, Message: "id visited twice", Err: ErrCycle}
		}
		visited[n.ID] = struct{}{}
		for i := len(n.Children) - 1; i >= 0; i-- { // keep pre-order
			if n.Children[i] != nil {
				stack = append(stack, n.Children[i])
			}
		}
	}
	return nil
}
