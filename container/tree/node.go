package tree

import (
	"fmt"
	"reflect"

	errs "github.com/eaugeas/bstree/errors"
)

// ErrInvalidValue is returned when attempting to store a nil value
var ErrInvalidValue = &errs.Error{
	ErrorCode:   errs.CodeInvalidValue,
	Description: "cannot insert nil value",
}

// isNil reports whether v is nil for the nullable kinds. Values
// of any other kind are never nil
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Node of a tree. A node owns its left and right children, the
// parent link is only a back-reference used to splice and walk
// the tree
type Node[T any] struct {
	value T

	cmp    Lesser[T]
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// NewNode creates a detached node holding v
func NewNode[T any](v T, cmp Lesser[T]) (*Node[T], error) {
	if isNil(v) {
		return nil, ErrInvalidValue
	}

	return &Node[T]{value: v, cmp: cmp}, nil
}

// Value returns the value stored in the node
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Parent returns the node's parent
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Compare orders two nodes by their values
func (n *Node[T]) Compare(o *Node[T]) int {
	return n.cmp.Less(n.value, o.value)
}

// Equal returns true if both nodes hold equal values
func (n *Node[T]) Equal(o *Node[T]) bool {
	return n.Compare(o) == 0
}

func (n *Node[T]) String() string {
	return fmt.Sprint(n.value)
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Contains returns true if the subtree contains
// a node with value v
func (n *Node[T]) Contains(v T) bool {
	return n.Find(v) != nil
}

// Find returns the node in the subtree that contains
// a value equal to the one provided
func (n *Node[T]) Find(v T) *Node[T] {
	for curr := n; curr != nil; {
		c := curr.cmp.Less(v, curr.value)
		switch {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// Successor finds the successor of the current
// node in its tree. That is, the node in the tree
// of the lowest order that is strictly greater than
// the current node.
func (n *Node[T]) Successor() *Node[T] {
	if n.right != nil {
		return n.right.Min()
	}

	curr := n
	parent := n.parent
	for parent != nil && curr == parent.right {
		curr = parent
		parent = parent.parent
	}

	return parent
}

// Predecessor finds the predecessor of the current
// node in its tree. That is, the node in the tree
// of the highest order that is strictly smaller than
// the current node.
func (n *Node[T]) Predecessor() *Node[T] {
	if n.left != nil {
		return n.left.Max()
	}

	curr := n
	parent := n.parent
	for parent != nil && curr == parent.left {
		curr = parent
		parent = parent.parent
	}

	return parent
}

// Higher returns the node in the subtree with the
// smallest value greater than or equal to v
func (n *Node[T]) Higher(v T) *Node[T] {
	var higher *Node[T]

	for curr := n; curr != nil; {
		if curr.cmp.Less(v, curr.value) <= 0 {
			higher = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return higher
}

// Lower returns the node in the subtree with the
// greatest value lower than or equal to v
func (n *Node[T]) Lower(v T) *Node[T] {
	var lower *Node[T]

	for curr := n; curr != nil; {
		if curr.cmp.Less(v, curr.value) < 0 {
			curr = curr.left
		} else {
			lower = curr
			curr = curr.right
		}
	}

	return lower
}

// InOrderWalk calls fn on every node of the subtree in
// ascending order. fn must not modify the tree
func (n *Node[T]) InOrderWalk(fn func(*Node[T])) {
	if n == nil {
		return
	}

	last := n.Max()
	for curr := n.Min(); curr != nil; curr = curr.Successor() {
		fn(curr)
		if curr == last {
			break
		}
	}
}
