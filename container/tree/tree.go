package tree

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree represents a binary search tree holding distinct values.
// A Tree is not safe for concurrent use, callers must serialize
// Insert and Remove against every other operation
type Tree[T any] struct {
	root *Node[T]
	cmp  Lesser[T]
	len  int
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Min returns the node in the tree with the
// lowest value. It returns nil if the tree
// is empty
func (t *Tree[T]) Min() *Node[T] {
	return t.root.Min()
}

// Max returns the node in the tree with the
// highest value. It returns nil if tree
// is empty
func (t *Tree[T]) Max() *Node[T] {
	return t.root.Max()
}

// Higher returns the node in the tree with the
// smallest value greater than or equal to v
func (t *Tree[T]) Higher(v T) *Node[T] {
	return t.root.Higher(v)
}

// Lower returns the node in the tree with the
// greatest value lower than or equal to v
func (t *Tree[T]) Lower(v T) *Node[T] {
	return t.root.Lower(v)
}

// Contains returns true if the tree contains
// a node with value v
func (t *Tree[T]) Contains(v T) bool {
	return t.root.Find(v) != nil
}

// Find returns the node in the tree that
// contains a value equal to the one provided
func (t *Tree[T]) Find(v T) *Node[T] {
	return t.root.Find(v)
}

// InOrderWalk calls fn on every node of the tree in
// ascending order
func (t *Tree[T]) InOrderWalk(fn func(*Node[T])) {
	t.root.InOrderWalk(fn)
}

// All returns the values of the tree in ascending order.
// Each call starts a new walk from the current state of the
// tree. The tree must not be modified while iterating
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := t.root.Min(); curr != nil; curr = curr.Successor() {
			if !yield(curr.value) {
				return
			}
		}
	}
}

// Clear removes all nodes from the tree
func (t *Tree[T]) Clear() {
	t.root = nil
	t.len = 0
}

// NewUnbalancedTree creates a new instance of a tree ordered by cmp.
// How balanced the branches of the tree are depends exclusively
// on the order of the insert and remove operations performed
// on the tree
func NewUnbalancedTree[T any](cmp Lesser[T]) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// NewOrderedTree creates a new unbalanced tree for a type
// with a natural order
func NewOrderedTree[T constraints.Ordered]() *Tree[T] {
	return NewUnbalancedTree[T](OrderedLesser[T]{})
}
