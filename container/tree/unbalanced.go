package tree

import "github.com/pkg/errors"

// Insert the value into the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm. It returns
// false if an equal value is already present, in which case the tree
// is left untouched
func (t *Tree[T]) Insert(v T) (bool, error) {
	n, err := NewNode(v, t.cmp)
	if err != nil {
		return false, errors.WithStack(err)
	}

	var parent *Node[T]
	var isLeft bool

	for curr := t.root; curr != nil; {
		c := t.cmp.Less(v, curr.value)
		if c == 0 {
			return false, nil
		}

		parent = curr
		isLeft = c < 0
		if isLeft {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	n.parent = parent

	switch {
	case parent == nil:
		t.root = n
	case isLeft:
		parent.left = n
	default:
		parent.right = n
	}

	t.len++
	return true, nil
}

// Remove the node holding a value equal to v. It returns
// false if there is no such node
func (t *Tree[T]) Remove(v T) bool {
	n := t.Find(v)
	if n == nil {
		return false
	}

	t.remove(n)
	t.len--
	return true
}

// remove excises n from the tree without applying any balancing
// algorithm
func (t *Tree[T]) remove(n *Node[T]) {
	// a node with two children takes the value of its successor,
	// which has no left child, and the successor is removed instead
	if n.left != nil && n.right != nil {
		succ := n.right.Min()
		n.value = succ.value
		n = succ
	}

	child := n.left
	if child == nil {
		child = n.right
	}

	t.transplant(n, child)
	n.parent, n.left, n.right = nil, nil, nil
}

// transplant replaces the subtree rooted at u as a child of
// its parent with the subtree rooted at v, which may be nil
func (t *Tree[T]) transplant(u *Node[T], v *Node[T]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}
