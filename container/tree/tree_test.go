package tree

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

const treeMaxValue = 10

type balancedTreeGenerator struct {
	level uint
	index uint

	// Highest sets the maximum value an element can have
	Highest uint
}

// Next returns the values of a complete tree level by level
func (g *balancedTreeGenerator) Next() (int, bool) {
	if (math.Pow(2, float64(g.level)) + float64(g.index)) > float64(g.Highest) {
		return 0, false
	}

	levelElements := uint(math.Pow(2, float64(g.level)))
	value := (g.Highest * (2*g.index + 1)) / (2 * levelElements)

	g.index += 1
	if g.index >= levelElements {
		g.index = 0
		g.level += 1
	}

	return int(value), true
}

func levels[T any](tree *Tree[T]) [][]*Node[T] {
	result := [][]*Node[T]{{tree.root}}
	currLevel := 0

	for {
		nels := int(math.Pow(2, float64(currLevel+1)))
		result = append(result, make([]*Node[T], nels))
		nodesAdded := 0

		for i := 0; i < nels/2; i++ {
			if result[currLevel][i] != nil {
				nodesAdded += 1
				result[currLevel+1][2*i] = result[currLevel][i].left
				result[currLevel+1][2*i+1] = result[currLevel][i].right
			}
		}

		currLevel += 1
		if nodesAdded == 0 {
			break
		}
	}

	// the last level is empty so it can be removed
	return result[:currLevel-1]
}

func assertEqualTree[T any](t *testing.T, expected [][]interface{}, tree *Tree[T]) {
	levels := levels(tree)
	assert.Equal(t, len(expected), len(levels))
	for level := 0; level < len(expected) && level < len(levels); level++ {
		assert.Equal(t, len(expected[level]), len(levels[level]))
		for col := 0; col < len(expected[level]) && col < len(levels[level]); col++ {
			if expected[level][col] == nil {
				assert.Nil(t, levels[level][col])
			} else if assert.NotNil(t, levels[level][col]) {
				assert.Equal(t, expected[level][col], levels[level][col].value)
			}
		}
	}
}

// assertValidTree checks the ordering of every subtree, the parent
// back-references and the node count
func assertValidTree[T any](t *testing.T, tree *Tree[T]) bool {
	t.Helper()

	if tree.root == nil {
		return assert.Equal(t, 0, tree.Len())
	}

	if !assert.Nil(t, tree.root.parent, "root has a parent") {
		return false
	}

	count := 0
	var check func(n *Node[T], lo, hi *Node[T]) bool
	check = func(n *Node[T], lo, hi *Node[T]) bool {
		if n == nil {
			return true
		}

		count++
		if lo != nil && tree.cmp.Less(lo.value, n.value) >= 0 {
			return assert.Fail(t, "left bound violated", spew.Sdump(lo.value, n.value))
		}
		if hi != nil && tree.cmp.Less(n.value, hi.value) >= 0 {
			return assert.Fail(t, "right bound violated", spew.Sdump(n.value, hi.value))
		}
		if n.left != nil && n.left.parent != n {
			return assert.Fail(t, "left child parent mismatch", spew.Sdump(n.value))
		}
		if n.right != nil && n.right.parent != n {
			return assert.Fail(t, "right child parent mismatch", spew.Sdump(n.value))
		}

		return check(n.left, lo, n) && check(n.right, n, hi)
	}

	return check(tree.root, nil, nil) && assert.Equal(t, count, tree.Len())
}

func prePopulateTree(tree *Tree[int]) {
	if tree.Len() != 0 {
		panic("attempt to prepopulate non-emtpy tree")
	}
	it := balancedTreeGenerator{Highest: treeMaxValue}
	for {
		value, ok := it.Next()
		if !ok {
			break
		}

		if _, err := tree.Insert(value); err != nil {
			panic(err)
		}
	}
}

func TestBalancedTreeGenerator(t *testing.T) {
	it := balancedTreeGenerator{Highest: treeMaxValue}
	var values []int
	for {
		value, ok := it.Next()
		if !ok {
			break
		}
		values = append(values, value)
	}

	assert.Equal(t, []int{5, 2, 7, 1, 3, 6, 8, 0, 1, 3}, values)
}
