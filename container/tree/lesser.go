package tree

import "golang.org/x/exp/constraints"

// Lesser compares two values
type Lesser[T any] interface {
	// Less returns
	//  -1 if a < b
	//   0 if a == b
	//   1 if a > b
	Less(a, b T) int
}

// LesserFunc adapts a three-way comparison function
// to the Lesser interface
type LesserFunc[T any] func(a, b T) int

// Less calls f(a, b)
func (f LesserFunc[T]) Less(a, b T) int {
	return f(a, b)
}

// OrderedLesser implementation of the Lesser interface for
// any type with a natural order
type OrderedLesser[T constraints.Ordered] struct{}

// Less returns
//  -1 if a < b
//   0 if a == b
//   1 if a > b
func (OrderedLesser[T]) Less(a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	} else {
		return 0
	}
}

// IntLesser implementation of the Lesser interface for
// integers
type IntLesser = OrderedLesser[int]

// StringLesser implementation of the Lesser interface for
// strings, ordered byte-wise
type StringLesser = OrderedLesser[string]
