package tree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the values of t in ascending order to w,
// separated by spaces and followed by a newline
func Fprint[T any](w io.Writer, t *Tree[T]) error {
	sep := ""
	for v := range t.All() {
		if _, err := fmt.Fprint(w, sep, v); err != nil {
			return err
		}
		sep = " "
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// String returns the values of the tree as written by Fprint
func (t *Tree[T]) String() string {
	var b strings.Builder
	_ = Fprint(&b, t)
	return b.String()
}
