package tree_test

import (
	"fmt"
	"os"

	"github.com/eaugeas/bstree/container/tree"
)

func Example() {
	t := tree.NewOrderedTree[string]()
	for _, name := range []string{"Telerik", "Google", "Microsoft"} {
		if _, err := t.Insert(name); err != nil {
			panic(err)
		}
	}

	_ = tree.Fprint(os.Stdout, t)
	fmt.Println(t.Contains("Telerik"), t.Contains("IBM"))

	t.Remove("Telerik")
	_ = tree.Fprint(os.Stdout, t)
	fmt.Println(t.Contains("Telerik"))

	// Output:
	// Google Microsoft Telerik
	// true false
	// Google Microsoft
	// false
}
