package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lpclique/builder"
)

// ExampleBuildGraph plants a K4 next to a 5-cycle.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Disjoint(builder.Complete(4), builder.Cycle(5)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount(), g.IsClique([]int{1, 2, 3, 4}))
	// Output:
	// [1 2 3 4 5 6 7 8 9]
	// 11 true
}
