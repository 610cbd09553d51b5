package ucycle_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cyclath/core"
	"github.com/katalvlaran/cyclath/ucycle"
)

// ExampleEnumerate lists every simple cycle of a chorded square, ignoring
// the direction of the underlying edges.
func ExampleEnumerate() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "A")
	_ = g.AddEdge("A", "C")

	for c, err := range ucycle.Enumerate(g, 4) {
		if err != nil {
			fmt.Println("enumeration failed:", err)
			return
		}
		fmt.Println(strings.Join(c, "--"))
	}

	// Output:
	// A--B--C
	// A--B--C--D
	// A--C--D
}
