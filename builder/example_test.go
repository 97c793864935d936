package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/builder"
)

// ExampleBuildGraph composes a weighted cycle with a chord.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(4, nil,
		[]builder.BuilderOption{builder.WithConstantWeight(2.5)},
		builder.Cycle(4),
		builder.Path(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g)
	// Output:
	// Vertex 0: (1, 2.5), (3, 2.5), (1, 2.5)
	// Vertex 1: (0, 2.5), (2, 2.5), (0, 2.5)
	// Vertex 2: (1, 2.5), (3, 2.5)
	// Vertex 3: (2, 2.5), (0, 2.5)
}
