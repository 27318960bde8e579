package mesh_test

import (
	"fmt"

	"github.com/wavekit/scatter/mesh"
)

// ExampleMomentum builds a 16-point momentum mesh and shows the
// transform's guarantees: every momentum positive, order preserved.
func ExampleMomentum() {
	nodes, weights, err := mesh.Gauss(16)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = mesh.Momentum(nodes, weights); err != nil {
		fmt.Println("error:", err)

		return
	}

	positive, ascending := true, true
	for i := range nodes {
		positive = positive && nodes[i] > 0 && weights[i] > 0
		ascending = ascending && (i == 0 || nodes[i] > nodes[i-1])
	}
	fmt.Println(positive, ascending)
	// Output: true true
}
