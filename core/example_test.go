package core_test

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/core"
)

// ExampleGraph_AddEdge builds the 4-cycle and prints its degree sequence.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		u, v := fmt.Sprint(i), fmt.Sprint((i+1)%4)
		if _, err := g.AddEdge(u, v, 0); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Println(g.Vertices())
	fmt.Println(g.DegreeSequence())
	// Output:
	// [0 1 2 3]
	// [2 2 2 2]
}

// ExampleWithEdgeKind tags hardware couplers.
func ExampleWithEdgeKind() {
	g := core.NewGraph()
	_, _ = g.AddEdge("g:0:0", "g:0:1", 0, core.WithEdgeKind(core.KindIntra))
	_, _ = g.AddEdge("g:0:0", "g:1:0", 0, core.WithEdgeKind(core.KindInter))

	for _, e := range g.Edges() {
		fmt.Println(e.ID, e.From, e.To, e.Kind)
	}
	// Output:
	// e1 g:0:0 g:0:1 intra
	// e2 g:0:0 g:1:0 inter
}
