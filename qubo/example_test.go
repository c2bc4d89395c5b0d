package qubo_test

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/qubo"
)

// ExampleRun generates the 2-regular graph on four vertices.
func ExampleRun() {
	p := qubo.DefaultParams()
	p.N, p.Density = 4, 0.5

	res, err := qubo.Run(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.K, res.Graph.VertexCount(), res.Graph.EdgeCount())
	fmt.Println(qubo.DegreeHistogram(res.Graph))
	// Output:
	// 2 4 4
	// [0 0 4]
}
