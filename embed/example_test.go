package embed_test

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/embed"
)

// ExampleDriver_Search grows a grid of triangles until a fake solver accepts.
func ExampleDriver_Search() {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "1", 0)

	solver := embed.SolverFunc(func(_, target []embed.Pair) (embed.Embedding, error) {
		if len(target) < 100 {
			return nil, nil // pretend small hardware is not enough
		}
		return embed.Embedding{"0": {"g:0:0:0"}, "1": {"g:0:0:1"}}, nil
	})
	res, err := embed.NewDriver(solver).Search(g, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Size, res.Tried)
	// Output:
	// 3 [2 3]
}

// ExampleNotFoundError shows the sizes reported on failure.
func ExampleNotFoundError() {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "1", 0)

	never := embed.SolverFunc(func(_, _ []embed.Pair) (embed.Embedding, error) { return nil, nil })
	_, err := embed.NewDriver(never, embed.WithSchedule([]int{0, 2, 4}), embed.WithMaxSize(5)).Search(g, 2)
	fmt.Println(err)
	// Output:
	// Search: embed: embedding not found; tried sizes n=[2 4 5]
}
