// SPDX-License-Identifier: MIT
// Package: qubogrid/embed
//
// greedy.go — a small chain-growing heuristic solver.
//
// Algorithm (one try):
//   1. Order logical vertices breadth-first, each component rooted at its
//      highest-degree vertex (ties: lowest ID).
//   2. For vertex v with already placed neighbours u₁..u_m, run one
//      multi-source BFS per u_j from chain(u_j) through free nodes only.
//   3. Root v at the free node r reached by all m searches with the least
//      total depth; ties are broken by a per-try shuffle.
//   4. chain(v) = ∪ PathTo(r) minus the chain(u_j) endpoint. Every path ends
//      at r, so the union is connected and touches each chain(u_j).
//   5. A vertex with no placed neighbour takes the free node with the most
//      free neighbours.
//
// A try fails when some v has no common reachable free node. Tries restart
// with a fresh shuffle; all tries failing yields an empty embedding.
//
// Results are valid by construction. The heuristic is not competitive with
// dedicated embedders; it exists so the search loop runs end-to-end.

package embed

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/qubogrid/bfs"
	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/dfs"
)

// DefaultGreedyTries is used when GreedyOptions.Tries ≤ 0.
const DefaultGreedyTries = 8

// GreedyOptions seeds tie-breaking and bounds restarts.
type GreedyOptions struct {
	Seed  int64
	Tries int
}

// Greedy implements Solver. Each FindEmbedding call reseeds from Seed, so
// identical inputs give identical output.
type Greedy struct {
	opts GreedyOptions
}

// NewGreedy returns the shipped heuristic solver.
func NewGreedy(opts GreedyOptions) *Greedy {
	if opts.Tries <= 0 {
		opts.Tries = DefaultGreedyTries
	}

	return &Greedy{opts: opts}
}

// FindEmbedding implements Solver.
func (s *Greedy) FindEmbedding(logical, target []Pair) (Embedding, error) {
	lg, err := graphOf(logical)
	if err != nil {
		return nil, fmt.Errorf("Greedy: logical: %w", err)
	}
	tg, err := graphOf(target)
	if err != nil {
		return nil, fmt.Errorf("Greedy: target: %w", err)
	}
	if lg.VertexCount() > tg.VertexCount() {
		return nil, nil
	}

	order := placementOrder(lg)
	for t := 0; t < s.opts.Tries; t++ {
		rng := rand.New(rand.NewSource(s.opts.Seed + int64(t)))
		emb, err := s.try(lg, tg, order, rng)
		if err != nil {
			return nil, err
		}
		if emb != nil {
			return emb, nil
		}
	}

	return nil, nil
}

type placement struct {
	lg, tg *core.Graph
	emb    Embedding
	used   map[string]bool
	rank   map[string]int
}

func (s *Greedy) try(lg, tg *core.Graph, order []string, rng *rand.Rand) (Embedding, error) {
	nodes := tg.Vertices()
	rank := make(map[string]int, len(nodes))
	for i, p := range rng.Perm(len(nodes)) {
		rank[nodes[p]] = i
	}
	pl := &placement{
		lg:   lg,
		tg:   tg,
		emb:  make(Embedding, len(order)),
		used: make(map[string]bool, len(nodes)),
		rank: rank,
	}
	for _, v := range order {
		ok, err := pl.place(v)
		if err != nil || !ok {
			return nil, err
		}
	}
	for _, c := range pl.emb {
		core.SortIDs(c)
	}

	return pl.emb, nil
}

// place assigns a chain to v; false means no room.
func (p *placement) place(v string) (bool, error) {
	nbrs, err := p.lg.NeighborIDs(v)
	if err != nil {
		return false, err
	}
	var searches []*bfs.Result
	free := bfs.WithFilterNeighbor(func(_, nbr string) bool { return !p.used[nbr] })
	for _, u := range nbrs {
		chain, placed := p.emb[u]
		if !placed {
			continue
		}
		res, err := bfs.MultiSource(p.tg, chain, free)
		if err != nil {
			return false, fmt.Errorf("Greedy: search from chain of %q: %w", u, err)
		}
		searches = append(searches, res)
	}

	root, ok := p.pickRoot(searches)
	if !ok {
		return false, nil
	}
	chain := Chain{root}
	p.used[root] = true
	for _, res := range searches {
		path, err := res.PathTo(root)
		if err != nil {
			return false, err
		}
		// path[0] belongs to the neighbour's chain; path[len-1] is root
		for _, q := range path[1 : len(path)-1] {
			if !p.used[q] {
				p.used[q] = true
				chain = append(chain, q)
			}
		}
	}
	p.emb[v] = chain

	return true, nil
}

// pickRoot chooses the free node minimising total depth across searches,
// or the free node with the most free neighbours when there are none.
func (p *placement) pickRoot(searches []*bfs.Result) (string, bool) {
	best, bestCost, found := "", 0, false
	for _, q := range p.tg.Vertices() {
		if p.used[q] {
			continue
		}
		cost := 0
		reachable := true
		for _, res := range searches {
			d, ok := res.Depth[q]
			if !ok {
				reachable = false
				break
			}
			cost += d
		}
		if !reachable {
			continue
		}
		if len(searches) == 0 {
			cost = -p.freeDegree(q)
		}
		if !found || cost < bestCost || (cost == bestCost && p.rank[q] < p.rank[best]) {
			best, bestCost, found = q, cost, true
		}
	}

	return best, found
}

func (p *placement) freeDegree(q string) int {
	nbrs, _ := p.tg.NeighborIDs(q)
	n := 0
	for _, x := range nbrs {
		if !p.used[x] {
			n++
		}
	}

	return n
}

// placementOrder lists vertices breadth-first per component, components
// taken in order of their highest-degree vertex (ties: lowest ID).
func placementOrder(g *core.Graph) []string {
	comps, err := dfs.Components(g)
	if err != nil {
		return nil
	}
	degrees := g.Degrees()
	roots := make([]string, len(comps))
	for i, comp := range comps {
		r := comp[0]
		for _, id := range comp[1:] {
			if degrees[id] > degrees[r] || (degrees[id] == degrees[r] && core.LessID(id, r)) {
				r = id
			}
		}
		roots[i] = r
	}
	sort.SliceStable(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		if degrees[a] != degrees[b] {
			return degrees[a] > degrees[b]
		}
		return core.LessID(a, b)
	})

	order := make([]string, 0, g.VertexCount())
	for _, r := range roots {
		res, err := bfs.BFS(g, r)
		if err != nil {
			return nil
		}
		order = append(order, res.Order...)
	}

	return order
}

// graphOf materialises an edge list as an unweighted graph.
func graphOf(pairs []Pair) (*core.Graph, error) {
	g := core.NewGraph()
	for _, e := range pairs {
		if g.HasEdge(e.U, e.V) {
			continue
		}
		if _, err := g.AddEdge(e.U, e.V, 0); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.U, e.V, err)
		}
	}

	return g, nil
}
