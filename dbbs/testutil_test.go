// Package dbbs_test - a tiny explicit weighted-graph domain shared by
// the engine tests.
package dbbs_test

import (
	"hash/fnv"

	"github.com/katalvlaran/bihs/core"
)

// graphDomain is an undirected weighted graph over string states.
type graphDomain struct {
	adj  map[string][]string
	cost map[[2]string]float64
}

func newGraphDomain() *graphDomain {
	return &graphDomain{
		adj:  make(map[string][]string),
		cost: make(map[[2]string]float64),
	}
}

func (g *graphDomain) edge(a, b string, w float64) *graphDomain {
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	g.cost[[2]string{a, b}] = w
	g.cost[[2]string{b, a}] = w

	return g
}

func (g *graphDomain) AppendSuccessors(s string, buf []string) []string {
	return append(buf, g.adj[s]...)
}

func (g *graphDomain) Cost(from, to string) float64 { return g.cost[[2]string{from, to}] }

func (g *graphDomain) Hash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))

	return h.Sum64()
}

// zeroH is the trivially admissible heuristic, turning the engines
// into bidirectional uniform-cost searches.
func zeroH[S comparable]() core.Heuristic[S] {
	return core.HeuristicFunc[S](func(_, _ S) float64 { return 0 })
}
