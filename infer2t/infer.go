// File: infer.go
// Role: InferAutomaton, the sole entry point of 2T-INF.
// AI-HINT (file):
//   - Every node added here is a bare reterm.Symbol leaf; matches-empty is
//     false for all of them, so Pred/Succ degenerate to direct adjacency at
//     this stage — the extent-closure only becomes non-trivial once
//     rewrite/repair introduce Optional/Kleene nodes.
//   - Sequences containing the reserved Start/End symbols panic: the
//     reserved Start and End sentinels must not appear in user data.
package infer2t

import (
	"github.com/mvaled/inferdtd/gfa"
	"github.com/mvaled/inferdtd/reterm"
)

// InferAutomaton constructs the 2-gram union GFA from sequences.
//
// For each sequence [x1,...,xk]: adds each xi to V, and edges
// (Start,x1), (xi,xi+1) for 1<=i<k, and (xk,End). An empty sequence adds
// the edge (Start,End). Edges and nodes are deduplicated by gfa.Graph
// itself.
//
// Complexity: O(total sequence length).
func InferAutomaton(sequences [][]reterm.Symbol) *gfa.Graph {
	g := gfa.NewGraph()
	start, end := reterm.Start(), reterm.End()

	for _, sequence := range sequences {
		last := start
		for _, symbol := range sequence {
			leaf := reterm.NewSymbol(symbol)
			g.AddNode(leaf)
			g.AddEdge(last, leaf)
			last = leaf
		}
		g.AddEdge(last, end)
	}

	return g
}
