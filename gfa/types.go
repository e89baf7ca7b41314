// File: types.go
// Role: Graph struct, Edge struct, the faultf panic helper, and the NewGraph
//       constructor (which pre-seeds the Start/End sentinels).
// Determinism:
//   - nodes is insertion-ordered; nodeIndex only tracks presence, never
//     iteration order. Every iteration over the node set walks `nodes`.
//   - edges is likewise insertion-ordered via `edgeList`/`edgeIndex`.
// Concurrency:
//   - muNode guards `nodes`/`nodeIndex`; muEdge guards `edgeList`/`edgeIndex`.
//   - Code that must touch both always locks muNode before muEdge.
// AI-HINT (file):
//   - Fault conditions (malformed AddEdge endpoints, ReplaceEdge on a
//     missing edge) panic rather than return an error: these are
//     programming faults, not caller-recoverable conditions.
package gfa

import (
	"fmt"
	"sync"

	"github.com/mvaled/inferdtd/reterm"
)

// Edge is a directed, unweighted pair of nodes. Self-loops (From.Equal(To))
// are permitted; parallel edges are not (the edge set is deduplicated by
// (From.Key(), To.Key())).
type Edge struct {
	From reterm.Term
	To   reterm.Term
}

func edgeKey(from, to reterm.Term) string { return from.Key() + "\x00->\x00" + to.Key() }

// Graph is the mutable GFA: a node set (always containing Start and End)
// and an edge set over those nodes.
type Graph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	nodes     []reterm.Term  // insertion order, authoritative for iteration
	nodeIndex map[string]int // Key() -> index into nodes

	edgeList  []Edge
	edgeIndex map[string]int // edgeKey() -> index into edgeList
}

// NewGraph returns an empty GFA pre-seeded with the Start and End
// sentinels and no edges.
func NewGraph() *Graph {
	g := &Graph{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[string]int),
	}
	g.appendNodeLocked(reterm.Start())
	g.appendNodeLocked(reterm.End())
	return g
}

// appendNodeLocked appends n to the node catalog without checking for
// duplicates; callers must have verified n is absent and hold muNode.
func (g *Graph) appendNodeLocked(n reterm.Term) {
	g.nodeIndex[n.Key()] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

func (g *Graph) faultf(format string, args ...interface{}) {
	panic("gfa: " + fmt.Sprintf(format, args...))
}
