// File: replace_node.go
// Role: ReplaceNode, the pivotal structural operation rewrite rules use to
//       fold a node (or a set of nodes) into a compound RE term.
// AI-HINT (file):
//   - Mirrors original_source/inferdtd/Graph.py's replacenode exactly,
//     including the self-loop special case ((old,old) -> (new,new)) which
//     must run before the generic outgoing-edge rewiring, or the self-loop
//     would be rewritten twice (once as an out-edge, once as an in-edge).
package gfa

import "github.com/mvaled/inferdtd/reterm"

// ReplaceNode folds old into new: new is added if absent; a self-loop on
// old becomes a self-loop on new; every other outgoing/incoming edge of old
// is rewired to new (deduplicated against edges new already has); old is
// then removed.
//
// Complexity: O(deg(old)).
func (g *Graph) ReplaceNode(old, new reterm.Term) {
	g.muNode.Lock()
	g.addNodeLocked(new)
	g.muNode.Unlock()

	g.muEdge.Lock()
	if _, ok := g.edgeIndex[edgeKey(old, old)]; ok {
		g.removeEdgeLocked(old, old)
		g.addEdgeLocked(new, new)
	}

	outEdges := make([]Edge, 0)
	inEdges := make([]Edge, 0)
	for _, e := range g.edgeList {
		if e.From.Equal(old) {
			outEdges = append(outEdges, e)
		}
		if e.To.Equal(old) {
			inEdges = append(inEdges, e)
		}
	}
	for _, e := range outEdges {
		g.removeEdgeLocked(e.From, e.To)
		g.addEdgeLocked(new, e.To)
	}
	for _, e := range inEdges {
		g.removeEdgeLocked(e.From, e.To)
		g.addEdgeLocked(e.From, new)
	}
	g.muEdge.Unlock()

	g.muNode.Lock()
	idx, ok := g.nodeIndex[old.Key()]
	if ok {
		g.nodes = append(g.nodes[:idx], g.nodes[idx+1:]...)
		delete(g.nodeIndex, old.Key())
		for i := idx; i < len(g.nodes); i++ {
			g.nodeIndex[g.nodes[i].Key()] = i
		}
	}
	g.muNode.Unlock()
}
