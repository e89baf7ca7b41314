// File: methods_nodes.go
// Role: node lifecycle (AddNode/RemoveNode/HasNode) and node enumeration.
// Determinism: Nodes() returns nodes in insertion order.
package gfa

import "github.com/mvaled/inferdtd/reterm"

// AddNode inserts n if absent (idempotent); structurally equal terms are
// treated as the same node.
func (g *Graph) AddNode(n reterm.Term) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.addNodeLocked(n)
}

func (g *Graph) addNodeLocked(n reterm.Term) {
	if _, ok := g.nodeIndex[n.Key()]; ok {
		return
	}
	g.appendNodeLocked(n)
}

// HasNode reports whether n (by structural equality) is in the node set.
func (g *Graph) HasNode(n reterm.Term) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodeIndex[n.Key()]
	return ok
}

// RemoveNode deletes n and every edge incident to it. Removing an absent
// node, or the Start/End sentinels, is a fault: Start/End are never removed,
// and silently ignoring a missing node would mask a caller bug in this
// single-threaded, internally-consistent engine.
func (g *Graph) RemoveNode(n reterm.Term) {
	if reterm.IsFraming(n) {
		g.faultf("RemoveNode: Start/End are never removed")
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	idx, ok := g.nodeIndex[n.Key()]
	if !ok {
		g.faultf("RemoveNode: node not present: %s", n.Key())
	}

	g.removeIncidentEdgesLocked(n)

	g.nodes = append(g.nodes[:idx], g.nodes[idx+1:]...)
	delete(g.nodeIndex, n.Key())
	for i := idx; i < len(g.nodes); i++ {
		g.nodeIndex[g.nodes[i].Key()] = i
	}
}

// Nodes returns the node set in insertion order. The returned slice is a
// fresh copy; mutating it does not affect the Graph.
func (g *Graph) Nodes() []reterm.Term {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]reterm.Term, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}
