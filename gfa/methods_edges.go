// File: methods_edges.go
// Role: edge lifecycle (AddEdge/RemoveEdge/HasEdge) and incidence queries
//       (InEdges/OutEdges), plus ReplaceEdge.
// Determinism: Edges()/InEdges()/OutEdges() all preserve edge-insertion
//       order.
package gfa

import "github.com/mvaled/inferdtd/reterm"

// AddEdge inserts the edge (from,to) if both endpoints are already in V and
// the edge is not already present (idempotent). Missing endpoints are a
// fault: both endpoints must already be in V.
func (g *Graph) AddEdge(from, to reterm.Term) {
	g.muNode.RLock()
	_, fromOK := g.nodeIndex[from.Key()]
	_, toOK := g.nodeIndex[to.Key()]
	g.muNode.RUnlock()
	if !fromOK || !toOK {
		g.faultf("AddEdge: endpoint not in node set (from=%s to=%s)", from.Key(), to.Key())
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.addEdgeLocked(from, to)
}

func (g *Graph) addEdgeLocked(from, to reterm.Term) {
	key := edgeKey(from, to)
	if _, ok := g.edgeIndex[key]; ok {
		return
	}
	g.edgeIndex[key] = len(g.edgeList)
	g.edgeList = append(g.edgeList, Edge{From: from, To: to})
}

// RemoveEdge deletes the edge (from,to). Removing an absent edge is a
// no-op.
func (g *Graph) RemoveEdge(from, to reterm.Term) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.removeEdgeLocked(from, to)
}

func (g *Graph) removeEdgeLocked(from, to reterm.Term) {
	key := edgeKey(from, to)
	idx, ok := g.edgeIndex[key]
	if !ok {
		return
	}
	g.edgeList = append(g.edgeList[:idx], g.edgeList[idx+1:]...)
	delete(g.edgeIndex, key)
	for i := idx; i < len(g.edgeList); i++ {
		g.edgeIndex[edgeKey(g.edgeList[i].From, g.edgeList[i].To)] = i
	}
}

// removeIncidentEdgesLocked removes every edge touching n. Callers must
// hold muEdge (and muNode, since it is always called alongside a node
// mutation).
func (g *Graph) removeIncidentEdgesLocked(n reterm.Term) {
	kept := g.edgeList[:0:0]
	for _, e := range g.edgeList {
		if e.From.Equal(n) || e.To.Equal(n) {
			continue
		}
		kept = append(kept, e)
	}
	g.edgeList = kept
	g.edgeIndex = make(map[string]int, len(g.edgeList))
	for i, e := range g.edgeList {
		g.edgeIndex[edgeKey(e.From, e.To)] = i
	}
}

// HasEdge reports whether the edge (from,to) exists.
func (g *Graph) HasEdge(from, to reterm.Term) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edgeIndex[edgeKey(from, to)]
	return ok
}

// ReplaceEdge removes old (which must exist — a fault otherwise) and then
// adds new (deduplicated against any edge already present).
func (g *Graph) ReplaceEdge(old, new Edge) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, ok := g.edgeIndex[edgeKey(old.From, old.To)]; !ok {
		g.faultf("ReplaceEdge: edge not present: %s", edgeKey(old.From, old.To))
	}
	g.removeEdgeLocked(old.From, old.To)
	g.addEdgeLocked(new.From, new.To)
}

// OutEdges returns every edge whose From endpoint is n, in edge-insertion
// order. Linear scan; acceptable at the graph sizes this engine operates on.
func (g *Graph) OutEdges(n reterm.Term) []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	var out []Edge
	for _, e := range g.edgeList {
		if e.From.Equal(n) {
			out = append(out, e)
		}
	}
	return out
}

// InEdges returns every edge whose To endpoint is n, in edge-insertion
// order.
func (g *Graph) InEdges(n reterm.Term) []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	var out []Edge
	for _, e := range g.edgeList {
		if e.To.Equal(n) {
			out = append(out, e)
		}
	}
	return out
}

// Edges returns all edges in insertion order. The returned slice is a fresh
// copy.
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Edge, len(g.edgeList))
	copy(out, g.edgeList)
	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edgeList)
}
