// File: extent_closure.go
// Role: the extent-closure Pred/Succ reachability relation, the routine
//       that makes every later rule definition tractable as the graph
//       compounds up.
// AI-HINT (file):
//   - succ(n): direct successors, then keep following successors of any
//     intermediate node that MatchesEmpty(), transitively.
//   - pred(n) is the symmetric relation over in-edges.
//   - Results are deduplicated and returned in the Graph's node-insertion
//     order, not discovery order, so two calls over an unchanged Graph are
//     always byte-identical.
package gfa

import "github.com/mvaled/inferdtd/reterm"

// Succ returns Succ(n): n's direct successors, extended transitively
// through any successor that accepts the empty string.
func (g *Graph) Succ(n reterm.Term) []reterm.Term {
	return g.extentClosure(n, func(m reterm.Term) []reterm.Term {
		out := make([]reterm.Term, 0)
		for _, e := range g.OutEdges(m) {
			out = append(out, e.To)
		}
		return out
	})
}

// Pred returns Pred(n): n's direct predecessors, extended transitively
// through any predecessor that accepts the empty string.
func (g *Graph) Pred(n reterm.Term) []reterm.Term {
	return g.extentClosure(n, func(m reterm.Term) []reterm.Term {
		out := make([]reterm.Term, 0)
		for _, e := range g.InEdges(m) {
			out = append(out, e.From)
		}
		return out
	})
}

// extentClosure implements the underlying worklist algorithm:
//
//	R <- direct neighbors of n (via neighborsOf)
//	Q <- R
//	while Q nonempty: pop m; if m.MatchesEmpty(): E <- neighborsOf(m);
//	    R <- R u E; Q <- Q u (E \ visited)
func (g *Graph) extentClosure(n reterm.Term, neighborsOf func(reterm.Term) []reterm.Term) []reterm.Term {
	result := make(map[string]reterm.Term)
	visited := make(map[string]struct{})
	queue := make([]reterm.Term, 0)

	for _, m := range neighborsOf(n) {
		if _, ok := result[m.Key()]; !ok {
			result[m.Key()] = m
			queue = append(queue, m)
		}
	}

	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		if _, done := visited[m.Key()]; done {
			continue
		}
		visited[m.Key()] = struct{}{}

		if !m.MatchesEmpty() {
			continue
		}
		for _, e := range neighborsOf(m) {
			if _, ok := result[e.Key()]; !ok {
				result[e.Key()] = e
			}
			if _, ok := visited[e.Key()]; !ok {
				queue = append(queue, e)
			}
		}
	}

	ordered := make([]reterm.Term, 0, len(result))
	for _, node := range g.Nodes() {
		if _, ok := result[node.Key()]; ok {
			ordered = append(ordered, node)
		}
	}
	return ordered
}
