// File: reduce.go
// Role: the Rewrite driver — tries the four structural rules in fixed
//       preference order and loops to quiescence.
package rewrite

import (
	"github.com/mvaled/inferdtd/gfa"
	"github.com/mvaled/inferdtd/reterm"
)

// IsFinal reports whether g has the final SORE-automaton shape: exactly
// three nodes (Start, X, End) and exactly the two edges (Start,X), (X,End).
func IsFinal(g *gfa.Graph) bool {
	if g.NodeCount() != 3 || g.EdgeCount() != 2 {
		return false
	}
	for _, n := range g.Nodes() {
		if !reterm.IsFraming(n) {
			return g.HasEdge(reterm.Start(), n) && g.HasEdge(n, reterm.End())
		}
	}
	return false
}

// withinReduceBound is the looser stopping bound used by Reduce's loop: it
// allows Reduce to stop early on degenerate inputs (e.g. the all-empty-input
// {Start,End} graph with no edges) that IsFinal rejects but that no
// structural rule could shrink any further.
func withinReduceBound(g *gfa.Graph) bool {
	return g.NodeCount() <= 3 && g.EdgeCount() <= 2
}

// Step tries the Optional, Self-loop, Disjunction, and Concatenation rules,
// in that order, and applies the first one that fires. Returns true iff some
// rule changed g.
func Step(g *gfa.Graph) bool {
	return optionalRule(g) ||
		selfLoopRule(g) ||
		disjunctionRule(g) ||
		concatenationRule(g)
}

// Reduce repeatedly calls Step until either g falls within the reduce bound
// or no rule fires. Returns true iff g is within bound when Reduce returns;
// a false result means the graph is "stuck" and repair.Step must be tried
// before resuming Reduce. Reaching within-bound does not by itself imply
// IsFinal(g): callers that need the strict final shape must check it too.
func Reduce(g *gfa.Graph) bool {
	for !withinReduceBound(g) {
		if !Step(g) {
			return false
		}
	}
	return true
}
