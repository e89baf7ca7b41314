// File: rules.go
// Role: R1-R4, tried in fixed preference order by Step.
package repair

import (
	"github.com/mvaled/inferdtd/gfa"
	"github.com/mvaled/inferdtd/reterm"
)

const caseAK = 2
const caseBK = 2

// nonFramingPairs enumerates unordered pairs (x, y) of distinct non-framing
// nodes, x preceding y in g's node order — mirrors the source's
// `nodes[nodes.index(x)+1:]` slicing, which both deduplicates pairs and
// keeps enumeration order deterministic.
func nonFramingPairs(g *gfa.Graph) [][2]reterm.Term {
	nodes := g.Nodes()
	var pairs [][2]reterm.Term
	for i, x := range nodes {
		if reterm.IsFraming(x) {
			continue
		}
		for j := i + 1; j < len(nodes); j++ {
			y := nodes[j]
			if reterm.IsFraming(y) {
				continue
			}
			pairs = append(pairs, [2]reterm.Term{x, y})
		}
	}
	return pairs
}

// enableDisjunctionCaseB is R1: {x,y} subset of pred(x) union pred(y), and
// {x,y} subset of succ(x) union succ(y).
func enableDisjunctionCaseB(g *gfa.Graph) bool {
	for _, pair := range nonFramingPairs(g) {
		x, y := pair[0], pair[1]
		pred := gfa.SetUnion(g.Pred(x), g.Pred(y))
		succ := gfa.SetUnion(g.Succ(x), g.Succ(y))
		if gfa.SetContains(pred, x) && gfa.SetContains(pred, y) &&
			gfa.SetContains(succ, x) && gfa.SetContains(succ, y) {
			enableDisjunctionForNodes(g, []reterm.Term{x, y})
			return true
		}
	}
	return false
}

// enableDisjunctionCaseA is R2 (k=2): bounded, non-empty Pred/Succ
// differences in both directions, with non-empty Pred/Succ intersection.
func enableDisjunctionCaseA(g *gfa.Graph) bool {
	for _, pair := range nonFramingPairs(g) {
		x, y := pair[0], pair[1]
		predX, predY := g.Pred(x), g.Pred(y)
		succX, succY := g.Succ(x), g.Succ(y)

		if len(gfa.SetIntersect(predX, predY)) == 0 {
			continue
		}
		if len(gfa.SetIntersect(succX, succY)) == 0 {
			continue
		}
		if n := len(gfa.SetDifference(predX, predY)); n < 1 || n > caseAK {
			continue
		}
		if n := len(gfa.SetDifference(predY, predX)); n < 1 || n > caseAK {
			continue
		}
		if n := len(gfa.SetDifference(succX, succY)); n < 1 || n > caseAK {
			continue
		}
		if n := len(gfa.SetDifference(succY, succX)); n < 1 || n > caseAK {
			continue
		}

		enableDisjunctionForNodes(g, []reterm.Term{x, y})
		return true
	}
	return false
}

// bypassers returns the edges (p, s), p in Pred(node), s in Succ(node),
// that already exist in g.
func bypassers(g *gfa.Graph, node reterm.Term) []gfa.Edge {
	var found []gfa.Edge
	for _, p := range g.Pred(node) {
		for _, s := range g.Succ(node) {
			if g.HasEdge(p, s) {
				found = append(found, gfa.Edge{From: p, To: s})
			}
		}
	}
	return found
}

// enableOptionalCaseA is R3: node has at least one bypasser edge.
func enableOptionalCaseA(g *gfa.Graph) bool {
	for _, node := range g.Nodes() {
		if reterm.IsFraming(node) {
			continue
		}
		if len(bypassers(g, node)) > 0 {
			enableOptionalForNode(g, node)
			return true
		}
	}
	return false
}

// enableOptionalCaseB is R4 (k=2): node's single in-edge comes from a
// non-empty-matching predecessor r' with |Succ(r')\{node,r'}| <= k.
func enableOptionalCaseB(g *gfa.Graph) bool {
	for _, node := range g.Nodes() {
		if reterm.IsFraming(node) {
			continue
		}
		in := g.InEdges(node)
		if len(in) != 1 {
			continue
		}
		source := in[0].From
		if source.MatchesEmpty() {
			continue
		}
		reach := gfa.SetDifference(g.Succ(source), []reterm.Term{node, source})
		if len(reach) > caseBK {
			continue
		}
		enableOptionalForNode(g, node)
		return true
	}
	return false
}

// Step tries R1, R2, R3, R4, in that order, and applies the first one that
// fires. Returns true iff some repair changed g.
func Step(g *gfa.Graph) bool {
	return enableDisjunctionCaseB(g) ||
		enableDisjunctionCaseA(g) ||
		enableOptionalCaseA(g) ||
		enableOptionalCaseB(g)
}
