// File: primitives.go
// Role: the two repair primitives shared by all four rules: enable-optional
//       and enable-disjunction.
package repair

import (
	"github.com/mvaled/inferdtd/gfa"
	"github.com/mvaled/inferdtd/reterm"
	"github.com/mvaled/inferdtd/rewrite"
)

// enableOptionalForNode removes every edge (p, s) with p in Pred(node) and
// s in Succ(node), then replaces node by Optional(node). Equivalent to
// first inserting the edges Optional would need and then letting the
// Optional rule collapse them, but short-circuited: those edges are exactly
// the ones the Optional rule would otherwise delete.
func enableOptionalForNode(g *gfa.Graph, node reterm.Term) {
	pred := g.Pred(node)
	succ := g.Succ(node)
	var doomed []gfa.Edge
	for _, p := range pred {
		for _, s := range succ {
			if g.HasEdge(p, s) {
				doomed = append(doomed, gfa.Edge{From: p, To: s})
			}
		}
	}
	for _, e := range doomed {
		g.RemoveEdge(e.From, e.To)
	}
	g.ReplaceNode(node, reterm.Optional(node))
}

// isValidDisjunctionGroup reports whether every node in the group already
// has exactly the same Pred and Succ sets as the first node.
func isValidDisjunctionGroup(g *gfa.Graph, nodes []reterm.Term) bool {
	pred := g.Pred(nodes[0])
	succ := g.Succ(nodes[0])
	for _, which := range nodes[1:] {
		if !gfa.SetEqual(pred, g.Pred(which)) || !gfa.SetEqual(succ, g.Succ(which)) {
			return false
		}
	}
	return true
}

// enableDisjunctionForNodes widens the Pred/Succ sets of every node in the
// group to their union, by inserting the edges each node is missing, until
// all nodes in the group share identical Pred and Succ sets. It then asserts
// that the Disjunction rule fires immediately: it is invoked directly (not
// via rewrite.Step) because the Self-loop rule's higher preference could
// otherwise preempt it once the new edges are in place.
func enableDisjunctionForNodes(g *gfa.Graph, nodes []reterm.Term) {
	for !isValidDisjunctionGroup(g, nodes) {
		var predUnion, succUnion []reterm.Term
		for _, which := range nodes {
			predUnion = gfa.SetUnion(predUnion, g.Pred(which))
			succUnion = gfa.SetUnion(succUnion, g.Succ(which))
		}
		for _, which := range nodes {
			whichPred := g.Pred(which)
			for _, source := range predUnion {
				if !gfa.SetContains(whichPred, source) {
					g.AddEdge(source, which)
				}
			}
			whichSucc := g.Succ(which)
			for _, target := range succUnion {
				if !gfa.SetContains(whichSucc, target) {
					g.AddEdge(which, target)
				}
			}
		}
	}
	if !rewrite.ApplyDisjunctionRule(g) {
		panic("repair: enable-disjunction postcondition violated, disjunction rule did not fire")
	}
}
