// File: rules.go
// Role: the four structural rewrite rules of [Bex2006], tried in fixed
//       preference order by Step.
// AI-HINT (file):
//   - Self-loop and Optional apply to every matching node found in a single
//     pass (mirrors Rewrite.py's greedy generator-expression loops).
//   - Disjunction and Concatenation apply to only the first matching group
//     found, then return — mirrors Rewrite.py's early `return True`.
package rewrite

import (
	"github.com/mvaled/inferdtd/gfa"
	"github.com/mvaled/inferdtd/reterm"
)

// selfLoopRule: for every node r with an edge (r, r), delete that edge and
// replace r by Repeat(r).
func selfLoopRule(g *gfa.Graph) bool {
	applied := false
	for _, node := range g.Nodes() {
		if !g.HasNode(node) {
			continue
		}
		if !g.HasEdge(node, node) {
			continue
		}
		g.RemoveEdge(node, node)
		g.ReplaceNode(node, reterm.Repeat(node))
		applied = true
	}
	return applied
}

// optionalApplicable tests whether the Optional rule may fire on node: node
// is not already Optional, not a framing (Start/End) node, and for every
// r' in Pred(node), Succ(node) is contained in Succ(r').
func optionalApplicable(g *gfa.Graph, node reterm.Term) bool {
	if reterm.IsOptional(node) || reterm.IsFraming(node) {
		return false
	}
	succ := g.Succ(node)
	for _, pred := range g.Pred(node) {
		if !gfa.SetSubset(succ, g.Succ(pred)) {
			return false
		}
	}
	return true
}

// optionalRule: replace r with Optional(r) and remove every edge (r', r'')
// with r' in Pred(r) and r'' in Succ(r)\{r}.
func optionalRule(g *gfa.Graph) bool {
	applied := false
	for _, node := range g.Nodes() {
		if !g.HasNode(node) {
			continue
		}
		if !optionalApplicable(g, node) {
			continue
		}

		preds := g.Pred(node)
		succNoSelf := gfa.SetDifference(g.Succ(node), []reterm.Term{node})

		var doomed []gfa.Edge
		for _, a := range preds {
			for _, b := range succNoSelf {
				if g.HasEdge(a, b) {
					doomed = append(doomed, gfa.Edge{From: a, To: b})
				}
			}
		}
		for _, e := range doomed {
			g.RemoveEdge(e.From, e.To)
		}
		g.ReplaceNode(node, reterm.Optional(node))
		applied = true
	}
	return applied
}

// disjunctable tests whether node1 and node2 share identical Pred and Succ
// sets, and neither is a framing node.
func disjunctable(g *gfa.Graph, node1, node2 reterm.Term) bool {
	if node1.Equal(node2) {
		return false
	}
	if reterm.IsFraming(node1) || reterm.IsFraming(node2) {
		return false
	}
	return gfa.SetEqual(g.Pred(node1), g.Pred(node2)) && gfa.SetEqual(g.Succ(node1), g.Succ(node2))
}

// disjunctionRule: find the first maximal group W of non-framing nodes that
// all share Pred/Succ sets, remove all but one, and replace the survivor by
// Disjunction(W).
func disjunctionRule(g *gfa.Graph) bool {
	nodes := g.Nodes()
	for _, r1 := range nodes {
		if reterm.IsFraming(r1) {
			continue
		}
		for _, r2 := range nodes {
			if !disjunctable(g, r1, r2) {
				continue
			}

			group := []reterm.Term{r1, r2}
			for _, which := range nodes {
				if which.Equal(r2) {
					continue
				}
				if disjunctable(g, r1, which) {
					group = append(group, which)
				}
			}

			newnode := reterm.Disjunction(group...)
			pivot := group[len(group)-1]
			for _, n := range group[:len(group)-1] {
				g.RemoveNode(n)
			}
			g.ReplaceNode(pivot, newnode)
			return true
		}
	}
	return false
}

// outNode returns the unique non-framing out-neighbor of node, when there is
// exactly one out-edge surviving the filter. When filterFraming is false,
// Start/End targets count towards the single-edge requirement too.
func outNode(g *gfa.Graph, node reterm.Term, filterFraming bool) (reterm.Term, bool) {
	var targets []reterm.Term
	for _, e := range g.OutEdges(node) {
		if filterFraming && reterm.IsFraming(e.To) {
			continue
		}
		targets = append(targets, e.To)
	}
	if len(targets) == 1 {
		return targets[0], true
	}
	return nil, false
}

// inNode is the symmetric counterpart of outNode over in-edges.
func inNode(g *gfa.Graph, node reterm.Term, filterFraming bool) (reterm.Term, bool) {
	var sources []reterm.Term
	for _, e := range g.InEdges(node) {
		if filterFraming && reterm.IsFraming(e.From) {
			continue
		}
		sources = append(sources, e.From)
	}
	if len(sources) == 1 {
		return sources[0], true
	}
	return nil, false
}

// concatenableChain grows the maximal chain of nodes (r1, ..., rN), N>=2,
// starting at node, such that each consecutive pair is joined by a single
// edge and every interior node has exactly one non-framing in-edge and one
// non-framing out-edge. Returns nil when no such chain of length >= 2 starts
// at node.
func concatenableChain(g *gfa.Graph, node reterm.Term) []reterm.Term {
	next, nextOK := outNode(g, node, true)
	if !nextOK {
		return nil
	}
	prev, prevOK := inNode(g, next, false)
	if !prevOK {
		return nil
	}

	chain := []reterm.Term{}
	for nextOK && prevOK {
		chain = append(chain, prev)
		next, nextOK = outNode(g, next, true)
		if nextOK {
			prev, prevOK = inNode(g, next, true)
		}
	}
	if last, ok := outNode(g, chain[len(chain)-1], true); ok {
		chain = append(chain, last)
	}
	return chain
}

// concatenationRule: find the first maximal chain of concatenable nodes and
// collapse it into a single Conjunction node.
func concatenationRule(g *gfa.Graph) bool {
	var candidates []reterm.Term
	for _, n := range g.Nodes() {
		if !reterm.IsFraming(n) {
			candidates = append(candidates, n)
		}
	}

	for _, node := range candidates {
		chain := concatenableChain(g, node)
		if len(chain) < 2 {
			continue
		}

		newnode := reterm.Conjunction(chain...)
		g.AddNode(newnode)
		for _, e := range g.InEdges(chain[0]) {
			g.ReplaceEdge(e, gfa.Edge{From: e.From, To: newnode})
		}
		for _, e := range g.OutEdges(chain[len(chain)-1]) {
			g.ReplaceEdge(e, gfa.Edge{From: newnode, To: e.To})
		}
		for _, n := range chain {
			g.RemoveNode(n)
		}
		return true
	}
	return false
}
