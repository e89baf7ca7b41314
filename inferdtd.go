// File: inferdtd.go
// Role: the front-end facade wiring infer2t -> rewrite -> repair into the
//       three public entry points.
// AI-HINT (file):
//   - InferSORE and Infer mutate their *gfa.Graph argument/result in place;
//     on failure the graph is left in its most-reduced intermediate state
//     for caller inspection.
package inferdtd

import (
	"github.com/mvaled/inferdtd/gfa"
	"github.com/mvaled/inferdtd/infer2t"
	"github.com/mvaled/inferdtd/repair"
	"github.com/mvaled/inferdtd/reterm"
	"github.com/mvaled/inferdtd/rewrite"
)

// InferAutomaton builds the 2-gram union GFA for sequences. It is a thin
// re-export of infer2t.InferAutomaton so callers that only need the
// automaton (not the full SORE) need not import infer2t directly.
func InferAutomaton(sequences [][]reterm.Symbol) *gfa.Graph {
	return infer2t.InferAutomaton(sequences)
}

// InferSORE reduces g to its final SORE shape in place by alternating
// rewrite.Reduce with repair.Step until rewrite.IsFinal(g) holds or no
// repair rule applies. Returns the inferred term and true on success; on
// failure returns nil and false, leaving g in its residual (stuck) state.
//
// Complexity: bounded by the node/edge count of g, since every successful
// rewrite or repair strictly shrinks or widens a finite structure; no
// iteration bound is otherwise imposed.
func InferSORE(g *gfa.Graph) (reterm.Term, bool) {
	for {
		rewrite.Reduce(g)
		if rewrite.IsFinal(g) {
			return soleInteriorNode(g), true
		}
		if !repair.Step(g) {
			return nil, false
		}
	}
}

// soleInteriorNode returns the single non-framing node of a final GFA.
func soleInteriorNode(g *gfa.Graph) reterm.Term {
	for _, n := range g.Nodes() {
		if !reterm.IsFraming(n) {
			return n
		}
	}
	panic("inferdtd: IsFinal graph has no interior node")
}

// Infer is the end-to-end pipeline: build the automaton from sequences,
// then reduce it. Returns the inferred term, the (possibly residual) GFA,
// and whether reduction succeeded.
func Infer(sequences [][]reterm.Symbol) (reterm.Term, *gfa.Graph, bool) {
	g := InferAutomaton(sequences)
	term, ok := InferSORE(g)
	return term, g, ok
}
