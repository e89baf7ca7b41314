// File: export.go
// Role: narrow exports for package repair, which must invoke the
//       Disjunction rule directly rather than through Step — Step would let
//       the Self-loop rule preempt it per the fixed preference order.
package rewrite

import "github.com/mvaled/inferdtd/gfa"

// ApplyDisjunctionRule applies the Disjunction rule once, bypassing rule
// preference order. Used by package repair's enabling primitives, which
// must assert this specific rule fires immediately after widening Pred/Succ
// sets.
func ApplyDisjunctionRule(g *gfa.Graph) bool {
	return disjunctionRule(g)
}
