// Package repair implements the four repair rules of [Bex2006] that run
// when rewrite.Reduce gets stuck short of the final GFA shape: R1
// Enable-Disjunction case B, R2 Enable-Disjunction case A (k=2), R3
// Enable-Optional case A, R4 Enable-Optional case B (k=2), tried in that
// fixed order.
//
// The disjunction repairs (R1, R2) add the edges a pair of nodes is missing
// until both share the same Pred/Succ sets, then apply the Disjunction rule
// to them directly; the optional repairs (R3, R4) remove a node's bypasser
// edges and wrap it in Optional. The caller (the root inferdtd package)
// must re-run rewrite.Reduce after every successful repair.Step.
package repair
