// Package rewrite implements the Rewrite algorithm of [Bex2006]: it takes
// the GFA produced by infer2t and collapses it towards a SORE-shaped graph
// by repeatedly applying four structural rules, in fixed preference order:
// Optional, Self-loop, Disjunction, Concatenation.
//
// Reduce loops until no rule fires or the graph reaches its final
// {Start, X, End} shape. When no structural rule fires and the graph is
// not yet final, the caller (the root inferdtd package) must hand control
// to package repair before trying again.
package rewrite
