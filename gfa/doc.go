// Package gfa implements the generalized finite automaton (GFA): a mutable
// labeled directed graph over reterm.Term nodes, with no parallel edges and
// no edge multiplicities.
//
// A Graph always contains the two framing sentinels reterm.Start() and
// reterm.End() (Start has in-degree 0, End has out-degree 0). Every other
// node is either an atomic Symbol or, as rewrite/repair collapse the graph,
// a compound RE term.
//
// Node identity is structural: two terms that compare Equal occupy the same
// node. The node set is stored as an insertion-ordered slice alongside a
// Key()-indexed membership map, so every graph-walking algorithm built on
// top (rewrite rule candidate search, repair pair search) can rely on a
// single deterministic iteration order.
//
// The headline routine is the extent-closure Pred/Succ pair: a reachability
// relation that follows "matches-empty" nodes transparently. Every rewrite
// and repair rule is expressed in terms of Pred/Succ, In/Out edges, and the
// four mutating primitives AddNode/RemoveNode/AddEdge/RemoveEdge plus the
// two compound primitives ReplaceEdge/ReplaceNode.
//
// Concurrency: Graph carries separate locks for its node catalog (muNode)
// and its edge catalog (muEdge) — the inference algorithm itself is
// single-threaded, but a caller may safely read a Graph (e.g. to log its
// current shape) from another goroutine between rewrite/repair steps.
package gfa
