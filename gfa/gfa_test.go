package gfa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvaled/inferdtd/gfa"
	"github.com/mvaled/inferdtd/reterm"
)

func TestNewGraphSeedsStartEnd(t *testing.T) {
	g := gfa.NewGraph()
	require.Equal(t, 2, g.NodeCount())
	require.True(t, g.HasNode(reterm.Start()))
	require.True(t, g.HasNode(reterm.End()))
	require.Equal(t, 0, g.EdgeCount())
}

func TestAddEdgeRequiresEndpoints(t *testing.T) {
	g := gfa.NewGraph()
	a := reterm.NewSymbol("a")
	require.Panics(t, func() { g.AddEdge(reterm.Start(), a) })
}

func TestAddEdgeIdempotent(t *testing.T) {
	g := gfa.NewGraph()
	a := reterm.NewSymbol("a")
	g.AddNode(a)
	g.AddEdge(reterm.Start(), a)
	g.AddEdge(reterm.Start(), a)
	require.Equal(t, 1, g.EdgeCount())
}

func TestRemoveEdgeIsNoOpWhenAbsent(t *testing.T) {
	g := gfa.NewGraph()
	require.NotPanics(t, func() { g.RemoveEdge(reterm.Start(), reterm.End()) })
}

func TestRemoveNodeRemovesIncidentEdges(t *testing.T) {
	g := gfa.NewGraph()
	a := reterm.NewSymbol("a")
	g.AddNode(a)
	g.AddEdge(reterm.Start(), a)
	g.AddEdge(a, reterm.End())

	g.RemoveNode(a)
	require.Equal(t, 0, g.EdgeCount())
	require.False(t, g.HasNode(a))
}

func TestReplaceNodeSelfLoop(t *testing.T) {
	g := gfa.NewGraph()
	a := reterm.NewSymbol("a")
	g.AddNode(a)
	g.AddEdge(reterm.Start(), a)
	g.AddEdge(a, a)
	g.AddEdge(a, reterm.End())

	rep := reterm.Repeat(a)
	g.ReplaceNode(a, rep)

	require.False(t, g.HasNode(a))
	require.True(t, g.HasNode(rep))
	require.True(t, g.HasEdge(rep, rep))
	require.True(t, g.HasEdge(reterm.Start(), rep))
	require.True(t, g.HasEdge(rep, reterm.End()))
	require.Equal(t, 3, g.EdgeCount())
}

func TestSuccPredExtentClosureThroughOptional(t *testing.T) {
	// Start -> Optional(a) -> b -> End; there is no direct Start -> b edge.
	g := gfa.NewGraph()
	optA := reterm.Optional(reterm.NewSymbol("a"))
	b := reterm.NewSymbol("b")
	g.AddNode(optA)
	g.AddNode(b)
	g.AddEdge(reterm.Start(), optA)
	g.AddEdge(optA, b)
	g.AddEdge(b, reterm.End())

	succStart := g.Succ(reterm.Start())
	// optA matches empty, so Succ(Start) must also reach b transitively.
	require.True(t, gfa.SetContains(succStart, optA))
	require.True(t, gfa.SetContains(succStart, b))

	predEnd := g.Pred(reterm.End())
	require.True(t, gfa.SetContains(predEnd, b))
}

func TestSuccDoesNotExpandPastNonEmptyNode(t *testing.T) {
	g := gfa.NewGraph()
	a := reterm.NewSymbol("a")
	b := reterm.NewSymbol("b")
	g.AddNode(a)
	g.AddNode(b)
	g.AddEdge(reterm.Start(), a)
	g.AddEdge(a, b)
	g.AddEdge(b, reterm.End())

	succStart := g.Succ(reterm.Start())
	require.True(t, gfa.SetContains(succStart, a))
	require.False(t, gfa.SetContains(succStart, b))
}

func TestCloneIsIndependent(t *testing.T) {
	g := gfa.NewGraph()
	a := reterm.NewSymbol("a")
	g.AddNode(a)
	g.AddEdge(reterm.Start(), a)

	clone := g.Clone()
	clone.AddEdge(a, reterm.End())

	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, clone.EdgeCount())
}

func TestNodesPreservesInsertionOrder(t *testing.T) {
	g := gfa.NewGraph()
	a := reterm.NewSymbol("a")
	b := reterm.NewSymbol("b")
	g.AddNode(a)
	g.AddNode(b)

	nodes := g.Nodes()
	require.Equal(t, []reterm.Term{reterm.Start(), reterm.End(), a, b}, nodes)
}

func TestSetHelpers(t *testing.T) {
	a := reterm.NewSymbol("a")
	b := reterm.NewSymbol("b")
	c := reterm.NewSymbol("c")

	require.True(t, gfa.SetEqual([]reterm.Term{a, b}, []reterm.Term{b, a}))
	require.True(t, gfa.SetSubset([]reterm.Term{a}, []reterm.Term{a, b}))
	require.False(t, gfa.SetSubset([]reterm.Term{a, c}, []reterm.Term{a, b}))

	union := gfa.SetUnion([]reterm.Term{a}, []reterm.Term{a, b})
	require.Len(t, union, 2)

	diff := gfa.SetDifference([]reterm.Term{a, b}, []reterm.Term{b})
	require.Len(t, diff, 1)
	require.True(t, diff[0].Equal(a))
}
