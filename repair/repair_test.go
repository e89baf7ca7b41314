package repair_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvaled/inferdtd/infer2t"
	"github.com/mvaled/inferdtd/reterm"
	"github.com/mvaled/inferdtd/repair"
	"github.com/mvaled/inferdtd/rewrite"
)

func seq(s string) []reterm.Symbol {
	out := make([]reterm.Symbol, len(s))
	for i, r := range s {
		out[i] = reterm.Symbol(string(r))
	}
	return out
}

// TestInferSOREThreeCycle: the three-cycle built from ["", "abc", "bca",
// "cab"] reaches final form once Enable-Disjunction case A fires on one of
// the symbol pairs.
func TestInferSOREThreeCycle(t *testing.T) {
	g := infer2t.InferAutomaton([][]reterm.Symbol{
		{}, seq("abc"), seq("bca"), seq("cab"),
	})

	final := rewrite.Reduce(g)
	for !final {
		if !repair.Step(g) {
			t.Fatalf("repair got stuck before reaching final form")
		}
		final = rewrite.Reduce(g)
	}
	require.True(t, rewrite.IsFinal(g))
}

// TestInferSOREBypasserOptional: ["ab","a"] -> a,b? via Enable-Optional
// case A, which fires on b of the raw automaton because of the bypasser
// (a,End). Rewriting alone would also finish this input (the Optional rule
// already accepts b), so repair.Step is applied first here.
func TestInferSOREBypasserOptional(t *testing.T) {
	g := infer2t.InferAutomaton([][]reterm.Symbol{seq("ab"), seq("a")})

	require.False(t, rewrite.IsFinal(g))

	require.True(t, repair.Step(g))
	final := rewrite.Reduce(g)
	require.True(t, final)
	require.True(t, rewrite.IsFinal(g))
	require.True(t, g.HasNode(reterm.Conjunction(reterm.NewSymbol("a"), reterm.Optional(reterm.NewSymbol("b")))))
}
