// File: types.go
// Role: Term interface, Symbol leaf, Start/End framing sentinels, and the
//       five operator constructors.
// AI-HINT (file):
//   - Term is a closed tagged union; the only implementations live in this
//     package (symbolTerm, repeatTerm, kleeneTerm, optionalTerm,
//     conjunctionTerm, disjunctionTerm).
//   - Start/End are ordinary symbolTerm values distinguished by a reserved
//     value space user symbols can never occupy (see IsFraming).

package reterm

import "fmt"

// Symbol is an externally supplied token: an XML element name, or any other
// hashable, equality-comparable label drawn from the sample alphabet.
type Symbol string

// Reserved symbol values framing every GFA. User sequences must never
// contain these; NewSymbol rejects them, so infer2t, which builds every leaf
// through NewSymbol, enforces that invariant at the boundary.
const (
	startValue Symbol = "\x00Start\x00"
	endValue   Symbol = "\x00End\x00"
)

// Term is a regular-expression node: a Symbol leaf or one of the five
// operator forms. Equality is structural (Equal), not pointer identity.
type Term interface {
	// MatchesEmpty reports whether the empty string is in this term's
	// language.
	MatchesEmpty() bool

	// Equal reports whether other is structurally identical to this term.
	Equal(other Term) bool

	// Key returns a canonical digest usable as a map key; structurally
	// equal terms always produce the same Key.
	Key() string

	// String renders the term using DTD content-model surface syntax.
	String() string

	// isTerm restricts implementations to this package.
	isTerm()
}

// symbolTerm is the atomic leaf. Start/End are symbolTerm values built from
// the reserved startValue/endValue symbols.
type symbolTerm struct{ value Symbol }

// NewSymbol wraps s as an atomic leaf Term. Panics if s is a reserved
// Start/End value — those must be obtained via Start/End, never constructed
// by callers.
func NewSymbol(s Symbol) Term {
	if s == startValue || s == endValue {
		panic(fmt.Sprintf("reterm: %q is a reserved framing symbol", s))
	}
	return symbolTerm{value: s}
}

// Start is the distinguished sentinel that frames the head of every GFA.
// It is never wrapped by a rewrite rule and never removed.
func Start() Term { return symbolTerm{value: startValue} }

// End is the distinguished sentinel that frames the tail of every GFA.
// It is never wrapped by a rewrite rule and never removed.
func End() Term { return symbolTerm{value: endValue} }

// IsFraming reports whether t is the Start or End sentinel.
func IsFraming(t Term) bool {
	s, ok := t.(symbolTerm)
	return ok && (s.value == startValue || s.value == endValue)
}

// SymbolValue returns the underlying Symbol and true if t is a leaf
// (including Start/End); ok is false for any operator term.
func SymbolValue(t Term) (value Symbol, ok bool) {
	s, ok := t.(symbolTerm)
	if !ok {
		return "", false
	}
	return s.value, true
}

// repeatTerm is the one-or-more (+) operator.
type repeatTerm struct{ target Term }

// Repeat builds the one-or-more operator over t.
func Repeat(t Term) Term { return repeatTerm{target: t} }

// kleeneTerm is the zero-or-more (*) operator.
type kleeneTerm struct{ target Term }

// Kleene builds the zero-or-more operator over t.
//
// The rewrite/repair engines never synthesize this directly; it exists for
// completeness and for callers who want to simplify Optional(Repeat(x)) into
// Kleene(x) themselves.
func Kleene(t Term) Term { return kleeneTerm{target: t} }

// optionalTerm is the zero-or-one (?) operator.
type optionalTerm struct{ target Term }

// Optional builds the zero-or-one operator over t.
func Optional(t Term) Term { return optionalTerm{target: t} }

// conjunctionTerm is the ordered sequence (,) operator, k >= 2 operands.
type conjunctionTerm struct{ operands []Term }

// Conjunction builds an ordered sequence of operands (left-associative,
// order-sensitive equality). Panics if fewer than two operands are given —
// this is a programming fault, not a runtime condition a caller can recover
// from.
func Conjunction(operands ...Term) Term {
	if len(operands) < 2 {
		panic("reterm: Conjunction requires at least two operands")
	}
	cp := make([]Term, len(operands))
	copy(cp, operands)
	return conjunctionTerm{operands: cp}
}

// disjunctionTerm is the unordered-set (|) operator, k >= 2 operands.
type disjunctionTerm struct{ operands []Term }

// Disjunction builds an unordered alternative of operands (order-insensitive
// equality and hashing). Panics if fewer than two operands are given — see
// Conjunction.
func Disjunction(operands ...Term) Term {
	if len(operands) < 2 {
		panic("reterm: Disjunction requires at least two operands")
	}
	cp := make([]Term, len(operands))
	copy(cp, operands)
	return disjunctionTerm{operands: cp}
}

func (symbolTerm) isTerm()      {}
func (repeatTerm) isTerm()      {}
func (kleeneTerm) isTerm()      {}
func (optionalTerm) isTerm()    {}
func (conjunctionTerm) isTerm() {}
func (disjunctionTerm) isTerm() {}
