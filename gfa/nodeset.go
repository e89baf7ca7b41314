// File: nodeset.go
// Role: small set-algebra helpers over []reterm.Term, shared by the
//       rewrite/repair engines when comparing Pred/Succ results (the
//       Optional, Disjunction, and every repair rule are defined directly
//       in terms of set equality/subset/union/difference).
package gfa

import "github.com/mvaled/inferdtd/reterm"

func keySet(terms []reterm.Term) map[string]reterm.Term {
	out := make(map[string]reterm.Term, len(terms))
	for _, t := range terms {
		out[t.Key()] = t
	}
	return out
}

// SetContains reports whether x (by structural equality) is in set.
func SetContains(set []reterm.Term, x reterm.Term) bool {
	for _, t := range set {
		if t.Equal(x) {
			return true
		}
	}
	return false
}

// SetEqual reports whether a and b contain the same terms, ignoring order.
func SetEqual(a, b []reterm.Term) bool {
	if len(a) != len(b) {
		return false
	}
	bk := keySet(b)
	for _, t := range a {
		if _, ok := bk[t.Key()]; !ok {
			return false
		}
	}
	return true
}

// SetSubset reports whether every element of a is also in b.
func SetSubset(a, b []reterm.Term) bool {
	bk := keySet(b)
	for _, t := range a {
		if _, ok := bk[t.Key()]; !ok {
			return false
		}
	}
	return true
}

// SetUnion returns the union of a and b, a∪b, preserving a's order then
// appending b's novel elements in b's order.
func SetUnion(a, b []reterm.Term) []reterm.Term {
	seen := keySet(a)
	out := make([]reterm.Term, len(a), len(a)+len(b))
	copy(out, a)
	for _, t := range b {
		if _, ok := seen[t.Key()]; !ok {
			seen[t.Key()] = t
			out = append(out, t)
		}
	}
	return out
}

// SetIntersect returns a∩b, in a's order.
func SetIntersect(a, b []reterm.Term) []reterm.Term {
	bk := keySet(b)
	out := make([]reterm.Term, 0)
	for _, t := range a {
		if _, ok := bk[t.Key()]; ok {
			out = append(out, t)
		}
	}
	return out
}

// SetDifference returns a\b, in a's order.
func SetDifference(a, b []reterm.Term) []reterm.Term {
	bk := keySet(b)
	out := make([]reterm.Term, 0)
	for _, t := range a {
		if _, ok := bk[t.Key()]; !ok {
			out = append(out, t)
		}
	}
	return out
}
