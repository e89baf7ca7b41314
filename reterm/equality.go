// File: equality.go
// Role: structural Equal and canonical Key (map-key digest) for every Term
//       shape. Conjunction is order-sensitive; Disjunction is order-
//       insensitive, since it represents an unordered set of alternatives.

package reterm

import (
	"sort"
	"strings"
)

func (t symbolTerm) Equal(other Term) bool {
	o, ok := other.(symbolTerm)
	return ok && o.value == t.value
}

func (t repeatTerm) Equal(other Term) bool {
	o, ok := other.(repeatTerm)
	return ok && o.target.Equal(t.target)
}

func (t kleeneTerm) Equal(other Term) bool {
	o, ok := other.(kleeneTerm)
	return ok && o.target.Equal(t.target)
}

func (t optionalTerm) Equal(other Term) bool {
	o, ok := other.(optionalTerm)
	return ok && o.target.Equal(t.target)
}

func (t conjunctionTerm) Equal(other Term) bool {
	o, ok := other.(conjunctionTerm)
	if !ok || len(o.operands) != len(t.operands) {
		return false
	}
	for i, operand := range t.operands {
		if !operand.Equal(o.operands[i]) {
			return false
		}
	}
	return true
}

func (t disjunctionTerm) Equal(other Term) bool {
	o, ok := other.(disjunctionTerm)
	if !ok || len(o.operands) != len(t.operands) {
		return false
	}
	return sameKeySet(t.operands, o.operands)
}

// sameKeySet reports whether a and b contain the same multiset of terms,
// compared via their canonical Key (two structurally-equal terms always
// produce the same Key, so this avoids an O(n^2) Equal cross-product).
func sameKeySet(a, b []Term) bool {
	ak := make([]string, len(a))
	bk := make([]string, len(b))
	for i, t := range a {
		ak[i] = t.Key()
	}
	for i, t := range b {
		bk[i] = t.Key()
	}
	sort.Strings(ak)
	sort.Strings(bk)
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
	}
	return true
}

func (t symbolTerm) Key() string { return "S:" + string(t.value) }

func (t repeatTerm) Key() string { return "R(" + t.target.Key() + ")" }

func (t kleeneTerm) Key() string { return "K(" + t.target.Key() + ")" }

func (t optionalTerm) Key() string { return "O(" + t.target.Key() + ")" }

func (t conjunctionTerm) Key() string {
	keys := make([]string, len(t.operands))
	for i, operand := range t.operands {
		keys[i] = operand.Key()
	}
	return "C(" + strings.Join(keys, ",") + ")"
}

func (t disjunctionTerm) Key() string {
	keys := make([]string, len(t.operands))
	for i, operand := range t.operands {
		keys[i] = operand.Key()
	}
	sort.Strings(keys)
	return "D(" + strings.Join(keys, "|") + ")"
}
