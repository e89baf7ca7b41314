// Package reterm defines the algebraic term representing a regular
// expression over a symbol alphabet, along with the handful of predicates
// and printers the inference engine needs.
//
// A Term is one of six tagged shapes:
//
//   - Symbol      — an atomic leaf (never matches the empty string).
//   - Repeat(t)   — one-or-more (t+); matches empty iff t does.
//   - Kleene(t)   — zero-or-more (t*); always matches empty.
//   - Optional(t) — zero-or-one (t?); always matches empty.
//   - Conjunction — an ordered sequence (t1,t2,...); matches empty iff every
//     operand does.
//   - Disjunction — an unordered set (t1|t2|...); matches empty iff any
//     operand does.
//
// Term equality is structural (Equal), and Key returns a canonical string
// digest suitable for use as a map key — Disjunction hashes its operand
// multiset order-independently, Conjunction hashes its operand list
// order-dependently.
//
// This package does not match strings against a Term — regex matching is
// out of scope. It only decides whether the empty string is in a Term's
// language (MatchesEmpty) and how to print one (String).
package reterm
