// Package infer2t implements 2T-INF, the two-token automaton-inference
// algorithm: it builds a GFA whose edges union all observed 2-grams across
// a collection of sample sequences.
package infer2t
