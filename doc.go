// Package inferdtd infers a concise Single Occurrence Regular Expression
// (SORE) from a collection of example sequences of labeled symbols.
//
// What is inferdtd?
//
//	An implementation of the iDTD algorithm of Bex, Neven, Schwentick &
//	Tuyls ("Inference of concise DTDs from XML data", VLDB 2006): given
//	sample sequences over some alphabet, it builds a generalized finite
//	automaton (GFA) unioning their 2-grams, then collapses that GFA into
//	a single regular-expression term via structural rewriting, reaching
//	for four repair rules only when plain rewriting gets stuck.
//
// Why use inferdtd?
//
//   - Deterministic   — rule selection follows node-insertion order, so
//     the same input sequences always yield the same SORE.
//   - Faithful        — the acknowledged gaps of the original algorithm
//     (|W|=2 Enable-Disjunction, no automatic Kleene synthesis) are kept
//     rather than silently patched over.
//   - Composable      — each stage is its own package; callers needing
//     only the automaton, or only the rewrite engine, can import just
//     that piece.
//
// Under the hood, the pipeline is organized as:
//
//	reterm/  — the regular-expression term algebra (Symbol, Repeat,
//	           Kleene, Optional, Conjunction, Disjunction) plus empty-match,
//	           equality, and surface-syntax printing.
//	gfa/     — the generalized finite automaton: a structurally-indexed
//	           node/edge graph with extent-closure Pred/Succ.
//	infer2t/ — 2T-INF, the 2-gram union automaton builder.
//	rewrite/ — the four structural rewrite rules (Optional, Self-loop,
//	           Disjunction, Concatenation) and the reduce-to-quiescence
//	           driver.
//	repair/  — the four repair rules (R1-R4) that locally change a stuck
//	           GFA's edges so that rewriting can make progress again.
//
// This package wires those stages together behind InferAutomaton,
// InferSORE, and Infer. Package xmlseq adapts XML documents into the sample
// sequences this pipeline consumes, package dtd renders an inferred term as
// a DTD element declaration, and cmd/inferdtd chains both into a CLI.
package inferdtd
