// File: extract.go
// Role: ExtractSequences walks an Element tree into a per-tag Corpus.
package xmlseq

import "github.com/mvaled/inferdtd/reterm"

// ExtractSequences walks root and every descendant, recording for each
// element name the sequence of its children's names at every occurrence.
// A leaf element contributes an empty sequence, which infer2t.InferAutomaton
// turns into the (Start,End) edge.
func ExtractSequences(root *Element) Corpus {
	corpus := make(Corpus)
	var walk func(el *Element)
	walk = func(el *Element) {
		seq := make([]reterm.Symbol, len(el.Children))
		for i, child := range el.Children {
			seq[i] = child.Name
		}
		corpus[el.Name] = append(corpus[el.Name], seq)
		for _, child := range el.Children {
			walk(child)
		}
	}
	walk(root)
	return corpus
}
