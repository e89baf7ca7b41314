package xmlseq

import "github.com/mvaled/inferdtd/reterm"

// Element is a lightweight DOM node: a name, the names of its attributes
// (recorded for completeness; unused by inference since attribute-type
// inference is a non-goal), and its ordered children.
type Element struct {
	Name       reterm.Symbol
	Attributes []reterm.Symbol
	Children   []*Element
}

// Corpus maps an element name to the list of child-name sequences observed
// across every occurrence of that element in a document, one sequence per
// occurrence — the per-tag sample dictionary iDTD's inference stage needs.
type Corpus map[reterm.Symbol][][]reterm.Symbol
