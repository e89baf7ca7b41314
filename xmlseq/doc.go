// Package xmlseq extracts, for every distinct XML element name in a
// document, the sequence of child element names observed at each of its
// occurrences — the example sequences of labeled symbols that package
// inferdtd's inference pipeline consumes.
//
// Grounded on the original iDTD implementation's lightweight DOM: element
// and attribute names are recorded, character data is not, and mixed
// content (text interleaved with child elements) collapses to its element
// children only — the same limitation the original DOM documents.
package xmlseq
