// File: format.go
// Role: render reterm.Term content models as DTD element declarations.
package dtd

import (
	"fmt"

	"github.com/mvaled/inferdtd/reterm"
)

// FormatElement renders "<!ELEMENT name (content-model)>", reusing
// reterm's own pretty-printer for the content model.
func FormatElement(name reterm.Symbol, content reterm.Term) string {
	return fmt.Sprintf("<!ELEMENT %s (%s)>", name, content.String())
}

// FormatEmpty renders "<!ELEMENT name EMPTY>", for an element that was
// never observed with any children across all samples — a vacuous
// sequence set has no SORE to infer at all, so there is no content.Term
// to pass to FormatElement.
func FormatEmpty(name reterm.Symbol) string {
	return fmt.Sprintf("<!ELEMENT %s EMPTY>", name)
}
