// File: parse.go
// Role: Parse builds an Element tree from an XML byte stream.
package xmlseq

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/mvaled/inferdtd/reterm"
)

// ErrNoRootElement is returned by Parse when the input stream contains no
// element at all.
var ErrNoRootElement = errors.New("xmlseq: document has no root element")

// Parse reads r as XML and returns its root Element. Errors from the
// underlying decoder are wrapped, following the fmt.Errorf("%w", ...)
// convention used elsewhere in this module.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var stack []*Element
	var root *Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmlseq: decode: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: reterm.Symbol(t.Name.Local)}
			for _, attr := range t.Attr {
				el.Attributes = append(el.Attributes, reterm.Symbol(attr.Name.Local))
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, ErrNoRootElement
	}
	return root, nil
}
