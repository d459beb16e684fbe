package node

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoRoot is returned when the input holds no element at all.
var ErrNoRoot = errors.New("document has no root element")

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Element
		stack []*building
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("parsing xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := dec.InputPos()
			b := &building{el: &Element{tag: t.Name.Local, line: line}}

			for _, a := range t.Attr {
				b.el.attrs = append(b.el.attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}

			stack = append(stack, b)

		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			top.el.text = top.text.String()

			if len(stack) == 0 {
				root = top.el
				continue
			}

			parent := stack[len(stack)-1]
			parent.el.children = append(parent.el.children, top.el)

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}

	return root, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(doc string) (*Element, error) {
	return Parse(strings.NewReader(doc))
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(doc []byte) (*Element, error) {
	return Parse(bytes.NewReader(doc))
}

type building struct {
	el   *Element
	text strings.Builder
}
