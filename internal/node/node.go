package node

import (
	"slices"
	"strings"
)

// Attr is a single attribute in document order.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of an already-parsed document.
type Node interface {
	// Tag returns the element name without namespace prefix.
	Tag() string
	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
	// Attrs returns all attributes in document order.
	Attrs() []Attr
	// Children returns the element children in document order.
	Children() []Node
	// Text returns the character data directly inside the element.
	Text() string
}

// Element is the immutable Node implementation produced by Parse.
type Element struct {
	tag      string
	attrs    []Attr
	children []*Element
	text     string
	line     int
}

var _ Node = (*Element)(nil)

// NewElement creates an element. Attrs and children are copied.
func NewElement(tag string, attrs []Attr, children ...*Element) *Element {
	return &Element{
		tag:      tag,
		attrs:    slices.Clone(attrs),
		children: slices.Clone(children),
	}
}

// WithText returns a copy of e holding the given character data.
func (e *Element) WithText(text string) *Element {
	cp := *e
	cp.text = text

	return &cp
}

// Tag returns the element name.
func (e *Element) Tag() string {
	return e.tag
}

// Attr returns the first attribute with the given name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// Attrs returns a copy of the attribute list.
func (e *Element) Attrs() []Attr {
	return slices.Clone(e.attrs)
}

// Children returns the element children.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}

	return out
}

// Text returns the character data directly inside e.
func (e *Element) Text() string {
	return e.text
}

// Line returns the 1-based source line of the start tag, or 0 when the
// element was not produced by Parse.
func (e *Element) Line() int {
	return e.line
}

// String renders the start tag, e.g. `<point x="3" y="4">`.
func (e *Element) String() string {
	var b strings.Builder

	b.WriteString("<")
	b.WriteString(e.tag)

	for _, a := range e.attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteString(`"`)
	}

	b.WriteString(">")

	return b.String()
}

// FirstChild returns the first element child of n with exactly the given tag.
func FirstChild(n Node, tag string) (Node, bool) {
	for _, c := range n.Children() {
		if c.Tag() == tag {
			return c, true
		}
	}

	return nil, false
}
