package node

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc := `<?xml version="1.0"?>
<!-- shapes -->
<shape id="s1" xmlns:m="urn:m">
  <center m:x="3" y="4"/>
  <label>hello <b>world</b></label>
</shape>`

	root, err := ParseString(doc)
	require.NoError(t, err)

	assert.Equal(t, "shape", root.Tag())
	assert.Equal(t, 3, root.Line())

	id, ok := root.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "s1", id)

	_, ok = root.Attr("missing")
	assert.False(t, ok)

	kids := root.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "center", kids[0].Tag())
	assert.Equal(t, "label", kids[1].Tag())

	// Prefixes are dropped and attribute order is kept.
	assert.Equal(t, []Attr{{Name: "x", Value: "3"}, {Name: "y", Value: "4"}}, kids[0].Attrs())

	// Only character data directly inside the element is collected.
	assert.Equal(t, "hello ", kids[1].Text())

	b, ok := FirstChild(kids[1], "b")
	require.True(t, ok)
	assert.Equal(t, "world", b.Text())
}

func TestParse_Errors(t *testing.T) {
	_, err := ParseString("")
	assert.ErrorIs(t, err, ErrNoRoot)

	_, err = Parse(strings.NewReader("<a><b></a>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing xml")
}

func TestElement_Immutable(t *testing.T) {
	attrs := []Attr{{Name: "x", Value: "1"}}
	child := NewElement("c", nil)
	el := NewElement("p", attrs, child)

	attrs[0].Value = "changed"
	assert.Equal(t, "1", el.Attrs()[0].Value)

	got := el.Attrs()
	got[0].Value = "again"
	v, _ := el.Attr("x")
	assert.Equal(t, "1", v)

	withText := el.WithText("body")
	assert.Equal(t, "body", withText.Text())
	assert.Empty(t, el.Text())
}

func TestFirstChild(t *testing.T) {
	el := NewElement("p", nil,
		NewElement("a", []Attr{{Name: "n", Value: "1"}}),
		NewElement("a", []Attr{{Name: "n", Value: "2"}}),
	)

	c, ok := FirstChild(el, "a")
	require.True(t, ok)
	n, _ := c.Attr("n")
	assert.Equal(t, "1", n)

	_, ok = FirstChild(el, "A")
	assert.False(t, ok)
}

func TestElement_String(t *testing.T) {
	el := NewElement("point", []Attr{{Name: "x", Value: "3"}, {Name: "y", Value: "4"}})
	assert.Equal(t, `<point x="3" y="4">`, el.String())
}
