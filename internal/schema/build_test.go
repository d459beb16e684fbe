package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageloader/internal/diagnostic"
	"pageloader/internal/loader"
	"pageloader/internal/node"
	"pageloader/internal/page"
)

func TestBuild(t *testing.T) {
	ds, err := Build(mustParse(t, shapesYAML))
	require.NoError(t, err)
	require.Len(t, ds, 4)

	shape := ds[1]
	assert.True(t, shape.Abstract)
	assert.Nil(t, shape.New)
	assert.Equal(t, []page.TypeID{"drawable"}, shape.Implements)

	circle := ds[2]
	assert.Equal(t, page.TypeID("circle"), circle.ID)
	assert.Equal(t, page.TypeID("shape"), circle.Parent)

	center, ok := circle.Prop("center")
	require.True(t, ok)
	assert.Equal(t, page.Child("center"), center.Source)
	assert.Equal(t, page.TypeID("point"), center.Of)

	note, ok := circle.Prop("note")
	require.True(t, ok)
	assert.Equal(t, page.Text(), note.Source)
	assert.True(t, note.Optional)

	p := circle.New()
	assert.IsType(t, &page.Dynamic{}, p)
	assert.Equal(t, page.TypeID("circle"), p.PageType())
}

func TestBuild_Invalid(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)

	_, err = Build(mustParse(t, `
pages:
  - name: p
    props:
      - name: a
        source: v
      - name: b
        source: v
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `page "p"`)
}

func TestBuild_Load(t *testing.T) {
	ds, err := Build(mustParse(t, shapesYAML))
	require.NoError(t, err)

	c := loader.New()
	require.NoError(t, c.RegisterPageTypes(ds...))

	root, err := node.ParseString(`
<scene hidden="true">
  <title>Demo</title>
  <shapes>
    <item type="circle" r="2.5" label="big">
      <center x="1" y="2"/>
      round
    </item>
    <item type="point" x="3" y="4"/>
  </shapes>
</scene>`)
	require.NoError(t, err)

	p, err := loader.Load[*page.Dynamic](context.Background(), c, root, "scene")
	require.NoError(t, err)
	assert.Equal(t, []string{"hidden", "shapes", "title"}, p.Props())

	title, _ := p.Get("title")
	assert.Equal(t, "Demo", title)

	hidden, _ := p.Get("hidden")
	assert.Equal(t, true, hidden)

	v, _ := p.Get("shapes")
	shapes, ok := v.([]page.Page)
	require.True(t, ok)
	require.Len(t, shapes, 2)

	circle := shapes[0].(*page.Dynamic)
	assert.Equal(t, page.TypeID("circle"), circle.PageType())

	r, _ := circle.Get("r")
	assert.InDelta(t, 2.5, r, 1e-9)

	label, _ := circle.Get("label")
	assert.Equal(t, "big", label)

	note, _ := circle.Get("note")
	assert.Equal(t, "round", note)

	center, _ := circle.Get("center")
	x, _ := center.(*page.Dynamic).Get("x")
	assert.Equal(t, 1, x)

	_, err = c.LoadPage(context.Background(), root, "shape")
	assert.ErrorIs(t, err, diagnostic.ErrInvalidDescriptor)
}
