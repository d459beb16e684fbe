package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_Assign(t *testing.T) {
	p := &point{}
	x := Field("x", KindInt, func(p *point, v int) { p.X = v })

	require.NoError(t, x.Assign(p, 3))
	assert.Equal(t, 3, p.X)

	err := x.Assign(p, "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value of type string is not assignable to int")

	err = x.Assign(&circle{}, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `property "x" cannot be set`)
}

func TestField_Defaults(t *testing.T) {
	x := Field("x", KindInt, func(p *point, v int) { p.X = v })

	assert.Equal(t, "x", x.Name)
	assert.Equal(t, KindInt, x.Kind)
	assert.Equal(t, Attr("x"), x.Source)
	assert.False(t, x.Optional)
	assert.Nil(t, x.Default)
}

func TestField_Options(t *testing.T) {
	p := Field("size", KindFloat, func(c *circle, v float64) { c.R = v },
		FromChild("radius"), Optional(), Default("1.5"), Min(0), Max(10))

	assert.Equal(t, Child("radius"), p.Source)
	assert.True(t, p.Optional)
	require.NotNil(t, p.Default)
	assert.Equal(t, "1.5", *p.Default)
	require.NotNil(t, p.Min)
	require.NotNil(t, p.Max)
	assert.InDelta(t, 0.0, *p.Min, 1e-9)
	assert.InDelta(t, 10.0, *p.Max, 1e-9)

	txt := Field("label", KindString, func(c *circle, v string) {}, FromText())
	assert.Equal(t, Text(), txt.Source)
}

func TestListField(t *testing.T) {
	pts := ListField("points", func(p *polygon, v []*point) { p.Points = v }, FromChild("points"), Of("point"))
	assert.Equal(t, KindList, pts.Kind)

	poly := &polygon{}
	require.NoError(t, pts.Assign(poly, []Page{&point{X: 1}, &point{X: 2}}))
	require.Len(t, poly.Points, 2)
	assert.Equal(t, 2, poly.Points[1].X)

	err := pts.Assign(poly, []Page{&point{}, &circle{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list item 1 of type *page.circle is not a *page.point")
	assert.Len(t, poly.Points, 2, "failed assignment must not touch the page")
}

func TestProp_AssignWithoutSetter(t *testing.T) {
	var p Prop
	p.Name = "bare"

	assert.Error(t, p.Assign(&point{}, 1))
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "@x", Attr("x").String())
	assert.Equal(t, "<center>", Child("center").String())
	assert.Equal(t, "#text", Text().String())
}

func TestDynamic(t *testing.T) {
	d := NewDynamic("label")
	assert.Equal(t, TypeID("label"), d.PageType())

	d.Set("text", "hi")
	d.Set("size", 3)

	v, ok := d.Get("text")
	assert.True(t, ok)
	assert.Equal(t, "hi", v)

	_, ok = d.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"size", "text"}, d.Props())
}
