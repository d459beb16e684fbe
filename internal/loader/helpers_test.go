package loader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pageloader/internal/node"
	"pageloader/internal/page"
)

type Point struct {
	X, Y int
}

func (*Point) PageType() page.TypeID { return "point" }

type Circle struct {
	Label  string
	Center *Point
	R      float64
}

func (*Circle) PageType() page.TypeID { return "circle" }

type Scene struct {
	Title  string
	Shapes []page.Page
	Points []*Point
	Hidden bool
}

func (*Scene) PageType() page.TypeID { return "scene" }

// Chain nests itself through <next>.
type Chain struct {
	Next *Chain
}

func (*Chain) PageType() page.TypeID { return "chain" }

func pointType() *page.Descriptor {
	return page.Describe("point", func() *Point { return &Point{} },
		page.Field("x", page.KindInt, func(p *Point, v int) { p.X = v }),
		page.Field("y", page.KindInt, func(p *Point, v int) { p.Y = v }),
	).Implementing("drawable")
}

func shapeType() *page.Descriptor {
	return page.AbstractType("shape",
		page.Field("label", page.KindString, func(c *Circle, v string) { c.Label = v }, page.Optional()),
	).Implementing("drawable")
}

func circleType() *page.Descriptor {
	return page.Describe("circle", func() *Circle { return &Circle{} },
		page.Field("center", page.KindPage, func(c *Circle, v page.Page) { c.Center = v.(*Point) },
			page.FromChild("center"), page.Of("point")),
		page.Field("r", page.KindFloat, func(c *Circle, v float64) { c.R = v }, page.Min(0)),
	).Extends("shape")
}

func sceneType() *page.Descriptor {
	return page.Describe("scene", func() *Scene { return &Scene{} },
		page.Field("title", page.KindString, func(s *Scene, v string) { s.Title = v }, page.FromChild("title")),
		page.Field("shapes", page.KindList, func(s *Scene, v []page.Page) { s.Shapes = v },
			page.FromChild("shapes"), page.Of("drawable"), page.Optional()),
		page.ListField("points", func(s *Scene, v []*Point) { s.Points = v },
			page.FromChild("points"), page.Of("point"), page.Optional()),
		page.Field("hidden", page.KindBool, func(s *Scene, v bool) { s.Hidden = v }, page.Default("false")),
	)
}

func chainType() *page.Descriptor {
	return page.Describe("chain", func() *Chain { return &Chain{} },
		page.Field("next", page.KindPage, func(c *Chain, v page.Page) { c.Next = v.(*Chain) },
			page.FromChild("next"), page.Of("chain"), page.Optional()),
	)
}

func newTestContext(t *testing.T, opts ...Option) *Context {
	t.Helper()

	c := New(opts...)
	require.NoError(t, c.RegisterPageTypes(pointType(), shapeType(), circleType(), sceneType(), chainType()))

	return c
}

func parse(t *testing.T, doc string) *node.Element {
	t.Helper()

	root, err := node.ParseString(doc)
	require.NoError(t, err)

	return root
}
