package page

type point struct {
	X, Y int
}

func (*point) PageType() TypeID { return "point" }

type circle struct {
	Center *point
	R      float64
}

func (*circle) PageType() TypeID { return "circle" }

type polygon struct {
	Points []*point
}

func (*polygon) PageType() TypeID { return "polygon" }

func pointDescriptor() *Descriptor {
	return Describe("point", func() *point { return &point{} },
		Field("x", KindInt, func(p *point, v int) { p.X = v }),
		Field("y", KindInt, func(p *point, v int) { p.Y = v }),
	)
}

func circleDescriptor() *Descriptor {
	return Describe("circle", func() *circle { return &circle{} },
		Field("center", KindPage, func(c *circle, v Page) { c.Center = v.(*point) }, FromChild("center"), Of("point")),
		Field("r", KindFloat, func(c *circle, v float64) { c.R = v }),
	).Extends("shape")
}
