// Package loader turns document nodes into typed pages.
//
// A Context owns one marshaller registry and one page type resolver. Loading
// a node resolves a logical name to a descriptor, checks it against an
// optional required type, constructs an empty instance and fills it property
// by property in declaration order:
//
//	ctx := loader.New()
//	_ = ctx.RegisterPageType(page.Describe("point", newPoint,
//		page.Field("x", page.KindInt, setX),
//		page.Field("y", page.KindInt, setY),
//	))
//	p, err := loader.Load[*Point](context.Background(), ctx, root, "point")
//
// Loads are fail-fast: any error aborts the whole call and no page is
// returned. Marshallers of composite kinds load nested pages through the same
// Context on the same call stack; nesting depth is bounded by MaxDepth.
//
// LoadAll loads the children of a library element. A child may name an
// earlier sibling in its template attribute to take the values it omits.
//
// A Context is safe for concurrent loads. Registration may run concurrently
// too, but a load in flight may or may not observe it, so register everything
// before the first load.
package loader
