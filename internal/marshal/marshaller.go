package marshal

import (
	"context"

	"pageloader/internal/node"
	"pageloader/internal/page"
)

// Value is the raw input for one property conversion.
type Value struct {
	// Raw is the attribute value, or the trimmed character data of the
	// source element or node.
	Raw string
	// Node is the source child element for FromElement props, nil otherwise.
	Node node.Node
	// Prop is the property being converted.
	Prop page.Prop
	// Owner is the page type declaring Prop.
	Owner page.TypeID
}

// Loader loads nested pages on behalf of a marshaller. The loading context
// implements it; nested loads share the caller's stack and context.
type Loader interface {
	LoadRequired(ctx context.Context, n node.Node, name string, required page.TypeID) (page.Page, error)
}

// Marshaller converts raw values of the kinds it declares.
type Marshaller interface {
	// Kinds lists the value kinds this marshaller handles.
	Kinds() []page.Kind
	// Unmarshal converts v. Errors are reported to the caller as conversion
	// failures of v.Prop.
	Unmarshal(ctx context.Context, l Loader, v Value) (any, error)
}
