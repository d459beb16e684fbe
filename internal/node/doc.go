// Package node provides the read-only document tree consumed by the loader.
//
// A tree is made of elements, each with a tag name, an ordered list of
// attributes, an ordered list of element children and the character data
// found directly inside it. The loader only depends on the Node interface,
// so any parser that can expose this shape can feed it; Parse builds a tree
// from encoding/xml tokens.
package node
