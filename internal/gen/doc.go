// Package gen generates Go page types from a schema file.
//
// Generation uses text/template, then golang.org/x/tools/imports for
// formatting. For every page the output declares:
//   - A struct, embedding the struct of the page it extends
//   - Its PageType method
//   - An unexported accessor interface that lets inherited setters reach
//     the embedded struct
//
// and a single Descriptors function returning typed descriptors built with
// page.Field.
package gen
