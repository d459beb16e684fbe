package gen

import "text/template"

var pagesTemplate = template.Must(template.New("pages").Parse(`// Code generated by pageloader gen. DO NOT EDIT.

package {{.PackageName}}

import "{{.PageImport}}"
{{range .Pages}}
{{if $.Comments}}// {{.TypeName}} is the {{.ID}} page type.
{{end}}type {{.TypeName}} struct {
{{if .Embed}}	{{.Embed}}
{{end}}{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}

{{if $.Comments}}// PageType returns {{.ID}}.
{{end}}func (*{{.TypeName}}) PageType() page.TypeID { return {{.ID}} }

func (p *{{.TypeName}}) {{.Accessor}}() *{{.TypeName}} { return p }

{{if $.Comments}}// {{.Iface}} is implemented by {{.TypeName}} and every type embedding it.
{{end}}type {{.Iface}} interface {
	page.Page
	{{.Accessor}}() *{{.TypeName}}
}
{{end}}
{{if .Comments}}// Descriptors returns the descriptors of every page type in this file.
{{end}}func Descriptors() []*page.Descriptor {
	return []*page.Descriptor{
{{range $p := .Pages}}		{{if $p.Abstract}}page.AbstractType({{$p.ID}},{{else}}page.Describe({{$p.ID}}, func() *{{$p.TypeName}} { return &{{$p.TypeName}}{} },{{end}}
{{range $p.Props}}			page.Field({{.Name}}, {{.Kind}}, func(p {{$p.Iface}}, v {{.Type}}) { p.{{$p.Accessor}}().{{.Field}} = v }{{.Options}}),
{{end}}		){{if $p.Extends}}.Extends({{$p.Extends}}){{end}}{{if $p.Implements}}.Implementing({{$p.Implements}}){{end}},
{{end}}	}
}
`))
