package gen

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"pageloader/internal/page"
	"pageloader/internal/schema"
)

// DefaultPageImport is the import path of the page package.
const DefaultPageImport = "pageloader/internal/page"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package. A package set in
	// the schema file takes precedence.
	PackageName string
	// OutputDir is where the unformatted sidecar is written when
	// formatting fails.
	OutputDir string
	// Filename of the generated file.
	Filename string
	// PageImport is the import path of the page package.
	PageImport string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "pages",
		OutputDir:        "./generated",
		Filename:         "pages_gen.go",
		PageImport:       DefaultPageImport,
		GenerateComments: true,
	}
}

// Generator generates Go page types from a schema file.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "pages_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one Go file declaring every page of f.
func (g *Generator) Generate(f *schema.File) ([]GeneratedFile, error) {
	if f == nil {
		return nil, errors.New("schema file is nil")
	}

	data, err := g.templateData(f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pagesTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(data.Filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return []GeneratedFile{{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}}, fmt.Errorf("formatting code: %w", err)
	}

	return []GeneratedFile{{
		Filename: data.Filename,
		Content:  formatted,
	}}, nil
}

// templateData holds all data needed for the pages template.
type templateData struct {
	PackageName string
	PageImport  string
	Filename    string
	Comments    bool
	Pages       []pageData
}

type pageData struct {
	ID         string
	TypeName   string
	Iface      string
	Accessor   string
	Embed      string
	Abstract   bool
	Extends    string
	Implements string
	Fields     []fieldData
	Props      []propData
}

type fieldData struct {
	Name string
	Type string
}

type propData struct {
	Name    string
	Kind    string
	Type    string
	Field   string
	Options string
}

func (g *Generator) templateData(f *schema.File) (*templateData, error) {
	data := &templateData{
		PackageName: g.config.PackageName,
		PageImport:  g.config.PageImport,
		Filename:    g.config.Filename,
		Comments:    g.config.GenerateComments,
	}

	if f.Package != "" {
		data.PackageName = f.Package
	}

	if data.PackageName == "" {
		data.PackageName = "pages"
	}

	if data.PageImport == "" {
		data.PageImport = DefaultPageImport
	}

	if data.Filename == "" {
		data.Filename = "pages_gen.go"
	}

	typeNames := map[string]string{}

	for _, pd := range f.Pages {
		name := exportedName(pd.Name)
		if name == "" {
			return nil, fmt.Errorf("page %q has no usable Go name", pd.Name)
		}

		if other, ok := typeNames[name]; ok {
			return nil, fmt.Errorf("pages %q and %q both generate type %s", other, pd.Name, name)
		}

		typeNames[name] = pd.Name
	}

	for i := range f.Pages {
		pd, err := pageTemplateData(f, &f.Pages[i])
		if err != nil {
			return nil, err
		}

		data.Pages = append(data.Pages, pd)
	}

	return data, nil
}

func pageTemplateData(f *schema.File, pd *schema.PageDef) (pageData, error) {
	typeName := exportedName(pd.Name)
	out := pageData{
		ID:       strconv.Quote(pd.Name),
		TypeName: typeName,
		Iface:    lowerFirst(typeName) + "Page",
		Accessor: "as" + typeName,
		Abstract: pd.Abstract,
	}

	if pd.Extends != "" {
		if _, ok := f.Page(pd.Extends); !ok {
			return out, fmt.Errorf("page %q extends undeclared page %q", pd.Name, pd.Extends)
		}

		out.Embed = exportedName(pd.Extends)
		out.Extends = strconv.Quote(pd.Extends)
	}

	if len(pd.Implements) > 0 {
		quoted := make([]string, len(pd.Implements))
		for i, id := range pd.Implements {
			quoted[i] = strconv.Quote(id)
		}

		out.Implements = strings.Join(quoted, ", ")
	}

	fields := map[string]string{}
	if out.Embed != "" {
		fields[out.Embed] = "embedded " + pd.Extends
	}

	for _, p := range pd.Props {
		field := exportedName(p.Name)

		switch {
		case field == "":
			return out, fmt.Errorf("page %q: prop %q has no usable Go name", pd.Name, p.Name)
		case field == "PageType":
			return out, fmt.Errorf("page %q: prop %q collides with the PageType method", pd.Name, p.Name)
		}

		if other, ok := fields[field]; ok {
			return out, fmt.Errorf("page %q: props %q and %q both generate field %s", pd.Name, other, p.Name, field)
		}

		fields[field] = p.Name

		kind := page.Kind(p.Kind)
		kindExpr, ok := kindConsts[kind]
		if !ok {
			kindExpr = strconv.Quote(p.Kind)
		}

		out.Fields = append(out.Fields, fieldData{Name: field, Type: goType(kind)})
		out.Props = append(out.Props, propData{
			Name:    strconv.Quote(p.Name),
			Kind:    kindExpr,
			Type:    goType(kind),
			Field:   field,
			Options: propOptions(p),
		})
	}

	return out, nil
}

// propOptions renders the page.PropOption arguments of p, each preceded by
// a comma.
func propOptions(p schema.PropDef) string {
	var opts []string

	switch {
	case p.Source.Child != "":
		opts = append(opts, fmt.Sprintf("page.FromChild(%q)", p.Source.Child))
	case p.Source.Text:
		opts = append(opts, "page.FromText()")
	case p.Source.Attr != "" && p.Source.Attr != p.Name:
		opts = append(opts, fmt.Sprintf("page.FromAttr(%q)", p.Source.Attr))
	}

	if p.Of != "" {
		opts = append(opts, fmt.Sprintf("page.Of(%q)", p.Of))
	}

	if p.Optional {
		opts = append(opts, "page.Optional()")
	}

	if p.Default != nil {
		opts = append(opts, fmt.Sprintf("page.Default(%q)", *p.Default))
	}

	if p.Min != nil {
		opts = append(opts, "page.Min("+strconv.FormatFloat(*p.Min, 'g', -1, 64)+")")
	}

	if p.Max != nil {
		opts = append(opts, "page.Max("+strconv.FormatFloat(*p.Max, 'g', -1, 64)+")")
	}

	if len(opts) == 0 {
		return ""
	}

	return ", " + strings.Join(opts, ", ")
}
