package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageloader/internal/schema"
)

const shapesYAML = `
package: shapes
pages:
  - name: point
    implements: [drawable]
    props:
      - name: x
        kind: int
      - name: "y"
        kind: int
        source: py
  - name: shape
    abstract: true
    implements: [drawable, named]
    props:
      - name: label
        optional: true
  - name: circle
    extends: shape
    props:
      - name: center
        kind: page
        of: point
        source: {child: center}
      - name: r
        kind: float
        min: 0
        max: 1e6
      - name: note
        source: {text: true}
        default: "none"
      - name: fill
        kind: color
`

func generate(t *testing.T, yaml string, cfg GeneratorConfig) GeneratedFile {
	t.Helper()

	f, err := schema.Parse([]byte(yaml))
	require.NoError(t, err)

	files, err := NewGenerator(cfg).Generate(f)
	require.NoError(t, err)
	require.Len(t, files, 1)

	return files[0]
}

func TestGenerator_Generate(t *testing.T) {
	file := generate(t, shapesYAML, DefaultGeneratorConfig())
	assert.Equal(t, "pages_gen.go", file.Filename)

	src := string(file.Content)

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, file.Filename, file.Content, parser.ParseComments)
	require.NoError(t, err, src)

	assert.Equal(t, "shapes", parsed.Name.Name, "schema package wins over config")
	assert.True(t, strings.HasPrefix(src, "// Code generated by pageloader gen. DO NOT EDIT."))

	var types, funcs []string

	for _, decl := range parsed.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					types = append(types, ts.Name.Name)
				}
			}
		case *ast.FuncDecl:
			funcs = append(funcs, d.Name.Name)
		}
	}

	assert.Equal(t, []string{"Point", "pointPage", "Shape", "shapePage", "Circle", "circlePage"}, types)
	assert.Contains(t, funcs, "Descriptors")
	assert.Contains(t, funcs, "asCircle")

	assert.Contains(t, src, `func (*Circle) PageType() page.TypeID { return "circle" }`)
	assert.Contains(t, src, `page.Field("y", page.KindInt, func(p pointPage, v int) { p.asPoint().Y = v }, page.FromAttr("py"))`)
	assert.Contains(t, src, `page.Field("center", page.KindPage, func(p circlePage, v page.Page) { p.asCircle().Center = v }, page.FromChild("center"), page.Of("point"))`)
	assert.Contains(t, src, `page.Min(0), page.Max(1e+06)`)
	assert.Contains(t, src, `page.FromText(), page.Default("none")`)
	assert.Contains(t, src, `page.Field("fill", "color", func(p circlePage, v any)`)
	assert.Contains(t, src, `page.AbstractType("shape",`)
	assert.Contains(t, src, `).Implementing("drawable", "named"),`)
	assert.Contains(t, src, `).Extends("shape"),`)
	assert.Contains(t, src, `"pageloader/internal/page"`)
}

func TestGenerator_Embedding(t *testing.T) {
	file := generate(t, shapesYAML, DefaultGeneratorConfig())

	parsed, err := parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, 0)
	require.NoError(t, err)

	var circle *ast.StructType

	ast.Inspect(parsed, func(n ast.Node) bool {
		if ts, ok := n.(*ast.TypeSpec); ok && ts.Name.Name == "Circle" {
			circle, _ = ts.Type.(*ast.StructType)
			return false
		}

		return true
	})

	require.NotNil(t, circle)
	require.NotEmpty(t, circle.Fields.List)

	first := circle.Fields.List[0]
	assert.Empty(t, first.Names, "parent is embedded")
	assert.Equal(t, "Shape", first.Type.(*ast.Ident).Name)
}

// The example package compiles pages_gen.go and loads scene.xml through it,
// so the generator must keep producing that file.
func TestGenerator_ExampleLibraryIsCurrent(t *testing.T) {
	dir := filepath.Join("..", "..", "examples", "shapes")

	f, err := schema.LoadFile(filepath.Join(dir, "pages.yaml"))
	require.NoError(t, err)

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(f)
	require.NoError(t, err)
	require.Len(t, files, 1)

	want, err := os.ReadFile(filepath.Join(dir, "pages_gen.go"))
	require.NoError(t, err)

	assert.Equal(t, strings.Fields(string(want)), strings.Fields(string(files[0].Content)),
		"examples/shapes/pages_gen.go is stale, run go generate ./examples/shapes")
}

func TestGenerator_Config(t *testing.T) {
	cfg := GeneratorConfig{
		PackageName: "library",
		Filename:    "library.go",
		PageImport:  "example.com/app/page",
	}

	file := generate(t, `
pages:
  - name: scene_item
    props:
      - name: title_text
`, cfg)

	src := string(file.Content)
	assert.Equal(t, "library.go", file.Filename)
	assert.Contains(t, src, "package library")
	assert.Contains(t, src, `"example.com/app/page"`)
	assert.Contains(t, src, "type SceneItem struct")
	assert.Contains(t, src, "TitleText string")
	assert.NotContains(t, src, "// Descriptors returns", "comments are off")
	assert.NotContains(t, src, "is implemented by", "comments are off")
}

func TestGenerator_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "type name collision",
			yaml: `
pages:
  - name: scene_item
  - name: scene-item
`,
			want: "both generate type SceneItem",
		},
		{
			name: "field name collision",
			yaml: `
pages:
  - name: p
    props:
      - name: a_b
      - name: aB
        source: ab
`,
			want: "both generate field AB",
		},
		{
			name: "page type method",
			yaml: `
pages:
  - name: p
    props:
      - name: page_type
`,
			want: "collides with the PageType method",
		},
		{
			name: "undeclared parent",
			yaml: `
pages:
  - name: circle
    extends: shape
`,
			want: "extends undeclared page",
		},
		{
			name: "unusable name",
			yaml: `
pages:
  - name: "--"
`,
			want: "no usable Go name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := schema.Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = NewGenerator(DefaultGeneratorConfig()).Generate(f)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := NewGenerator(DefaultGeneratorConfig()).Generate(nil)
	assert.Error(t, err)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	files := []GeneratedFile{{Filename: "a.go", Content: []byte("package a\n")}}

	require.NoError(t, WriteFiles(files, dir))

	data, err := os.ReadFile(filepath.Join(dir, "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(data))
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "pages_gen.go", []byte("package {")))
	assert.FileExists(t, filepath.Join(dir, "pages_gen.unformatted.go"))

	assert.NoError(t, writeDebugUnformatted("", "x.go", nil))
}

func TestExportedName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"point", "Point"},
		{"scene_item", "SceneItem"},
		{"scene-item", "SceneItem"},
		{"x", "X"},
		{"3d", "P3d"},
		{"Point3D", "Point3D"},
		{"--", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, exportedName(tt.in), tt.in)
	}
}
