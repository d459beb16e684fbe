package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pageloader/internal/page"
)

const shapesYAML = `
version: "1"
package: shapes
pages:
  - name: point
    implements: [drawable]
    props:
      - name: x
        kind: int
      - name: y
        kind: int
  - name: shape
    abstract: true
    implements: [drawable]
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
      - name: note
        source: {text: true}
        optional: true
  - name: scene
    props:
      - name: title
        source: {child: title}
      - name: shapes
        kind: list
        of: drawable
        source: {child: shapes}
      - name: hidden
        kind: bool
        default: "false"
`

var builtinKinds = []page.Kind{
	page.KindBool, page.KindFloat, page.KindInt, page.KindList, page.KindPage, page.KindString,
}

func mustParse(t *testing.T, data string) *File {
	t.Helper()

	f, err := Parse([]byte(data))
	require.NoError(t, err)

	return f
}
