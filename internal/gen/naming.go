package gen

import (
	"strings"
	"unicode"

	"pageloader/internal/page"
)

// exportedName turns a schema name such as "scene_item" or "scene-item"
// into a Go identifier like "SceneItem".
func exportedName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var sb strings.Builder

	for _, p := range parts {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}

	out := sb.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "P" + out
	}

	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

var goTypes = map[page.Kind]string{
	page.KindBool:   "bool",
	page.KindInt:    "int",
	page.KindFloat:  "float64",
	page.KindString: "string",
	page.KindPage:   "page.Page",
	page.KindList:   "[]page.Page",
}

var kindConsts = map[page.Kind]string{
	page.KindBool:   "page.KindBool",
	page.KindInt:    "page.KindInt",
	page.KindFloat:  "page.KindFloat",
	page.KindString: "page.KindString",
	page.KindPage:   "page.KindPage",
	page.KindList:   "page.KindList",
}

// goType returns the field type for a value kind. Custom kinds are any.
func goType(k page.Kind) string {
	if t, ok := goTypes[k]; ok {
		return t
	}

	return "any"
}
