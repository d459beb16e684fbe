package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either an attribute name or a mapping:
//   - "x"
//   - {attr: x}
//   - {child: center}
//   - {text: true}
func (s *SourceDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*s = SourceDef{Attr: str}

		return nil

	case yaml.MappingNode:
		// plain avoids recursing into this method.
		type plain SourceDef

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		if n := SourceDef(p).count(); n > 1 {
			return fmt.Errorf("line %d: source must set one of attr, child or text, got %d", node.Line, n)
		}

		*s = SourceDef(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected attribute name or source mapping", node.Line)
	}
}

// MarshalYAML writes attribute sources in their short form.
func (s SourceDef) MarshalYAML() (any, error) {
	if s.Child == "" && !s.Text {
		return s.Attr, nil
	}

	type plain SourceDef

	return plain(s), nil
}
