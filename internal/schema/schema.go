package schema

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// File is the root of a page library file.
type File struct {
	// Version of the schema format.
	Version string `yaml:"version,omitempty"`
	// Package is the Go package name used by the generator.
	Package string `yaml:"package,omitempty"`
	// Pages declares the page types, parents before or after their subtypes.
	Pages []PageDef `yaml:"pages"`
}

// PageDef declares one page type.
type PageDef struct {
	Name       string    `yaml:"name"`
	Extends    string    `yaml:"extends,omitempty"`
	Implements []string  `yaml:"implements,omitempty"`
	Abstract   bool      `yaml:"abstract,omitempty"`
	Props      []PropDef `yaml:"props,omitempty"`
}

// PropDef declares one property of a page type.
type PropDef struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind,omitempty"`
	Source   SourceDef `yaml:"source,omitempty"`
	Of       string    `yaml:"of,omitempty"`
	Optional bool      `yaml:"optional,omitempty"`
	Default  *string   `yaml:"default,omitempty"`
	Min      *float64  `yaml:"min,omitempty"`
	Max      *float64  `yaml:"max,omitempty"`
}

// SourceDef is the mapping rule of a property. At most one field is set.
type SourceDef struct {
	Attr  string `yaml:"attr,omitempty"`
	Child string `yaml:"child,omitempty"`
	Text  bool   `yaml:"text,omitempty"`
}

// IsZero reports whether no rule is set.
func (s SourceDef) IsZero() bool {
	return s.Attr == "" && s.Child == "" && !s.Text
}

// count returns how many rules are set.
func (s SourceDef) count() int {
	n := 0
	if s.Attr != "" {
		n++
	}

	if s.Child != "" {
		n++
	}

	if s.Text {
		n++
	}

	return n
}

// Page returns the page named name.
func (f *File) Page(name string) (*PageDef, bool) {
	for i := range f.Pages {
		if f.Pages[i].Name == name {
			return &f.Pages[i], true
		}
	}

	return nil, false
}

// Names returns the declared page names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Pages))
	for _, p := range f.Pages {
		names = append(names, p.Name)
	}

	return names
}
