package schema

import (
	"fmt"
	"slices"

	"pageloader/internal/diagnostic"
	"pageloader/internal/match"
	"pageloader/internal/page"
)

const maxSuggestions = 3

// Validate checks a page library against the value kinds that have a
// marshaller. It reports every problem it finds rather than stopping at the
// first one.
func Validate(f *File, kinds []page.Kind) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported schema version %q", f.Version), "", "")
	}

	if len(f.Pages) == 0 {
		res.AddWarning("no_pages", "schema declares no pages", "", "")
	}

	kindNames := make([]string, len(kinds))
	for i, k := range kinds {
		kindNames[i] = string(k)
	}

	pages := map[string]*PageDef{}
	ifaces := map[string]struct{}{}

	var order []*PageDef

	for i := range f.Pages {
		pd := &f.Pages[i]
		if pd.Name == "" {
			res.AddError("page_name_missing", fmt.Sprintf("page %d has no name", i), "", "")
			continue
		}

		if _, ok := pages[pd.Name]; ok {
			res.AddError("duplicate_page", fmt.Sprintf("duplicate page %q", pd.Name), pd.Name, "")
			continue
		}

		pages[pd.Name] = pd
		order = append(order, pd)

		for _, id := range pd.Implements {
			ifaces[id] = struct{}{}
		}
	}

	targets := f.Names()
	for id := range ifaces {
		targets = append(targets, id)
	}

	slices.Sort(targets)

	for _, pd := range order {
		validateParent(res, pd, pages, f.Names())

		for j := range pd.Props {
			validateProp(res, pd.Name, &pd.Props[j], kindNames, pages, ifaces, targets)
		}

		validateDuplicates(res, pd, pages)
	}

	return res
}

func validateParent(res *diagnostic.Diagnostics, pd *PageDef, pages map[string]*PageDef, names []string) {
	if pd.Extends == "" {
		return
	}

	if _, ok := pages[pd.Extends]; !ok {
		addWithSuggestions(res, "unknown_parent",
			fmt.Sprintf("page %q extends undeclared page %q", pd.Name, pd.Extends),
			pd.Name, "", match.Suggest(pd.Extends, names, maxSuggestions))

		return
	}

	seen := map[string]struct{}{pd.Name: {}}
	for cur := pages[pd.Extends]; cur != nil; cur = pages[cur.Extends] {
		if _, ok := seen[cur.Name]; ok {
			res.AddError("inheritance_cycle", fmt.Sprintf("page %q is its own ancestor", pd.Name), pd.Name, "")
			return
		}

		seen[cur.Name] = struct{}{}
	}
}

func validateProp(
	res *diagnostic.Diagnostics,
	owner string,
	p *PropDef,
	kinds []string,
	pages map[string]*PageDef,
	ifaces map[string]struct{},
	targets []string,
) {
	if p.Name == "" {
		res.AddError("prop_name_missing", "prop has no name", owner, "")
		return
	}

	if !slices.Contains(kinds, p.Kind) {
		addWithSuggestions(res, "unknown_kind",
			fmt.Sprintf("no marshaller for kind %q", p.Kind),
			owner, p.Name, match.Suggest(p.Kind, kinds, maxSuggestions))
	}

	nested := p.Kind == string(page.KindPage) || p.Kind == string(page.KindList)

	switch {
	case nested && p.Of == "":
		res.AddError("missing_of", fmt.Sprintf("%s prop needs an element type in of", p.Kind), owner, p.Name)
	case p.Of != "":
		_, isPage := pages[p.Of]
		_, isIface := ifaces[p.Of]

		if !isPage && !isIface {
			addWithSuggestions(res, "unknown_of",
				fmt.Sprintf("element type %q is not a declared page or interface", p.Of),
				owner, p.Name, match.Suggest(p.Of, targets, maxSuggestions))
		}

		if !nested {
			res.AddWarning("of_ignored", fmt.Sprintf("of is only used by page and list props, not %s", p.Kind), owner, p.Name)
		}
	}

	if nested && p.Source.Child == "" {
		res.AddError("invalid_source", fmt.Sprintf("%s prop must read a child element", p.Kind), owner, p.Name)
	}

	if nested && p.Default != nil {
		res.AddError("default_on_nested", fmt.Sprintf("%s prop cannot have a default", p.Kind), owner, p.Name)
	}

	if page.IsReservedAttr(p.Source.Attr) {
		res.AddError("reserved_name",
			fmt.Sprintf("attribute %q is reserved for the loader", p.Source.Attr), owner, p.Name)
	}

	if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
		res.AddError("invalid_bounds", fmt.Sprintf("min %v is above max %v", *p.Min, *p.Max), owner, p.Name)
	}

	numeric := p.Kind == string(page.KindInt) || p.Kind == string(page.KindFloat)
	if (p.Min != nil || p.Max != nil) && !numeric {
		res.AddWarning("bounds_ignored", fmt.Sprintf("min and max are ignored for kind %s", p.Kind), owner, p.Name)
	}

	if p.Default != nil && p.Optional {
		res.AddInfo("optional_with_default", "optional has no effect when a default is set", owner, p.Name)
	}
}

// validateDuplicates reports props sharing a name or a mapping rule, either
// within pd or with a prop pd inherits under another name.
func validateDuplicates(res *diagnostic.Diagnostics, pd *PageDef, pages map[string]*PageDef) {
	names := map[string]struct{}{}
	sources := map[SourceDef]string{}
	inherited := inheritedSources(pd, pages)

	for _, p := range pd.Props {
		if p.Name == "" {
			continue
		}

		if _, ok := names[p.Name]; ok {
			res.AddError("duplicate_prop", fmt.Sprintf("duplicate prop %q", p.Name), pd.Name, p.Name)
			continue
		}

		names[p.Name] = struct{}{}

		if from, ok := inherited[p.Source]; ok {
			res.AddError("duplicate_source",
				fmt.Sprintf("prop %q reads the same source as %q inherited from %q", p.Name, from.name, from.page),
				pd.Name, p.Name)

			continue
		}

		if other, ok := sources[p.Source]; ok {
			res.AddError("duplicate_source",
				fmt.Sprintf("props %q and %q read the same source", other, p.Name), pd.Name, p.Name)

			continue
		}

		sources[p.Source] = p.Name
	}
}

type inheritedProp struct {
	name string
	page string
}

// inheritedSources maps the rules of pd's ancestors to the props that read
// them after overrides. Props pd redeclares are left out.
func inheritedSources(pd *PageDef, pages map[string]*PageDef) map[SourceDef]inheritedProp {
	var chain []*PageDef

	seen := map[string]struct{}{pd.Name: {}}
	for cur := pages[pd.Extends]; cur != nil; cur = pages[cur.Extends] {
		if _, loop := seen[cur.Name]; loop {
			break
		}

		seen[cur.Name] = struct{}{}
		chain = append(chain, cur)
	}

	byName := map[string]SourceDef{}
	owner := map[string]string{}

	for i := len(chain) - 1; i >= 0; i-- {
		for _, p := range chain[i].Props {
			byName[p.Name] = p.Source
			owner[p.Name] = chain[i].Name
		}
	}

	for _, p := range pd.Props {
		delete(byName, p.Name)
	}

	out := make(map[SourceDef]inheritedProp, len(byName))
	for name, src := range byName {
		out[src] = inheritedProp{name: name, page: owner[name]}
	}

	return out
}

func addWithSuggestions(res *diagnostic.Diagnostics, code, msg, pageName, prop string, suggestions []string) {
	res.Errors = append(res.Errors, diagnostic.Diagnostic{
		Severity:    diagnostic.SeverityError,
		Code:        code,
		Message:     msg,
		Page:        pageName,
		Prop:        prop,
		Suggestions: suggestions,
	})
}
