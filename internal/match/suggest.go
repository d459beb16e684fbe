package match

import (
	"sort"
	"strings"
)

// MinSuggestScore is the lowest case-folded similarity Suggest will report.
const MinSuggestScore = 0.5

// Suggest returns up to limit candidates closest to name, best first.
// Comparison is case-insensitive and a candidate that differs only in
// separators or word boundaries scores as a perfect match. Ties are broken
// alphabetically.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || name == "" {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	folded := strings.ToLower(name)
	normalized := NormalizeIdent(name)

	var hits []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		s := Similarity(folded, strings.ToLower(c))
		if normalized != "" && NormalizeIdent(c) == normalized {
			s = 1
		}

		if s >= MinSuggestScore {
			hits = append(hits, scored{name: c, score: s})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}

		return hits[i].name < hits[j].name
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}
