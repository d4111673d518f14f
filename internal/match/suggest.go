package match

import (
	"sort"
	"strings"
)

// maxSuggestDistance caps how different a candidate may be before it is
// not worth suggesting. Measured on case-folded names.
const maxSuggestDistance = 3

// Suggest returns up to limit candidate names closest to the unknown
// name, nearest first. Candidates further than maxSuggestDistance edits
// away are dropped; ties keep the candidates' original order.
func Suggest(unknown string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
		idx  int
	}

	folded := strings.ToLower(unknown)

	var ranked []scored

	for i, c := range candidates {
		d := Levenshtein(folded, strings.ToLower(c))
		if d > maxSuggestDistance {
			continue
		}

		ranked = append(ranked, scored{name: c, dist: d, idx: i})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}

		return ranked[i].idx < ranked[j].idx
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}

	return out
}
