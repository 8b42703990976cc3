package game

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// alias maps one accepted spelling to a canonical id.
type alias struct {
	text string
	id   string
}

// matcher resolves loosely typed identifiers: exact, then unique prefix,
// then the unique closest spelling within an edit budget.
type matcher struct {
	aliases []alias
}

func newMatcher() *matcher { return &matcher{} }

func (m *matcher) add(id string, spellings ...string) {
	m.aliases = append(m.aliases, alias{text: normalise(id), id: id})
	for _, s := range spellings {
		if n := normalise(s); n != "" {
			m.aliases = append(m.aliases, alias{text: n, id: id})
		}
	}
}

func (m *matcher) resolve(input string) (string, bool) {
	in := normalise(input)
	if in == "" {
		return "", false
	}
	for _, a := range m.aliases {
		if a.text == in {
			return a.id, true
		}
	}

	if len(in) >= 2 {
		if id, ok := unique(m.filter(func(a alias) bool { return strings.HasPrefix(a.text, in) })); ok {
			return id, true
		}
	}

	if len(in) < 3 {
		return "", false
	}
	best := -1
	var hits []string
	for _, a := range m.aliases {
		d := levenshtein.ComputeDistance(in, a.text)
		if d > levenshteinLimit(len(a.text)) {
			continue
		}
		switch {
		case best < 0 || d < best:
			best = d
			hits = []string{a.id}
		case d == best:
			hits = append(hits, a.id)
		}
	}
	return unique(hits)
}

func (m *matcher) filter(keep func(alias) bool) []string {
	var ids []string
	for _, a := range m.aliases {
		if keep(a) {
			ids = append(ids, a.id)
		}
	}
	return ids
}

func unique(ids []string) (string, bool) {
	if len(ids) == 0 {
		return "", false
	}
	sort.Strings(ids)
	for _, id := range ids[1:] {
		if id != ids[0] {
			return "", false
		}
	}
	return ids[0], true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
