package lang

import "github.com/sahilm/fuzzy"

// maxSuggestions bounds the result of [Table.Suggest].
const maxSuggestions = 3

// Suggest returns up to three process types that fuzzily match name, best
// match first. It returns nil when nothing resembles name.
func (t *Table) Suggest(name string) []string {
	if name == "" {
		return nil
	}

	matches := fuzzy.Find(name, t.Types())
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches[:min(len(matches), maxSuggestions)] {
		out = append(out, m.Str)
	}

	return out
}
