package lang

import (
	"fmt"
	"iter"
)

// duplicate is a repeated key found by [duplicates].
type duplicate[K comparable] struct {
	index int // where the repeat occurs
	key   K
	first int // where the key was first seen
}

// duplicates scans (index, key) pairs in order and returns every pair whose
// key was already seen, together with the index of its first occurrence.
func duplicates[K comparable](seq iter.Seq2[int, K]) []duplicate[K] {
	var (
		seen = make(map[K]int)
		dups []duplicate[K]
	)

	for i, key := range seq {
		if first, ok := seen[key]; ok {
			dups = append(dups, duplicate[K]{index: i, key: key, first: first})

			continue
		}

		seen[key] = i
	}

	return dups
}

// processTypes yields each process's line number and type.
func processTypes(procs []*Process) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, p := range procs {
			if !yield(p.Line, p.Type) {
				return
			}
		}
	}
}

// variableNames yields each variable name of p, all attributed to p's line.
func variableNames(p *Process) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, v := range p.Env {
			if !yield(p.Line, v.Name) {
				return
			}
		}
	}
}

// validate checks parsed processes for duplicate types and for duplicate
// variables within each process. It returns a table only when there are no
// violations; otherwise all violations are reported together.
func validate(procs []*Process) (*Table, error) {
	var msgs []string

	for _, d := range duplicates(processTypes(procs)) {
		msgs = append(msgs, fmt.Sprintf(
			`Line %d: duplicate process type "%s": already appears on line %d.`,
			d.index, d.key, d.first,
		))
	}

	for _, p := range procs {
		for _, d := range duplicates(variableNames(p)) {
			msgs = append(msgs, fmt.Sprintf(
				`Line %d: duplicate variable "%s" for process type "%s".`,
				d.index, d.key, p.Type,
			))
		}
	}

	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	return newTable(procs), nil
}
