package lang

import (
	"iter"
	"strings"
	"unicode"
)

// continuation is the final character of a raw line that continues onto the
// next one.
const continuation = '\\'

// LogicalLine is one or more raw lines joined by continuations.
type LogicalLine struct {
	// Index is the 0-based index of the first raw line in the group.
	Index int
	// Text is the joined content.
	Text string
}

// Number returns the 1-based line number used in messages.
func (l LogicalLine) Number() int { return l.Index + 1 }

// Lines splits content on line feeds and returns the logical lines it
// contains, skipping those that are blank after trimming.
func Lines(content string) iter.Seq[LogicalLine] {
	return func(yield func(LogicalLine) bool) {
		for l := range join(strings.Split(content, "\n")) {
			if strings.TrimSpace(l.Text) == "" {
				continue
			}

			if !yield(l) {
				return
			}
		}
	}
}

// join merges continued raw lines. Only the raw final character is checked
// for the continuation marker; trailing whitespace after a backslash ends
// the group.
func join(raw []string) iter.Seq[LogicalLine] {
	return func(yield func(LogicalLine) bool) {
		var (
			start int
			group []string
		)

		for i, line := range raw {
			if strings.HasSuffix(line, string(continuation)) {
				if len(group) == 0 {
					start = i
				}

				group = append(group, line[:len(line)-1])

				continue
			}

			if len(group) == 0 {
				if !yield(LogicalLine{Index: i, Text: line}) {
					return
				}

				continue
			}

			group = append(group, strings.TrimLeftFunc(line, unicode.IsSpace))
			if !yield(LogicalLine{Index: start, Text: strings.Join(group, "")}) {
				return
			}

			group = group[:0]
		}

		// A trailing continuation with no closing line is kept.
		if n := len(group); n > 0 {
			group[n-1] = strings.TrimRightFunc(group[n-1], unicode.IsSpace)
			yield(LogicalLine{Index: start, Text: strings.Join(group, "")})
		}
	}
}
