package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// palette renders command output. Colors are chosen for the terminal behind
// the output writer and dropped when it is not a terminal; a plain palette
// leaves text untouched.
type palette struct {
	plain bool

	name    lipgloss.Style
	command lipgloss.Style
	key     lipgloss.Style
	value   lipgloss.Style
	dim     lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
}

func newPalette(w io.Writer, plain bool) palette {
	if plain {
		return palette{plain: true}
	}

	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return palette{
		name:    base.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		command: base,
		key:     base.Foreground(lipgloss.AdaptiveColor{Light: "5", Dark: "13"}),
		value:   base.Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}),
		dim:     base.Faint(true),
		ok:      base.Foreground(lipgloss.Color("10")),
		fail:    base.Bold(true).Foreground(lipgloss.Color("9")),
	}
}

func (p palette) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}

	return s.Render(text)
}

// pad renders text in style s, padded on the right to width cells.
func (p palette) pad(s lipgloss.Style, text string, width int) string {
	if p.plain {
		return text
	}

	return s.Width(width).Render(text)
}
