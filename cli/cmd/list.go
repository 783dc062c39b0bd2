package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/procfile/lang"
	"github.com/ardnew/procfile/log"
)

// List prints the process types of a Procfile in declaration order.
type List struct {
	Where string `help:"Only list processes for which this expr-lang expression is true (variables: name, command, vars, line)." placeholder:"EXPR" short:"w"`
	Plain bool   `help:"Print bare process types, one per line."`

	Input `embed:""`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	table, err := l.parse(ctx)
	if err != nil {
		return err
	}

	var filter *lang.Filter

	if l.Where != "" {
		if filter, err = lang.CompileFilter(l.Where); err != nil {
			return err
		}
	}

	var procs []*lang.Process

	for p, err := range table.Select(filter) {
		if err != nil {
			return err
		}

		procs = append(procs, p)
	}

	log.DebugContext(ctx, "list",
		slog.String("filter", filter.String()),
		slog.Int("matched", len(procs)),
		slog.Int("total", table.Len()),
	)

	w := Output(ctx)
	pal := newPalette(w, l.Plain)

	var width int
	for _, p := range procs {
		width = max(width, lipgloss.Width(p.Type))
	}

	for _, p := range procs {
		line := p.Type
		if !l.Plain {
			line = pal.pad(pal.name, p.Type, width) + "  " + describe(pal, p)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

// describe renders the environment clause and command of p.
func describe(pal palette, p *lang.Process) string {
	var sb strings.Builder

	for _, v := range p.Env {
		sb.WriteString(pal.render(pal.key, v.Name))
		sb.WriteString(pal.render(pal.dim, "="))
		sb.WriteString(pal.render(pal.value, v.Value))
		sb.WriteByte(' ')
	}

	sb.WriteString(pal.render(pal.command, p.Command))

	return sb.String()
}
