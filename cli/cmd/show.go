package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/procfile/lang"
)

// Show prints the command of one process type, or its environment overrides.
type Show struct {
	Type  string `arg:"" help:"Process type to show." name:"type"`
	Env   bool   `help:"Print the environment overrides as NAME=VALUE lines instead of the command." short:"e"`
	Plain bool   `help:"Disable styled output."`

	Input `embed:""`
}

// Run executes the show command.
func (s *Show) Run(ctx context.Context) error {
	table, err := s.parse(ctx)
	if err != nil {
		return err
	}

	p, ok := table.Get(s.Type)
	if !ok {
		return s.notFound(table)
	}

	w := Output(ctx)
	pal := newPalette(w, s.Plain)

	lines := []string{pal.render(pal.command, p.Command)}

	if s.Env {
		lines = lines[:0]
		for _, v := range p.Env {
			lines = append(lines,
				pal.render(pal.key, v.Name)+"="+pal.render(pal.value, v.Value))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

func (s *Show) notFound(table *lang.Table) error {
	cause := fmt.Errorf("%w: %q", lang.ErrProcessNotFound, s.Type)

	suggestions := table.Suggest(s.Type)
	if len(suggestions) > 0 {
		quoted := make([]string, len(suggestions))
		for i, name := range suggestions {
			quoted[i] = fmt.Sprintf("%q", name)
		}

		cause = fmt.Errorf("%w (did you mean %s?)", cause, strings.Join(quoted, " or "))
	}

	return ErrUnknownProcess.Wrap(cause).With(
		slog.String("type", s.Type),
		slog.Any("suggestions", suggestions),
	)
}
