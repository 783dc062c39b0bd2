package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/procfile/lang"
	"github.com/ardnew/procfile/log"
)

// Check parses each source and reports whether it is a valid Procfile.
type Check struct {
	Sources []string `arg:"" default:"Procfile" help:"Procfile paths, or '-' for stdin." name:"source" optional:""`

	RawLineEndings bool `help:"Keep carriage returns instead of normalizing CRLF line endings."`
	Plain          bool `help:"Disable styled output."`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	w := Output(ctx)
	pal := newPalette(w, c.Plain)
	sources := uniqueSources(c.Sources)

	var failed int

	for _, src := range sources {
		name := displayName(src)

		table, err := parseSource(ctx, src, c.RawLineEndings)
		if err != nil {
			failed++

			log.DebugContext(ctx, "check failed",
				slog.String("source", name),
				slog.Any("error", err),
			)

			if werr := report(w, pal, name, err); werr != nil {
				return ErrWriteOutput.Wrap(werr)
			}

			continue
		}

		_, err = fmt.Fprintf(w, "%s: %s (%d process types)\n",
			name, pal.render(pal.ok, "ok"), table.Len())
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	if failed > 0 {
		return ErrCheckFailed.With(
			slog.Int("failed", failed),
			slog.Int("checked", len(sources)),
		)
	}

	return nil
}

// report writes err for source name, one line per validation message.
func report(w io.Writer, pal palette, name string, err error) error {
	msgs := []string{err.Error()}

	var verr *lang.ValidationError
	if errors.As(err, &verr) {
		msgs = verr.Messages
	}

	for _, msg := range msgs {
		if _, werr := fmt.Fprintf(w, "%s: %s\n", name, pal.render(pal.fail, msg)); werr != nil {
			return werr
		}
	}

	return nil
}

func displayName(source string) string {
	if source == stdinSource || source == "" {
		return "<stdin>"
	}

	return source
}
