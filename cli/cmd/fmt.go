package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/procfile/lang"
)

// Fmt parses a Procfile and writes it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as a canonical Procfile (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
}

// Native writes one canonical "type: [env N=V ...] command" line per process.
type Native struct {
	Input `embed:""`
}

// Run executes the fmt native command.
func (f *Native) Run(ctx context.Context) error {
	table, err := f.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "native"))
	}

	if err := table.Format(ctx, Output(ctx)); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// JSON writes the process table as a JSON object keyed by process type.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)." short:"i"`

	Input `embed:""`
}

// Run executes the fmt json command.
func (j *JSON) Run(ctx context.Context) error {
	table, err := j.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "json"))
	}

	if err := table.FormatJSON(ctx, Output(ctx), j.Indent); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", "json"))
	}

	return nil
}

// YAML writes the process table as a YAML mapping in declaration order.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)." short:"i"`

	Input `embed:""`
}

// Run executes the fmt yaml command.
func (y *YAML) Run(ctx context.Context) error {
	table, err := y.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "yaml"))
	}

	if err := table.FormatYAML(ctx, Output(ctx), y.Indent); err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	return nil
}
