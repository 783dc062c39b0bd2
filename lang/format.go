package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the table as a canonical Procfile, one line per process in
// declaration order. Parsing the output yields an equivalent table.
func (t *Table) Format(_ context.Context, w io.Writer) error {
	for _, p := range t.Processes {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the table as a JSON object keyed by process type.
// An indent of zero produces compact output.
func (t *Table) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(t, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(t)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the table as a YAML mapping in declaration order.
// An indent of zero produces flow style.
func (t *Table) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent), yaml.IndentSequence(true))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, t.mapSlice(), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
