package lang

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// ParseString parses Procfile content.
//
// It returns a [*MalformedLineError] for the first line that does not match
// the grammar, or a [*ValidationError] listing all duplicate process types
// and duplicate variables. No table is returned alongside an error.
func ParseString(ctx context.Context, content string, opts ...Option) (*Table, error) {
	o := makeOptions(opts...)
	logger := o.logger

	if o.description != "" {
		logger = logger.With(slog.String("source", o.description))
	}

	if !o.rawEndings {
		content = strings.ReplaceAll(content, "\r\n", "\n")
	}

	var procs []*Process

	for l := range Lines(content) {
		p, err := parseLine(l)
		if err != nil {
			logger.DebugContext(ctx, "malformed line", slog.Any("error", err))

			return nil, err
		}

		logger.TraceContext(ctx, "parsed line",
			slog.Int("line", p.Line),
			slog.String("type", p.Type),
			slog.Int("env_count", len(p.Env)),
		)

		procs = append(procs, p)
	}

	table, err := validate(procs)
	if err != nil {
		logger.DebugContext(ctx, "validation failed", slog.Any("error", err))

		return nil, err
	}

	logger.DebugContext(ctx, "parse complete", slog.Int("process_count", table.Len()))

	return table, nil
}

// ParseReader reads all of r, decodes it as UTF-8 and parses the result with
// [ParseString]. Invalid UTF-8 yields an error matching [ErrDecode].
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	if off := invalidUTF8(data); off >= 0 {
		return nil, ErrDecode.With(slog.Int("offset", off))
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseFile opens the file at path and parses it with [ParseReader].
// The file is closed before ParseFile returns.
func ParseFile(ctx context.Context, path string, opts ...Option) (*Table, error) {
	file, err := os.Open(path) // #nosec G304 -- reading user-named Procfiles is the point
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}
	defer file.Close()

	table, err := ParseReader(ctx, bufio.NewReader(file),
		append([]Option{withSource(path)}, opts...)...)
	if err != nil {
		return nil, annotate(err, slog.String("path", path))
	}

	return table, nil
}

// annotate adds attrs to err when it is an [*Error]; parse errors with their
// own concrete types are returned as-is.
func annotate(err error, attrs ...slog.Attr) error {
	if e, ok := err.(*Error); ok {
		return e.With(attrs...)
	}

	return err
}

// invalidUTF8 returns the byte offset of the first invalid UTF-8 sequence in
// data, or -1 if data is valid.
func invalidUTF8(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}

	for off := 0; off < len(data); {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size == 1 {
			return off
		}

		off += size
	}

	return -1
}
