package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/procfile/lang"
	"github.com/ardnew/procfile/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	outputKey struct{}
	inputKey  struct{}
)

// WithOutput returns a new context.Context whose commands write to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// Output returns the writer installed by [WithOutput], or os.Stdout.
func Output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// WithInput returns a new context.Context whose commands read the "-" source
// from r.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Input is the Procfile argument and parse options shared by commands that
// read a single source.
type Input struct {
	Source string `arg:"" default:"Procfile" help:"Procfile path, or '-' for stdin." name:"source" optional:""`

	RawLineEndings bool `help:"Keep carriage returns instead of normalizing CRLF line endings."`
}

// parse reads and parses the source.
func (in Input) parse(ctx context.Context) (*lang.Table, error) {
	return parseSource(ctx, in.Source, in.RawLineEndings)
}

func parseSource(ctx context.Context, source string, raw bool) (*lang.Table, error) {
	opts := []lang.Option{lang.WithLogger(log.Default())}
	if raw {
		opts = append(opts, lang.WithRawLineEndings())
	}

	if source == stdinSource || source == "" {
		table, err := lang.ParseReader(ctx, inputFrom(ctx), opts...)
		if err != nil {
			return nil, sourceError(err, "<stdin>")
		}

		return table, nil
	}

	table, err := lang.ParseFile(ctx, source, opts...)
	if err != nil {
		return nil, sourceError(err, source)
	}

	return table, nil
}

// sourceError marks read failures as [ErrOpenSource]. Parse and validation
// errors are returned unchanged so callers can inspect them.
func sourceError(err error, source string) error {
	if errors.Is(err, lang.ErrReadInput) {
		return ErrOpenSource.Wrap(err).With(slog.String("source", source))
	}

	return err
}

// fileKey uniquely identifies a file by its device and inode numbers.
type fileKey struct {
	dev uint64
	ino uint64
}

// uniqueSources drops sources that name a file already listed, by resolving
// symlinks and comparing device/inode pairs. Sources that cannot be resolved
// are kept so that parsing reports the failure. At most one "-" is kept.
func uniqueSources(sources []string) []string {
	var (
		out   = make([]string, 0, len(sources))
		seen  = make(map[fileKey]struct{})
		stdin bool
	)

	for _, src := range sources {
		if src == stdinSource {
			if !stdin {
				out = append(out, src)
			}

			stdin = true

			continue
		}

		key, ok := resolveFileKey(src)
		if ok {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		out = append(out, src)
	}

	return out
}

func resolveFileKey(path string) (fileKey, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, false
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
