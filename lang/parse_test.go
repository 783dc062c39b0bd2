package lang

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/ardnew/procfile/log"
)

const heroku = `web: bundle exec rails server -p $PORT
worker: env QUEUE=* bundle exec rake resque:work
urgentworker: env QUEUE=urgent FOO=meh bundle exec rake resque:work
`

func TestParseString(t *testing.T) {
	table, err := ParseString(context.Background(), heroku)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	require.Equal(t, []string{"web", "worker", "urgentworker"}, table.Types())

	web, ok := table.Get("web")
	require.True(t, ok)
	require.Equal(t, "bundle exec rails server -p $PORT", web.Command)
	require.Empty(t, web.Env)
	require.Equal(t, 1, web.Line)

	worker, ok := table.Get("worker")
	require.True(t, ok)
	require.Equal(t, []Variable{{"QUEUE", "*"}}, worker.Env)
	require.Equal(t, "bundle exec rake resque:work", worker.Command)

	urgent, ok := table.Get("urgentworker")
	require.True(t, ok)
	require.Equal(t, []Variable{{"QUEUE", "urgent"}, {"FOO", "meh"}}, urgent.Env)
	require.Equal(t, []string{"QUEUE=urgent", "FOO=meh"}, urgent.Environ())

	v, ok := urgent.Lookup("FOO")
	require.True(t, ok)
	require.Equal(t, "meh", v)

	_, ok = urgent.Lookup("BAR")
	require.False(t, ok)

	_, ok = table.Get("clock")
	require.False(t, ok)
}

func TestParseString_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "  \n\t\n", "\\\n"} {
		table, err := ParseString(context.Background(), input)
		require.NoError(t, err, "input %q", input)
		require.NotNil(t, table)
		require.Zero(t, table.Len())
	}
}

func TestParseString_DuplicateType(t *testing.T) {
	_, err := ParseString(context.Background(), "web: a\nweb: b\n")
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{
		`Line 2: duplicate process type "web": already appears on line 1.`,
	}, verr.Messages)
}

func TestParseString_DuplicateVariable(t *testing.T) {
	_, err := ParseString(context.Background(),
		"worker: env QUEUE=* QUEUE=urgent bundle exec rake resque:work")
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{
		`Line 1: duplicate variable "QUEUE" for process type "worker".`,
	}, verr.Messages)
}

func TestParseString_LineNumbers(t *testing.T) {
	input := "\n" +
		"web: bundle exec \\\n" +
		"  rails server\n" +
		"\n" +
		"web: env A=1 A=2 run\n"

	_, err := ParseString(context.Background(), input)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{
		`Line 5: duplicate process type "web": already appears on line 2.`,
		`Line 5: duplicate variable "A" for process type "web".`,
	}, verr.Messages)
}

func TestParseString_Malformed(t *testing.T) {
	_, err := ParseString(context.Background(), "web: run\n\nnot a process\nweb: again")
	require.ErrorIs(t, err, ErrMalformedLine)

	var mle *MalformedLineError
	require.ErrorAs(t, err, &mle)
	require.Equal(t, 3, mle.Line)
	require.Equal(t, "not a process", mle.Text)
	require.False(t, errors.Is(err, ErrValidation))
}

func TestParseString_CRLF(t *testing.T) {
	input := "web: bundle exec \\\r\n  rails server\r\nworker: env QUEUE=* rake\r\n"

	table, err := ParseString(context.Background(), input)
	require.NoError(t, err)

	web, _ := table.Get("web")
	require.Equal(t, "bundle exec rails server", web.Command)

	worker, _ := table.Get("worker")
	require.Equal(t, "rake", worker.Command)
	require.Equal(t, []Variable{{"QUEUE", "*"}}, worker.Env)

	// Without normalization the carriage return hides the continuation.
	_, err = ParseString(context.Background(), input, WithRawLineEndings())

	var mle *MalformedLineError
	require.ErrorAs(t, err, &mle)
	require.Equal(t, 2, mle.Line)
	require.Equal(t, "rails server", mle.Text)
}

func TestParseString_Logger(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"),
	)

	_, err := ParseString(context.Background(), heroku, WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Equal(t, 3, strings.Count(out, `"msg":"parsed line"`))
	require.Contains(t, out, `"msg":"parse complete"`)
	require.Contains(t, out, `"process_count":3`)
}

func TestParseReader(t *testing.T) {
	table, err := ParseReader(context.Background(), strings.NewReader(heroku))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
}

func TestParseReader_InvalidUTF8(t *testing.T) {
	data := []byte("web: run\nworker: \xffoops\n")

	_, err := ParseReader(context.Background(), bytes.NewReader(data))
	require.ErrorIs(t, err, ErrDecode)
	require.False(t, errors.Is(err, ErrMalformedLine))

	var e *Error
	require.ErrorAs(t, err, &e)
	require.Contains(t, e.Attrs(), slog.Int("offset", 17))
}

func TestParseReader_ReadError(t *testing.T) {
	boom := errors.New("boom")

	_, err := ParseReader(context.Background(), iotest.ErrReader(boom))
	require.ErrorIs(t, err, ErrReadInput)
	require.ErrorIs(t, err, boom)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Procfile")
	require.NoError(t, os.WriteFile(path, []byte(heroku), 0o600))

	table, err := ParseFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, []string{"web", "worker", "urgentworker"}, table.Types())
}

func TestParseFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Procfile")

	_, err := ParseFile(context.Background(), path)
	require.ErrorIs(t, err, ErrReadInput)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Procfile")
	require.NoError(t, os.WriteFile(path, []byte("web: a\nweb: b\n"), 0o600))

	_, err := ParseFile(context.Background(), path)
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseFile_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Procfile")
	require.NoError(t, os.WriteFile(path, []byte{'w', ':', ' ', 0xc3}, 0o600))

	_, err := ParseFile(context.Background(), path)
	require.ErrorIs(t, err, ErrDecode)

	var e *Error
	require.ErrorAs(t, err, &e)
	require.Contains(t, e.Attrs(), slog.String("path", path))
	require.Contains(t, e.Attrs(), slog.Int("offset", 3))
}

func TestInvalidUTF8(t *testing.T) {
	tests := []struct {
		data []byte
		want int
	}{
		{nil, -1},
		{[]byte("héllo"), -1},
		{[]byte{0xff}, 0},
		{[]byte("ab\xc3"), 2},
		{[]byte("é\xe2\x82"), 2},
	}

	for _, tt := range tests {
		if got := invalidUTF8(tt.data); got != tt.want {
			t.Errorf("invalidUTF8(%q) = %d, want %d", tt.data, got, tt.want)
		}
	}
}
