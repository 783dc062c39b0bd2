package lang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	table, err := ParseString(context.Background(), heroku)
	require.NoError(t, err)

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"type prefix", `name startsWith "w"`, []string{"web", "worker"}},
		{"variable present", `"QUEUE" in vars`, []string{"worker", "urgentworker"}},
		{"variable value", `"FOO" in vars && vars["FOO"] == "meh"`, []string{"urgentworker"}},
		{"command", `command contains "rails"`, []string{"web"}},
		{"line", `line > 1`, []string{"worker", "urgentworker"}},
		{"variable count", `len(vars) == 0`, []string{"web"}},
		{"nothing", `false`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CompileFilter(tt.source)
			require.NoError(t, err)
			require.Equal(t, tt.source, f.String())

			var got []string

			for p, err := range table.Select(f) {
				require.NoError(t, err)

				got = append(got, p.Type)
			}

			require.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Nil(t *testing.T) {
	table, err := ParseString(context.Background(), heroku)
	require.NoError(t, err)

	var f *Filter

	require.Empty(t, f.String())

	n := 0

	for p, err := range table.Select(f) {
		require.NoError(t, err)
		require.NotNil(t, p)

		n++
	}

	require.Equal(t, table.Len(), n)
}

func TestCompileFilter_Errors(t *testing.T) {
	for _, source := range []string{
		`name ==`,
		`line + 1`,
		`unknown == 1`,
	} {
		_, err := CompileFilter(source)
		require.ErrorIs(t, err, ErrFilterCompile, source)
	}
}

func TestFilter_EvaluateError(t *testing.T) {
	table, err := ParseString(context.Background(), "web: run\nworker: 42\n")
	require.NoError(t, err)

	f, err := CompileFilter(`int(command) > 0`)
	require.NoError(t, err)

	var (
		matched []string
		errs    int
	)

	for p, err := range table.Select(f) {
		if err != nil {
			require.ErrorIs(t, err, ErrFilterEvaluate)

			errs++

			continue
		}

		matched = append(matched, p.Type)
	}

	require.Equal(t, 1, errs)
	require.Equal(t, []string{"worker"}, matched)
}
