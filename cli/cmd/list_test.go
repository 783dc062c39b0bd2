package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/procfile/lang"
)

func TestList(t *testing.T) {
	tests := []struct {
		name  string
		where string
		want  string
	}{
		{"all", "", "web\nworker\nurgentworker\n"},
		{"by name", `name endsWith "worker"`, "worker\nurgentworker\n"},
		{"by variable", `vars["FOO"] == "meh"`, "urgentworker\n"},
		{"none", `line > 10`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(heroku)

			l := &List{Where: tt.where, Plain: true, Input: Input{Source: "-"}}
			if err := l.Run(ctx); err != nil {
				t.Fatalf("List.Run() error: %v", err)
			}

			if out.String() != tt.want {
				t.Errorf("List.Run() output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestList_Styled(t *testing.T) {
	ctx, out := testContext(heroku)

	if err := (&List{Input: Input{Source: "-"}}).Run(ctx); err != nil {
		t.Fatalf("List.Run() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}

	for _, want := range []string{"web", "QUEUE", "urgent", "FOO", "meh", "resque:work"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestList_BadFilter(t *testing.T) {
	ctx, _ := testContext(heroku)

	err := (&List{Where: "name ==", Input: Input{Source: "-"}}).Run(ctx)
	if !errors.Is(err, lang.ErrFilterCompile) {
		t.Errorf("List.Run() error = %v, want ErrFilterCompile", err)
	}
}
