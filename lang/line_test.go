package lang

import (
	"errors"
	"slices"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		typ     string
		command string
		env     []Variable
	}{
		{
			name:    "plain command",
			input:   "web: bundle exec rails server -p $PORT",
			typ:     "web",
			command: "bundle exec rails server -p $PORT",
		},
		{
			name:    "single variable",
			input:   "worker: env QUEUE=* bundle exec rake resque:work",
			typ:     "worker",
			command: "bundle exec rake resque:work",
			env:     []Variable{{"QUEUE", "*"}},
		},
		{
			name:    "several variables keep order",
			input:   "urgentworker: env QUEUE=urgent FOO=meh bundle exec rake resque:work",
			typ:     "urgentworker",
			command: "bundle exec rake resque:work",
			env:     []Variable{{"QUEUE", "urgent"}, {"FOO", "meh"}},
		},
		{
			name:    "type stops at first colon",
			input:   "clock: ruby -e 'puts 1:2'",
			typ:     "clock",
			command: "ruby -e 'puts 1:2'",
		},
		{
			name:    "no space after colon",
			input:   "web:run",
			typ:     "web",
			command: "run",
		},
		{
			name:    "surrounding whitespace is trimmed",
			input:   "  web : run  ",
			typ:     "web",
			command: "run",
		},
		{
			name:    "value containing equals sign",
			input:   "web: env OPTS=a=b run",
			typ:     "web",
			command: "run",
			env:     []Variable{{"OPTS", "a=b"}},
		},
		{
			name:    "tabs separate variables",
			input:   "web: env\tA=1\t\tB=2\trun",
			typ:     "web",
			command: "run",
			env:     []Variable{{"A", "1"}, {"B", "2"}},
		},
		{
			name:    "env without command is the command",
			input:   "web: env A=1",
			typ:     "web",
			command: "env A=1",
		},
		{
			name:    "bare env is the command",
			input:   "web: env",
			typ:     "web",
			command: "env",
		},
		{
			name:    "env keyword must be followed by whitespace",
			input:   "web: envA=1 run",
			typ:     "web",
			command: "envA=1 run",
		},
		{
			name:    "assignments in command are not variables",
			input:   "web: env CC=gcc make CFLAGS=-O2",
			typ:     "web",
			command: "make CFLAGS=-O2",
			env:     []Variable{{"CC", "gcc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parseLine(LogicalLine{Index: 6, Text: tt.input})
			if err != nil {
				t.Fatalf("parseLine(%q) error: %v", tt.input, err)
			}

			if p.Type != tt.typ {
				t.Errorf("Type = %q, want %q", p.Type, tt.typ)
			}

			if p.Command != tt.command {
				t.Errorf("Command = %q, want %q", p.Command, tt.command)
			}

			if !slices.Equal(p.Env, tt.env) {
				t.Errorf("Env = %v, want %v", p.Env, tt.env)
			}

			if p.Line != 7 {
				t.Errorf("Line = %d, want 7", p.Line)
			}
		})
	}
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no colon", "web rails server"},
		{"empty type", ": rails server"},
		{"empty command", "web:"},
		{"whitespace command", "web:    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLine(LogicalLine{Index: 2, Text: tt.input})
			if err == nil {
				t.Fatalf("parseLine(%q) succeeded, want error", tt.input)
			}

			if !errors.Is(err, ErrMalformedLine) {
				t.Errorf("error %v does not match ErrMalformedLine", err)
			}

			var mle *MalformedLineError
			if !errors.As(err, &mle) {
				t.Fatalf("error %T is not *MalformedLineError", err)
			}

			if mle.Line != 3 {
				t.Errorf("Line = %d, want 3", mle.Line)
			}
		})
	}
}

func TestParseEnv(t *testing.T) {
	tests := []struct {
		clause string
		want   []Variable
	}{
		{"", nil},
		{"   ", nil},
		{" A=1", []Variable{{"A", "1"}}},
		{" A=1  B=x=y", []Variable{{"A", "1"}, {"B", "x=y"}}},
	}

	for _, tt := range tests {
		if got := parseEnv(tt.clause); !slices.Equal(got, tt.want) {
			t.Errorf("parseEnv(%q) = %v, want %v", tt.clause, got, tt.want)
		}
	}
}
