package lang

import (
	"iter"
	"slices"
	"strings"

	"github.com/ardnew/procfile/log"
)

// Variable is a single NAME=VALUE environment override.
type Variable struct {
	Name  string
	Value string
}

// String returns the variable in NAME=VALUE form.
func (v Variable) String() string { return v.Name + "=" + v.Value }

// Process is one process type declared in a Procfile.
type Process struct {
	// Type is the process type name, e.g. "web".
	Type string
	// Command is the shell command, verbatim.
	Command string
	// Env holds the environment overrides in declaration order.
	Env []Variable
	// Line is the 1-based line number where the declaration starts.
	Line int
}

// Environ returns the environment overrides as NAME=VALUE strings, in the
// form accepted by [os/exec.Cmd.Env].
func (p *Process) Environ() []string {
	env := make([]string, len(p.Env))
	for i, v := range p.Env {
		env[i] = v.String()
	}

	return env
}

// Lookup returns the value of the named environment override.
func (p *Process) Lookup(name string) (string, bool) {
	i := slices.IndexFunc(p.Env, func(v Variable) bool { return v.Name == name })
	if i < 0 {
		return "", false
	}

	return p.Env[i].Value, true
}

// String returns the process as a canonical Procfile line.
func (p *Process) String() string {
	var sb strings.Builder

	sb.WriteString(p.Type)
	sb.WriteString(": ")

	if len(p.Env) > 0 {
		sb.WriteString(envKeyword)

		for _, v := range p.Env {
			sb.WriteByte(' ')
			sb.WriteString(v.String())
		}

		sb.WriteByte(' ')
	}

	sb.WriteString(p.Command)

	// A command ending in the marker would continue onto the next line.
	if strings.HasSuffix(p.Command, string(continuation)) {
		sb.WriteByte(' ')
	}

	return sb.String()
}

// Table is the result of a successful parse: every process type declared in
// a Procfile, keyed by type. Types are unique, and variable names are unique
// within each process.
type Table struct {
	// Processes are kept in declaration order.
	Processes []*Process

	index map[string]*Process
}

// newTable builds a Table from validated processes.
func newTable(procs []*Process) *Table {
	t := &Table{
		Processes: procs,
		index:     make(map[string]*Process, len(procs)),
	}

	for _, p := range procs {
		t.index[p.Type] = p
	}

	return t
}

// Len returns the number of process types.
func (t *Table) Len() int { return len(t.Processes) }

// Get returns the process with the given type.
func (t *Table) Get(name string) (*Process, bool) {
	if t.index == nil {
		// Tables built by hand have no index.
		i := slices.IndexFunc(t.Processes, func(p *Process) bool { return p.Type == name })
		if i < 0 {
			return nil, false
		}

		return t.Processes[i], true
	}

	p, ok := t.index[name]

	return p, ok
}

// Types returns the process type names in declaration order.
func (t *Table) Types() []string {
	types := make([]string, len(t.Processes))
	for i, p := range t.Processes {
		types[i] = p.Type
	}

	return types
}

// All returns an iterator over (type, process) pairs in declaration order.
func (t *Table) All() iter.Seq2[string, *Process] {
	return func(yield func(string, *Process) bool) {
		for _, p := range t.Processes {
			if !yield(p.Type, p) {
				return
			}
		}
	}
}

// Option configures a parse.
type Option func(*options)

type options struct {
	logger      log.Logger
	rawEndings  bool
	description string
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger that receives parser diagnostics.
// The zero [log.Logger] (the default) discards them.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRawLineEndings disables CRLF normalization, so a carriage return
// before each line feed becomes part of the line text.
func WithRawLineEndings() Option {
	return func(o *options) { o.rawEndings = true }
}

// withSource names the input in log records.
func withSource(name string) Option {
	return func(o *options) { o.description = name }
}
