package lang

import (
	"iter"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// filterEnv is the environment a filter expression is evaluated in.
type filterEnv struct {
	Name    string            `expr:"name"`
	Command string            `expr:"command"`
	Vars    map[string]string `expr:"vars"`
	Line    int               `expr:"line"`
}

func makeFilterEnv(p *Process) filterEnv {
	vars := make(map[string]string, len(p.Env))
	for _, v := range p.Env {
		vars[v.Name] = v.Value
	}

	return filterEnv{
		Name:    p.Type,
		Command: p.Command,
		Vars:    vars,
		Line:    p.Line,
	}
}

// Filter is a compiled boolean expression over a [Process].
// A nil *Filter matches every process.
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles an expr-lang expression that must evaluate to a
// boolean. In scope are name (the process type), command, line, and vars
// (a map of variable name to value).
func CompileFilter(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrFilterCompile.Wrap(err).With(slog.String("filter", source))
	}

	return &Filter{source: source, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}

	return f.source
}

// Match reports whether p satisfies the filter.
func (f *Filter) Match(p *Process) (bool, error) {
	if f == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, makeFilterEnv(p))
	if err != nil {
		return false, ErrFilterEvaluate.Wrap(err).With(
			slog.String("filter", f.source),
			slog.String("type", p.Type),
		)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Select returns an iterator over the processes matching f, in declaration
// order. Evaluation errors are yielded with a nil process and do not stop
// iteration.
func (t *Table) Select(f *Filter) iter.Seq2[*Process, error] {
	return func(yield func(*Process, error) bool) {
		for _, p := range t.Processes {
			ok, err := f.Match(p)

			switch {
			case err != nil:
				if !yield(nil, err) {
					return
				}

			case ok:
				if !yield(p, nil) {
					return
				}
			}
		}
	}
}
