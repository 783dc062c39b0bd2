package lang

import (
	"regexp"
	"strings"
)

// envKeyword introduces the optional environment clause.
const envKeyword = "env"

// procfileLine matches one logical line. RE2 honors the same leftmost-first
// preferences as a backtracking engine: the shortest process type before the
// first colon, as many NAME=VALUE tokens as can be followed by whitespace,
// and the rest of the line as the command.
var procfileLine = regexp.MustCompile(
	`^(?P<type>.+?):\s*` +
		`(?:` + envKeyword + `(?P<env>(?:\s+[^\s=]+=\S+?)+)\s+)?` +
		`(?P<command>.+)$`,
)

var (
	groupType    = procfileLine.SubexpIndex("type")
	groupEnv     = procfileLine.SubexpIndex("env")
	groupCommand = procfileLine.SubexpIndex("command")
)

// parseLine matches a logical line against the Procfile grammar.
func parseLine(l LogicalLine) (*Process, error) {
	text := strings.TrimSpace(l.Text)

	m := procfileLine.FindStringSubmatch(text)
	if m == nil {
		return nil, &MalformedLineError{Line: l.Number(), Text: text}
	}

	return &Process{
		Type:    strings.TrimSpace(m[groupType]),
		Command: m[groupCommand],
		Env:     parseEnv(m[groupEnv]),
		Line:    l.Number(),
	}, nil
}

// parseEnv splits a matched environment clause into variables, keeping
// declaration order. Each token is split on its first '='.
func parseEnv(clause string) []Variable {
	fields := strings.Fields(clause)
	if len(fields) == 0 {
		return nil
	}

	env := make([]Variable, 0, len(fields))

	for _, f := range fields {
		name, value, _ := strings.Cut(f, "=")
		env = append(env, Variable{Name: name, Value: value})
	}

	return env
}
