// Package lang parses Procfiles: line-oriented documents that map named
// process types to a shell command and optional environment overrides.
//
// # Grammar
//
// Each logical line has the form:
//
//	<type> ':' WS* ['env' (WS+ <name>'='<value>)+ WS+] <command>
//
// The process type is everything before the first colon. The optional
// environment clause starts with the literal word "env" followed by one or
// more whitespace-separated NAME=VALUE tokens; a value may itself contain
// '='. The command is the remainder of the line.
//
//	web: bundle exec rails server -p $PORT
//	worker: env QUEUE=* bundle exec rake resque:work
//	urgentworker: env QUEUE=urgent FOO=meh bundle exec rake resque:work
//
// A raw line whose final character is a backslash continues onto the next
// line. Leading whitespace of the line that closes a continuation is dropped:
//
//	web: bundle exec \
//	     rails server
//
// Blank lines are ignored. CRLF line endings are normalized to LF unless
// [WithRawLineEndings] is given.
//
// # Parsing
//
// Parsing is all-or-nothing. [ParseString], [ParseReader] and [ParseFile]
// return either a complete [Table] or an error:
//
//   - [*MalformedLineError] when a line does not match the grammar. The parse
//     stops at the first such line.
//   - [*ValidationError] listing every duplicate process type and every
//     duplicate variable within a single process, in that order.
//   - [ErrDecode] when a reader yields bytes that are not valid UTF-8.
//
// Duplicate messages use 1-based line numbers, where a continued line is
// reported at its first raw line:
//
//	Line 2: duplicate process type "web": already appears on line 1.
//	Line 3: duplicate variable "QUEUE" for process type "worker".
//
// # Output
//
// A [Table] can be written back as a canonical Procfile ([Table.Format]),
// as JSON ([Table.FormatJSON]) or as YAML ([Table.FormatYAML]). Re-parsing
// the canonical form yields an equivalent table.
//
// # Queries
//
// [CompileFilter] compiles an expr-lang expression evaluated against each
// process, with the variables name, command, vars and line in scope:
//
//	f, _ := lang.CompileFilter(`name startsWith "worker" && "QUEUE" in vars`)
//	for p, err := range table.Select(f) { ... }
//
// [Table.Suggest] returns process types resembling a misspelled name.
package lang
