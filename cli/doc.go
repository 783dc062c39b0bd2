// Package cli contains the command line interface for procfile.
//
// # Usage
//
//	procfile [flags] [check] [source ...]
//	procfile fmt [native|json|yaml] [--indent N] [source]
//	procfile list [--where EXPR] [--plain] [source]
//	procfile show [--env] <type> [source]
//	procfile init [--force]
//	procfile version
//
// The source defaults to "Procfile" in the working directory; "-" reads
// standard input.
//
// # Configuration
//
// Flag defaults are read from the configuration directory
// ($XDG_CONFIG_HOME/procfile on Linux): config.json in kong's JSON layout,
// then config.yaml, a flat YAML mapping whose keys are flag names written
// with hyphens or underscores:
//
//	log-level: debug
//	log_format: json
//
// The init command writes config.yaml from the current flag values.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp layout name, Go layout, or none
//   - --[no-]log-caller: include caller information
//   - --[no-]log-pretty: colorized output
//
// # Profiling Options
//
//   - --pprof-mode: profiling mode (see [github.com/ardnew/procfile/profile.Modes])
//   - --pprof-dir: profile output directory (default: cache directory)
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
package cli
