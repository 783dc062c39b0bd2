package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/procfile/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, so that the format applies to errors reported
// while kong is still parsing.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level (${enum})."             placeholder:"LEVEL"`
	Format     logFormat `default:"text"    enum:"${logFormatEnum}" help:"Set log format (${enum})."            placeholder:"FORMAT"`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp layout, or none."`
	Caller     bool      `default:"false"                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// start applies the fully parsed logger configuration, including values
// that came from configuration files.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags found in args before kong parses them, so that
// the logger is configured regardless of flag position. Boolean flags do not
// pass through encoding.TextUnmarshaler, so they are only seen here.
// Scanning stops at "--".
func (f *logConfig) scan(args []string) {
	const (
		logPrefix   = "--log-"
		noLogPrefix = "--no-log-"
	)

	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return
		}

		name, value, assigned := strings.Cut(args[i], "=")

		var negate bool

		switch {
		case strings.HasPrefix(name, noLogPrefix):
			name, negate = name[len(noLogPrefix):], true
		case strings.HasPrefix(name, logPrefix):
			name = name[len(logPrefix):]
		default:
			continue
		}

		switch name {
		case "level", "format", "time-layout":
			if negate {
				continue
			}

			// Non-boolean flag: consume the next arg as value if not assigned.
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				value = args[i+1]
				i++
			}

			f.setValue(name, value)

		case "caller", "pretty":
			v := true

			if assigned {
				b, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				v = b
			}

			f.setBool(name, v != negate)
		}
	}
}

func (f *logConfig) setValue(name, value string) {
	switch name {
	case "level":
		_ = f.Level.UnmarshalText([]byte(value))
	case "format":
		_ = f.Format.UnmarshalText([]byte(value))
	case "time-layout":
		f.TimeLayout = value
		log.Config(log.WithTimeLayout(value))
	}
}

func (f *logConfig) setBool(name string, v bool) {
	switch name {
	case "caller":
		f.Caller = v
		log.Config(log.WithCaller(v))
	case "pretty":
		f.Pretty = v
		log.Config(log.WithPretty(v))
	}
}
