// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured once at creation time with functional options and
// may be re-derived from an existing logger with [Logger.Wrap]:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithPretty(false))
//
//	logger.Info("parsed procfile", slog.Int("processes", 3))
//
// # Default Logger
//
// The package-level functions ([Debug], [Info], [Warn], [Error] and their
// Context variants) write through a default logger that the command line
// interface reconfigures with [Config] as flags are parsed. [Default] returns
// a snapshot of it for injection into library code.
//
// # Levels
//
// In addition to the four slog levels, [LevelTrace] sits below
// [LevelDebug] and is used for per-line parser diagnostics.
//
// # Formats
//
// [FormatJSON] (default) and [FormatText] select the slog handler. With
// [WithPretty] enabled, colorized human-oriented variants of both handlers are
// used instead.
//
// # Time Formatting
//
// [WithTimeLayout] accepts the named layouts of the [time] package
// ("RFC3339", "Kitchen", ...), a few short aliases ("ms", "us", "ns"), or a
// verbatim layout string. The layout "none" or an empty layout removes
// timestamps entirely.
package log
