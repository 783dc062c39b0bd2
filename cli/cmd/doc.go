// Package cmd implements the procfile subcommands.
//
// Every command reads a single Procfile (or standard input when the source is
// "-") through [lang.ParseFile] or [lang.ParseReader] and writes its results
// to the writer installed with [WithOutput], which defaults to os.Stdout.
//
//	procfile check Procfile other/Procfile
//	procfile fmt json --indent 2 Procfile
//	procfile list --where 'name startsWith "worker"'
//	procfile show web
//	procfile show --env worker
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file written by [Init].
	ConfigIdentifier = "config"
)
