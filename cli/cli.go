package cli

import (
	"context"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/procfile/cli/cmd"
	"github.com/ardnew/procfile/pkg"
)

// CLI is the top-level command-line interface for procfile.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Check   cmd.Check   `cmd:"" default:"withargs" help:"Validate Procfiles (default)."`
	Fmt     cmd.Fmt     `cmd:""                    help:"Reformat a Procfile as Procfile, JSON or YAML."`
	List    cmd.List    `cmd:""                    help:"List process types."`
	Show    cmd.Show    `cmd:""                    help:"Show the command or environment of a process type."`
	Init    cmd.Init    `cmd:""                    help:"Write current flag values to the configuration file."`
	Version cmd.Version `cmd:""                    help:"Print the version."`
}

// Run executes the procfile CLI with the given context and arguments.
// The exit function is called with the appropriate exit code when kong
// terminates early, for example after printing help.
//
// Command output goes to [cmd.Output] of ctx.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath + ".yaml",
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(cmd.Output(ctx), os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(ctx), configFilePath+".yaml"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Apply values that came from configuration files or that kong parsed
	// without going through encoding.TextUnmarshaler.
	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is set.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
