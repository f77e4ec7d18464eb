package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/logrusorgru/aurora"
	"github.com/scott-cotton/cli"

	"github.com/anchore/go-logger"
	logrusAdapter "github.com/anchore/go-logger/adapter/logrus"
	"github.com/anchore/newtype"
	"github.com/anchore/newtype/pkg/codegen"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "newtype").
		WithSynopsis("newtype [opts] [dir...]").
		WithDescription("Generate tagged wrapper methods for single-field structs annotated with //newtype:tagged.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Main.Parse(cc, expandAssignments(cfg.Main, args))
			if err != nil {
				cfg.Main.Usage(cc, err)
				return cli.ExitCodeErr(1)
			}
			if cfg.Help {
				cfg.Main.Usage(cc, nil)
				return nil
			}
			ctx := cc.Go
			if ctx == nil {
				ctx = context.Background()
			}
			return run(ctx, cfg, cc.Out, args)
		})
}

// expandAssignments rewrites -name=value as -name value (or -no-name for a false bool) so both spellings parse
func expandAssignments(cmd *cli.Command, args []string) []string {
	opts := cmd.AllOpts()
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		name, value, ok := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		opt := opts[name]
		if !strings.HasPrefix(arg, "-") || !ok || opt == nil {
			out = append(out, arg)
			continue
		}
		if opt.Type != cli.Bool {
			out = append(out, "-"+name, value)
			continue
		}
		b, err := strconv.ParseBool(value)
		switch {
		case err != nil:
			out = append(out, arg)
		case b:
			out = append(out, "-"+name)
		default:
			out = append(out, "-no-"+name)
		}
	}
	return out
}

type Config struct {
	Dir          string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive    bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	Include      string `cli:"name=include desc='comma separated doublestar patterns of files to parse, relative to the directory'"`
	Types        string `cli:"name=types desc='comma separated wildcard patterns of type names to generate'"`
	Adapters     string `cli:"name=adapters desc='adapter selection for directives without one, e.g. +yaml,-sql'"`
	Check        bool   `cli:"name=check desc='report out of date files instead of writing them'"`
	ConfigFile   string `cli:"name=config desc='config file (default: $XDG_CONFIG_HOME/newtype/config.toml, then .newtype.toml in the directory)'"`
	Verbose      bool   `cli:"name=v desc='verbose logging'"`
	ListAdapters bool   `cli:"name=list-adapters desc='list the adapters and the tags selecting them'"`
	Help         bool   `cli:"name=h aliases=help desc='show this help'"`

	Main *cli.Command
}

func run(ctx context.Context, cfg *Config, out io.Writer, args []string) error {
	if cfg.Dir != "" && len(args) > 0 {
		return fmt.Errorf("%w: cannot combine -dir with positional directories", cli.ErrUsage)
	}

	if err := setupLogging(cfg.Verbose); err != nil {
		return err
	}

	if cfg.ListAdapters {
		listAdapters(out)
		return nil
	}

	dirs := args
	if cfg.Dir != "" {
		dirs = []string{cfg.Dir}
	}
	if len(dirs) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		dirs = []string{wd}
	}

	var errs error
	for _, dir := range dirs {
		if err := generateDir(ctx, cfg, out, dir); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

func generateDir(ctx context.Context, cfg *Config, out io.Writer, dir string) error {
	fileCfg, err := loadFileConfig(cfg.ConfigFile, dir)
	if err != nil {
		return err
	}

	files, err := newtype.Generate(ctx, dir, fileCfg.options(cfg)...)
	report(out, files)
	if err != nil {
		return explain(out, err)
	}
	return nil
}

func report(out io.Writer, files []codegen.File) {
	for _, f := range files {
		switch {
		case f.Removed:
			fmt.Fprintf(out, "%s %s\n", aurora.Yellow("removed"), f.Path)
		case f.Stale:
			fmt.Fprintf(out, "%s %s\n%s", aurora.Red("stale"), f.Path, f.Diff)
		}
	}
}

// explain prints each rejected declaration and returns a summary error
func explain(out io.Writer, err error) error {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return err
	}

	rejected := 0
	var other error
	for _, e := range merr.Errors {
		var rej *codegen.RejectionError
		if errors.As(e, &rej) {
			fmt.Fprintln(out, aurora.Red(rej.Error()))
			rejected++
			continue
		}
		other = multierror.Append(other, e)
	}

	if rejected > 0 {
		other = multierror.Append(other, fmt.Errorf("%d declarations rejected", rejected))
	}
	return other
}

func listAdapters(out io.Writer) {
	for _, a := range newtype.Adapters() {
		constraint := a.Constraint
		if constraint == "" {
			constraint = "always built"
		}
		fmt.Fprintf(out, "%-8s %s (%s)\n", aurora.Green(a.Name), strings.Join(a.Tags, ","), constraint)
	}
}

func setupLogging(verbose bool) error {
	level := logger.WarnLevel
	if verbose {
		level = logger.DebugLevel
	}

	l, err := logrusAdapter.New(logrusAdapter.Config{
		EnableConsole: true,
		Level:         level,
	})
	if err != nil {
		return fmt.Errorf("unable to setup logging: %w", err)
	}
	newtype.SetLogger(l)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
