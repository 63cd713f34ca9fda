package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/mcncl/jsoncopy/internal/assembler"
	"github.com/mcncl/jsoncopy/internal/config"
	"github.com/mcncl/jsoncopy/internal/diff"
	"github.com/mcncl/jsoncopy/internal/errors"
	"github.com/mcncl/jsoncopy/internal/formatter"
	"github.com/mcncl/jsoncopy/internal/keypath"
	"github.com/mcncl/jsoncopy/internal/logging"
)

// CLI defines the command-line interface
var CLI struct {
	Source    string   `arg:"" help:"Path to source JSON file." type:"path"`
	Target    string   `arg:"" help:"Path to target JSON file. Created if it does not exist." type:"path"`
	ExtraKeys []string `arg:"" optional:"" name:"key" help:"More keys to copy, same as --keys."`

	Keys    []string         `help:"Keys to copy in dotted form (foo.bar.test). Repeat the flag or list keys after it. Without keys the whole source is copied." short:"k" sep:"none"`
	All     bool             `help:"Copy the whole source, ignoring keys from the config file."`
	Force   bool             `help:"Overwrite existing values in the target." short:"f" xor:"force"`
	NoForce bool             `help:"Keep existing values in the target, even if the config file sets force." xor:"force"`
	DryRun  bool             `help:"Print the merged document instead of writing the target file." short:"n"`
	Diff    bool             `help:"Show how the target changes." short:"d"`
	Config  string           `help:"Path to a config file. By default .jsoncopy.yml is searched for from the working directory upwards." short:"c" type:"path"`
	Indent  int              `help:"Indentation width in spaces, 0 for compact output. Defaults to the config value (4)." default:"-1"`
	Color   string           `help:"Colour output: auto, always or never."`
	Debug   bool             `help:"Enable debug logging."`
	Verbose bool             `help:"Log progress information." short:"v"`
	Version kong.VersionFlag `help:"Show version information." short:"V"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Logger *logrus.Logger
	Stdout io.Writer
	// Color enables coloured output on Stdout
	Color bool
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsoncopy"),
		kong.Description("Copy keys from one JSON file into another, merging nested objects"),
		kong.UsageOnError(),
		kong.Vars{"version": "jsoncopy version " + Version},
	)

	_, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cfg, err := config.LoadConfigWithCLI(CLI.Config, cliOptions())
	if err != nil {
		fail(errors.NewConfigError(err.Error(), err), false)
	}

	stderrColor := cfg.UseColor(os.Stderr)
	logger := logging.New(os.Stderr, logging.Level(cfg.Dev.Debug, cfg.Dev.Verbose), stderrColor)

	err = run(&Context{
		Config: cfg,
		Logger: logger,
		Stdout: os.Stdout,
		Color:  cfg.UseColor(os.Stdout),
	})
	if err != nil {
		logger.WithError(err).Debug("run failed")
		fail(err, stderrColor)
	}
}

func cliOptions() config.CLIOptions {
	return config.CLIOptions{
		Force:   CLI.Force,
		NoForce: CLI.NoForce,
		Keys:    append(append([]string{}, CLI.Keys...), CLI.ExtraKeys...),
		All:     CLI.All,
		Indent:  CLI.Indent,
		Color:   CLI.Color,
		Debug:   CLI.Debug,
		Verbose: CLI.Verbose,
	}
}

func fail(err error, colors bool) {
	red := color.New(color.FgRed)
	if colors {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	fmt.Fprintln(os.Stderr, red.Sprint(errors.UserFriendlyError(err)))
	os.Exit(1)
}

// run loads both documents, merges the requested keys and writes the target.
// Nothing is written unless every key resolved.
func run(ctx *Context) error {
	cfg := ctx.Config
	logger := ctx.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	// 1. Load documents
	source, err := assembler.LoadSource(CLI.Source)
	if err != nil {
		return err
	}
	target, loaded := assembler.LoadTarget(CLI.Target, logger)

	// 2. Extract and merge
	paths := keypath.ParseAll(cfg.Keys)
	result, err := assembler.NewAssembler(cfg.Force, logger).Run(source, target, paths)
	if err != nil {
		return err
	}

	// 3. Render
	f := &formatter.Formatter{Indent: cfg.Indent(), EscapeHTML: cfg.Output.EscapeHTML}
	out, err := f.Format(result.Document)
	if err != nil {
		return errors.NewOutputError("failed to format merged document", err)
	}

	var before []byte
	if loaded {
		if before, err = f.Format(target); err != nil {
			return errors.NewOutputError("failed to format target document", err)
		}
	}
	changed, err := diff.Changed(orEmptyObject(before), out)
	if err != nil {
		return errors.NewOutputError("failed to compare documents", err)
	}
	changed = changed || !loaded

	if CLI.Diff {
		fmt.Fprint(ctx.Stdout, diff.NewRenderer(ctx.Color).Lines(string(before), string(out)))
	}

	// 4. Output
	if CLI.DryRun {
		if !CLI.Diff {
			_, err = ctx.Stdout.Write(out)
		}
		if err != nil {
			return errors.NewOutputError("failed to write to stdout", err)
		}
		return nil
	}

	if changed {
		if err := f.WriteFile(CLI.Target, result.Document); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Target), err)
		}
		logger.WithField("file", CLI.Target).Info("target written")
	} else {
		logger.WithField("file", CLI.Target).Info("target already up to date")
	}

	green := color.New(color.FgGreen)
	if ctx.Color {
		green.EnableColor()
	} else {
		green.DisableColor()
	}
	if changed {
		fmt.Fprintln(ctx.Stdout, green.Sprint("Done."))
	} else {
		fmt.Fprintln(ctx.Stdout, green.Sprint("Done. (no changes)"))
	}
	return nil
}

func orEmptyObject(data []byte) []byte {
	if len(data) == 0 {
		return []byte("{}")
	}
	return data
}
