// Command rematch searches, counts, replaces and splits text with a pattern
// compiled by one of the rematch engines.
//
// Usage:
//
//	rematch [flags] <subcommand> [subcommand flags] <pattern> [file ...]
//
// Input is read from the named files, or from stdin when none is given.
// Every global flag can also be set through a REMATCH_ environment variable,
// for example REMATCH_ENGINE=re2.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/rematch"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"go.uber.org/zap"
)

// errNoMatch makes the test subcommand exit with status 1.
var errNoMatch = errors.New("no match")

type globalFlags struct {
	engine     string
	ignoreCase bool
	multiline  bool
	dotAll     bool
	extended   bool
	verbose    bool
}

// app carries the streams and state shared by every subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flags globalFlags
	log   *zap.SugaredLogger
}

func main() {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(a.run(context.Background(), os.Args[1:]))
}

// run executes the command line and returns the process exit status:
// 0 on success, 1 when test finds no match, 2 on any error.
func (a *app) run(ctx context.Context, args []string) int {
	root := a.rootCommand()
	if err := root.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		a.printError(err)
		return 2
	}

	log, err := newLogger(a.flags.verbose)
	if err != nil {
		a.printError(err)
		return 2
	}
	defer log.Sync()
	a.log = log.Sugar()

	err = root.Run(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch):
		return 1
	case errors.Is(err, flag.ErrHelp):
		fmt.Fprintln(a.stderr, ffcli.DefaultUsageFunc(root))
		return 2
	default:
		a.printError(err)
		return 2
	}
}

// printError writes err to stderr with a single "rematch: " prefix.
func (a *app) printError(err error) {
	msg := err.Error()
	if !strings.HasPrefix(msg, "rematch: ") {
		msg = "rematch: " + msg
	}
	fmt.Fprintln(a.stderr, msg)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func (a *app) rootCommand() *ffcli.Command {
	fs := flag.NewFlagSet("rematch", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVar(&a.flags.engine, "engine", rematch.Backtrack.String(), "delegate engine: backtrack, coregex, re2 or literal")
	fs.BoolVar(&a.flags.ignoreCase, "i", false, "match case-insensitively")
	fs.BoolVar(&a.flags.multiline, "m", false, "^ and $ match at line boundaries")
	fs.BoolVar(&a.flags.dotAll, "s", false, ". matches newline")
	fs.BoolVar(&a.flags.extended, "x", false, "ignore pattern whitespace and allow # comments (backtrack only)")
	fs.BoolVar(&a.flags.verbose, "v", false, "log compile and scan details to stderr")

	return &ffcli.Command{
		Name:       "rematch",
		ShortUsage: "rematch [flags] <subcommand> [subcommand flags] <pattern> [file ...]",
		ShortHelp:  "Structured regular expression matching from the command line.",
		LongHelp: strings.TrimSpace(`
Input is read from the named files, or from stdin when no file is given.
Each file is matched as one text, so patterns may span lines.

Global flags may also be set as REMATCH_<FLAG> environment variables.
`),
		FlagSet: fs,
		Options: []ff.Option{ff.WithEnvVarPrefix("REMATCH")},
		Subcommands: []*ffcli.Command{
			a.testCommand(),
			a.findCommand(),
			a.countCommand(),
			a.replaceCommand(),
			a.splitCommand(),
		},
		Exec: func(context.Context, []string) error { return flag.ErrHelp },
	}
}

// config builds the rematch configuration from the global flags.
func (a *app) config() (rematch.Config, error) {
	config := rematch.DefaultConfig()
	engine, err := rematch.ParseEngine(a.flags.engine)
	if err != nil {
		return config, err
	}
	config.Engine = engine
	if a.flags.ignoreCase {
		config.Options |= rematch.IgnoreCase
	}
	if a.flags.multiline {
		config.Options |= rematch.Multiline
	}
	if a.flags.dotAll {
		config.Options |= rematch.DotAll
	}
	if a.flags.extended {
		config.Options |= rematch.IgnoreWhitespace
	}
	return config, nil
}

// compile splits args into the pattern and the input files and compiles the
// pattern.
func (a *app) compile(args []string) (*rematch.Regex, []string, error) {
	if len(args) == 0 {
		return nil, nil, errors.New("missing pattern")
	}
	config, err := a.config()
	if err != nil {
		return nil, nil, err
	}
	re, err := rematch.CompileWithConfig(args[0], config)
	if err != nil {
		return nil, nil, err
	}
	a.log.Debugw("compiled pattern",
		"pattern", re.String(),
		"engine", config.Engine.String(),
		"options", config.Options.String(),
		"groups", re.NumGroups(),
	)
	return re, args[1:], nil
}

// input is one text to match, with the name it is reported under.
type input struct {
	name string
	text string
}

// inputs reads every file in turn, or stdin when there is none.
func (a *app) inputs(files []string, fn func(input) error) error {
	if len(files) == 0 {
		b, err := io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return fn(input{name: "-", text: string(b)})
	}
	for _, name := range files {
		b, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		if err := fn(input{name: name, text: string(b)}); err != nil {
			return err
		}
	}
	return nil
}
