package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/coregx/rematch"
	"github.com/peterbourgon/ff/v3/ffcli"
)

// errFound stops test reading further inputs once one matches.
var errFound = errors.New("found")

func (a *app) testCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:       "test",
		ShortUsage: "rematch test <pattern> [file ...]",
		ShortHelp:  "Exit 0 if any input matches, 1 otherwise",
		FlagSet:    a.newFlagSet("test"),
		Exec: func(_ context.Context, args []string) error {
			re, files, err := a.compile(args)
			if err != nil {
				return err
			}
			err = a.inputs(files, func(in input) error {
				if re.MatchString(in.text) {
					a.log.Debugw("matched input", "input", in.name)
					return errFound
				}
				return nil
			})
			switch {
			case errors.Is(err, errFound):
				return nil
			case err != nil:
				return err
			default:
				return errNoMatch
			}
		},
	}
}

func (a *app) findCommand() *ffcli.Command {
	fs := a.newFlagSet("find")
	limit := fs.Int("n", 0, "stop after this many matches per input (0 means no limit)")

	return &ffcli.Command{
		Name:       "find",
		ShortUsage: "rematch find [-n N] <pattern> [file ...]",
		ShortHelp:  "Print every match with its span and groups",
		LongHelp: `Each match is printed on one line as

    start-end<TAB>text[<TAB>$n=value ...]

with byte offsets into the input. Groups that did not take part in the
match are left out. With more than one file, lines are prefixed by the
file name.`,
		FlagSet: fs,
		Exec: func(_ context.Context, args []string) error {
			re, files, err := a.compile(args)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(a.stdout)
			err = a.inputs(files, func(in input) error {
				n := 0
				it := re.Iter(in.text)
				for it.Next() {
					if len(files) > 1 {
						fmt.Fprintf(w, "%s:", in.name)
					}
					writeMatch(w, it.Match())
					n++
					if *limit > 0 && n >= *limit {
						break
					}
				}
				a.log.Debugw("scanned input", "input", in.name, "bytes", len(in.text), "matches", n)
				return nil
			})
			if ferr := w.Flush(); err == nil {
				err = ferr
			}
			return err
		},
	}
}

func writeMatch(w *bufio.Writer, m *rematch.Match) {
	s := m.Span()
	fmt.Fprintf(w, "%d-%d\t%s", s.Start, s.End, m.String())
	for i := 1; i <= m.NumGroups(); i++ {
		if v, ok := m.GroupString(i); ok {
			fmt.Fprintf(w, "\t$%d=%s", i, v)
		}
	}
	w.WriteByte('\n')
}

func (a *app) countCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:       "count",
		ShortUsage: "rematch count <pattern> [file ...]",
		ShortHelp:  "Print the number of non-overlapping matches",
		FlagSet:    a.newFlagSet("count"),
		Exec: func(_ context.Context, args []string) error {
			re, files, err := a.compile(args)
			if err != nil {
				return err
			}
			return a.inputs(files, func(in input) error {
				n := re.Count(in.text)
				a.log.Debugw("scanned input", "input", in.name, "bytes", len(in.text), "matches", n)
				if len(files) > 1 {
					_, err := fmt.Fprintf(a.stdout, "%s:%d\n", in.name, n)
					return err
				}
				_, err := fmt.Fprintln(a.stdout, strconv.Itoa(n))
				return err
			})
		},
	}
}

func (a *app) replaceCommand() *ffcli.Command {
	fs := a.newFlagSet("replace")
	with := fs.String("with", "", "replacement template; $n, ${n}, $name and ${name} refer to groups, $$ is a literal $")
	literal := fs.Bool("literal", false, "insert the replacement as is, without expanding $")

	return &ffcli.Command{
		Name:       "replace",
		ShortUsage: "rematch replace -with TEMPLATE [-literal] <pattern> [file ...]",
		ShortHelp:  "Write the input with every match replaced",
		FlagSet:    fs,
		Exec: func(_ context.Context, args []string) error {
			re, files, err := a.compile(args)
			if err != nil {
				return err
			}
			tmpl := re.Template(*with)
			return a.inputs(files, func(in input) error {
				var out string
				if *literal {
					out = re.ReplaceAllLiteral(in.text, *with)
				} else {
					out = re.ReplaceAllTemplate(in.text, tmpl)
				}
				_, err := fmt.Fprint(a.stdout, out)
				return err
			})
		},
	}
}

func (a *app) splitCommand() *ffcli.Command {
	fs := a.newFlagSet("split")
	limit := fs.Int("n", -1, "at most this many fields; the last one is the unsplit remainder")

	return &ffcli.Command{
		Name:       "split",
		ShortUsage: "rematch split [-n N] <pattern> [file ...]",
		ShortHelp:  "Print the text between matches, one field per line",
		FlagSet:    fs,
		Exec: func(_ context.Context, args []string) error {
			re, files, err := a.compile(args)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(a.stdout)
			err = a.inputs(files, func(in input) error {
				for _, field := range re.Split(in.text, *limit) {
					w.WriteString(field)
					w.WriteByte('\n')
				}
				return nil
			})
			if ferr := w.Flush(); err == nil {
				err = ferr
			}
			return err
		},
	}
}

func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("rematch "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}
