// Command gramsh is a thin reference binary that wires the grammar engine
// together: it loads a grammar file and, optionally, a help file and a YAML
// config, then reads lines from stdin, validates each against the grammar,
// and prints either the match result or a two-line caret error. It stands
// in for the line editor's simplest possible use; the real line editor,
// history and execution layers are out of scope.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"src.gramsh.sh/pkg/argv"
	"src.gramsh.sh/pkg/config"
	"src.gramsh.sh/pkg/datatype"
	"src.gramsh.sh/pkg/gram"
	"src.gramsh.sh/pkg/gramsyntax"
	"src.gramsh.sh/pkg/help"
	"src.gramsh.sh/pkg/match"
	"src.gramsh.sh/pkg/strutil"
	"src.gramsh.sh/pkg/term"
)

// Flags keeps command-line flags, in the shape of pkg/prog's own Flags
// struct: a plain data holder populated by a *flag.FlagSet.
type Flags struct {
	Config  string
	Grammar string
	Help    string
	Syntax  bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("gramsh", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // error and usage are printed explicitly

	fs.StringVar(&f.Config, "config", "", "path to a YAML config file")
	fs.StringVar(&f.Grammar, "grammar", "", "path to a grammar DSL file")
	fs.StringVar(&f.Help, "help", "", "path to a help source file")
	fs.BoolVar(&f.Syntax, "syntax", false, "print the loaded grammar, one alternative per line, and exit")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: gramsh [flags]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs gramsh against fds, returning the
// process exit status.
func Run(fds [3]*os.File, args []string) int {
	f := &Flags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			usage(fds[1], fs)
			return 0
		}
		fmt.Fprintln(fds[2], err)
		usage(fds[2], fs)
		return 2
	}

	cfg := config.Default()
	if f.Config != "" {
		loaded, err := config.Load(f.Config)
		if err != nil {
			fmt.Fprintln(fds[2], err)
			return 2
		}
		cfg = loaded
	}
	if f.Grammar != "" {
		cfg.GrammarFile = f.Grammar
	}
	if f.Help != "" {
		cfg.HelpFile = f.Help
	}
	if cfg.GrammarFile == "" {
		fmt.Fprintln(fds[2], "gramsh: no grammar file given (-grammar or config's grammar_file)")
		usage(fds[2], fs)
		return 2
	}

	pool := gram.NewPool()
	defer pool.Teardown()

	registry := datatype.NewRegistry()
	parser := gramsyntax.NewParser(pool, registry)

	grammarSrc, err := os.Open(cfg.GrammarFile)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	grammar, err := gramsyntax.ParseFileCollecting(parser, cfg.GrammarFile, grammarSrc)
	grammarSrc.Close()
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	defer grammar.Release()

	if f.Syntax {
		fmt.Fprint(fds[1], strutil.JoinLines(gram.Lines(grammar)))
		return 0
	}

	var binder *help.Binder
	if cfg.HelpFile != "" {
		helpSrc, err := os.Open(cfg.HelpFile)
		if err != nil {
			fmt.Fprintln(fds[2], err)
			return 2
		}
		binder = help.NewBinder(pool)
		err = help.ParseFile(binder, helpSrc)
		helpSrc.Close()
		if err != nil {
			fmt.Fprintln(fds[2], err)
			return 2
		}
	}

	colorize := shouldColorize(cfg.Color, fds[1])
	runLoop(fds, grammar, binder, cfg.Prompt, colorize)
	return 0
}

func shouldColorize(c config.Color, out *os.File) bool {
	switch c {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(out.Fd())
	}
}

func runLoop(fds [3]*os.File, grammar gram.Node, binder *help.Binder, prompt string, colorize bool) {
	in := bufio.NewScanner(fds[0])
	for {
		fmt.Fprint(fds[1], prompt)
		if !in.Scan() {
			return
		}
		line := in.Text()
		if line == "" {
			continue
		}
		words, err := argv.Tokenize(line)
		if err != nil {
			fmt.Fprintln(fds[2], err)
			continue
		}
		if len(words) == 0 {
			continue
		}
		if binder != nil && words[0] == "help" {
			binder.PrintContextHelp(fds[1], words[1:])
			continue
		}

		result, needsTerminal, err := match.Check(grammar, words)
		switch {
		case err != nil:
			printMatchError(fds[2], err, colorize)
		case result > len(words):
			fmt.Fprintln(fds[1], "ok, more input expected")
		case result < len(words):
			fmt.Fprintf(fds[2], "unexpected argument %q\n", words[result])
		case needsTerminal:
			fmt.Fprintln(fds[1], "ok (terminal)")
		default:
			fmt.Fprintln(fds[1], "ok")
		}
	}
}

func printMatchError(w io.Writer, err error, colorize bool) {
	if me, ok := err.(*match.Error); ok {
		msg := me.Diag.Caret() + "\n" + me.Error()
		if colorize {
			msg = "\x1b[31m" + msg + "\x1b[0m"
		}
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, err)
}

func main() {
	os.Exit(Run([3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args[1:]))
}
