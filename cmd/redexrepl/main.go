package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/tshort/redex/session"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to redex")

	s := session.New()
	path := strings.Join(flag.Args(), " ")
	if path != "" {
		fmt.Printf("<LOAD> '%s'\n", path)
		if err := loadFile(s, path); err != nil {
			tracer().Errorf("%s", err)
			os.Exit(2)
		}
	}

	repl, err := readline.New("redex> ")
	if err != nil {
		tracer().Errorf("%s", err)
		os.Exit(3)
	}
	defer repl.Close()
	tracer().Infof("Quit with <ctrl>D")
	if err := runREPL(s, repl); err != nil {
		tracer().Errorf("%s", err)
		os.Exit(1)
	}
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadFile(s *session.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		executeLine(s, scanner.Text())
	}
	return scanner.Err()
}

// runREPL reads from repl until <ctrl>D (io.EOF) or an unrecoverable
// I/O error. A clean EOF returns nil; any other read error is
// propagated so main can report a nonzero exit code.
func runREPL(s *session.Session, repl *readline.Instance) error {
	for {
		line, err := repl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil { // io.EOF or a genuine I/O failure
			if err.Error() == "EOF" {
				return nil
			}
			return err
		}
		executeLine(s, line)
	}
}

// executeLine runs one line of source and renders its effect exactly
// as §6 describes: a canonical echo for a rule, tab-indented
// intermediate forms for a query, and a "Parse error at col N: ..."
// line to standard error for a parse failure. It never terminates the
// session.
func executeLine(s *session.Session, line string) {
	res, err := s.ExecuteLine(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	if res.IsNoop {
		return
	}
	if res.IsQuery {
		for _, step := range res.QuerySteps {
			fmt.Printf("\t%s\n", step)
		}
		return
	}
	fmt.Println(res.Echo)
}
