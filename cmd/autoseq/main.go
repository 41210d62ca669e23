/*
Command autoseq evaluates formulas about automatic sequences.

Usage:

	autoseq [-v] [-n numsys] [-d name=formula]… [formula…]

Formulas are taken from the arguments or, if there are none, from standard
input, one per line. Closed formulas print TRUE or FALSE; formulas with
free variables print the variables and the size of the resulting
automaton. Words T (Thue-Morse), RS (Rudin-Shapiro) and PD (period
doubling) are predefined.

	-n numsys         default number system, e.g. msd_2 (default) or lsd_10
	-d name=formula   define predicate $name, parameters in order of free variables
	-v                trace compilation
	-h                print usage

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/npillmayer/autoseq"
	"github.com/npillmayer/autoseq/compile"
	"github.com/npillmayer/autoseq/formula"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

const usage = "usage: autoseq [-v] [-n numsys] [-d name=formula]… [formula…]"

// Errors go to stderr, results to stdout.
var (
	stderr io.Writer = os.Stderr
	red              = color.New(color.FgRed)
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	opts, optind, err := getopt.Getopts(args, "n:d:vh")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
	args = args[optind:]
	var options []autoseq.Option
	var defs []string
	for _, opt := range opts {
		switch opt.Option {
		case 'n':
			options = append(options, autoseq.WithNumberSystem(opt.Value))
		case 'd':
			defs = append(defs, opt.Value)
		case 'v':
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			gtrace.SyntaxTracer = gologadapter.New()
			gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
		case 'h':
			fmt.Println(usage)
			return 0
		}
	}
	p, err := autoseq.New(options...)
	if err != nil {
		red.Fprintf(stderr, "%v\n", err)
		return 2
	}
	p.AddWord("T", autoseq.ThueMorse())
	p.AddWord("RS", autoseq.RudinShapiro())
	p.AddWord("PD", autoseq.PeriodDoubling())
	for _, d := range defs {
		eq := strings.IndexByte(d, '=')
		if eq <= 0 {
			red.Fprintf(stderr, "definition %q: expected name=formula\n", d)
			return 2
		}
		name, text := strings.TrimPrefix(strings.TrimSpace(d[:eq]), "$"), d[eq+1:]
		r, err := p.Def(name, text)
		if err != nil {
			red.Fprintf(stderr, "$%s: %v\n", name, err)
			return 1
		}
		color.Blue("$%s(%s) defined, %d states", name, strings.Join(r.Free, ", "), r.Automaton.States())
	}
	failed := false
	evaluate := func(text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		if !eval(p, text) {
			failed = true
		}
	}
	if len(args) > 0 {
		for _, text := range args {
			evaluate(text)
		}
	} else {
		lines := bufio.NewScanner(os.Stdin)
		for lines.Scan() {
			evaluate(lines.Text())
		}
		if err := lines.Err(); err != nil {
			red.Fprintf(stderr, "%v\n", err)
			return 1
		}
	}
	if failed {
		return 1
	}
	return 0
}

func eval(p *autoseq.Prover, text string) bool {
	r, err := p.Eval(text)
	if err != nil {
		var cerr *compile.Error
		if errors.As(err, &cerr) && cerr.Pos >= 0 {
			fmt.Fprintln(stderr, formula.Normalize(text))
			fmt.Fprintln(stderr, formula.Marker(formula.Normalize(text), cerr.Pos))
		}
		red.Fprintf(stderr, "%s: %v\n", text, err)
		return false
	}
	switch {
	case !r.Closed():
		color.Blue("%s: free variables %s, %d states", r.Formula, strings.Join(r.Free, ", "),
			r.Automaton.States())
	case r.True():
		color.Green("%s: TRUE", r.Formula)
	default:
		color.Red("%s: FALSE", r.Formula)
	}
	return true
}
