/*
Package compile turns token lists of formulas into automata.

Compilation runs in two steps. Reduce rearranges the tokens of a formula from
infix into postfix order, respecting operator precedence (shunting-yard).
Evaluate then interprets the postfix list with a stack of expressions: every
token pops its operands, combines them, and pushes a single result.
Constants are folded without building automata; everything else is
delegated to the automaton algebra and to a NumberSystem.

Fresh identifiers for intermediate results are drawn from a Context, which
also resolves names of predicates, words and number systems. A Context
serves one compilation at a time.

	ctx := compile.NewContext(numsys.MustParse("msd_2"), library)
	e, err := compile.Compile(ctx, tokens)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ST traces to the global syntax tracer.
func ST() tracing.Trace {
	return gtrace.SyntaxTracer
}
