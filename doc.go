/*
Package autoseq decides first-order formulas about automatic sequences.

Description

A formula talks about natural numbers written in a numeration system
(msd_2, lsd_3, …), about automatic words indexed by such numbers, and about
predicates defined earlier. It is compiled into a finite automaton
accepting exactly the assignments of its free variables which make the
formula true. A formula without free variables compiles to an automaton
which is either true or false.

	p, _ := autoseq.New()
	p.AddWord("T", autoseq.ThueMorse())
	r, _ := p.Eval("E i, n n > 0 & A k k < n => T[i+k] = T[i+n+k] & T[i+k] = T[i+2*n+k]")
	fmt.Println(r.True()) // false: Thue-Morse has no cubes

Formulas are read by package formula, compiled by package compile, and the
automata are built with packages automaton and numsys. A Prover ties these
together: it holds a library of named words and predicates and it manages
compilation contexts in a pool, which makes it safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package autoseq

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
