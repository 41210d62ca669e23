/*
Package automaton implements deterministic finite automata over tuples of digits.

An automaton reads words whose symbols are vectors of digits, one digit per
track. Every track carries a label (the name of a variable) and a base. A word
of length n therefore encodes one natural number per track, read either
most-significant digit first (msd) or least-significant digit first (lsd).
Languages of automata built by this package are closed under padding with
all-zero symbols, i.e. a tuple of numbers is accepted independently of the
number of leading (msd) or trailing (lsd) zeros.

Automata are immutable values. Every operation returns a new automaton and
never modifies its receiver or arguments.

Package automaton also provides Word, a deterministic finite automaton with
output (DFAO), which models automatic sequences: the output of the state
reached after reading the digits of an index is the value of the sequence at
that index.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automaton

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Errors returned by operations on automata.
var (
	ErrBaseMismatch      = errors.New("automaton: tracks with equal label have different bases")
	ErrDuplicateLabel    = errors.New("automaton: duplicate track label")
	ErrLabelSet          = errors.New("automaton: labels do not match tracks")
	ErrOrientation       = errors.New("automaton: cannot combine msd and lsd automata")
	ErrIncomplete        = errors.New("automaton: word automaton has missing transitions")
	ErrDivisionByZero    = errors.New("automaton: division by zero")
	ErrUnknownOperator   = errors.New("automaton: unknown operator")
	ErrInvalidTransition = errors.New("automaton: invalid transition")
)
