/*
Package numsys synthesizes automata for arithmetic over numeration systems.

A numeration system in this package is base k, read either most significant
digit first ("msd_k") or least significant digit first ("lsd_k"). Addition,
subtraction, multiplication by constants, floor division by constants and
comparisons are all reduced to linear equations

    c₁·x₁ + c₂·x₂ + … + cₙ·xₙ = K

which are recognized by an automaton tracking the carry while reading digits
from the least significant end.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package numsys

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Errors returned by number systems.
var (
	ErrDivisionByZero = errors.New("numsys: division by zero")
	ErrNonlinear      = errors.New("numsys: product of variables is not linear")
	ErrUnsupported    = errors.New("numsys: unsupported operation")
	ErrUnknownSystem  = errors.New("numsys: unknown number system")
	ErrNegative       = errors.New("numsys: negative numbers are not representable")
	ErrMissingValue   = errors.New("numsys: no value for variable")
)
