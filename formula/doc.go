/*
Package formula reads the text of formulas and produces token lists for
package compile.

The syntax follows the conventions of automatic-sequence provers:

	E x, y x + y = 7             quantifiers E (exists), A (for all), I (infinitely many)
	~ ` & | ^ => <=>             not, reverse, and, or, xor, implies, iff
	= != < > <= >=               comparisons
	+ - * / _                    arithmetic, _ is unary minus
	@1                           letter of an output alphabet
	T[n] T[i][j]                 automatic words, indexed
	$p(a, b)                     named predicates
	?lsd_3                       number system of the literals that follow

Unicode variants of the operators (≤ ≥ ≠ ¬ ∧ ∨ ⇒ ⇔ ∃ ∀ …) are accepted and
input is normalized to NFKC before it is scanned. Source positions are
byte offsets into the normalized text.

A quantifier is separated from its first variable by white space
unless the variable list contains a comma; "Ex" is the name of a word.

Lexing is done with a DFA built by lexmachine, wrapped as a
scanner.Tokenizer. Parse groups the lexemes into tokens: indices of words
and arguments of predicates become parenthesized operands of an
application token with the proper arity.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package formula

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
