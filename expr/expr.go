// Package expr defines the values formulas evaluate to.
//
// An Expression is one of Automaton, Word, Arithmetic, Variable,
// NumberLiteral or AlphabetLetter. Arithmetic and Word expressions carry
// side-conditions: automata relating their fresh identifiers to the
// variables they were built from. Side-conditions are conjoined, and their
// identifiers quantified, once the expression is consumed by a relation.
package expr

import (
	"strconv"

	"github.com/npillmayer/autoseq/automaton"
)

// Expression is a value on the evaluation stack.
type Expression interface {
	String() string
	expression()
}

// Automaton is a formula with free variables, represented by an automaton
// over them.
type Automaton struct {
	M    *automaton.Automaton
	Text string
}

// Word is an automatic word applied to indices. W's index tracks are named
// by the index variables or by fresh identifiers bound by Side.
type Word struct {
	W        *automaton.Word
	Side     *automaton.Automaton // bindings of fresh index identifiers
	Quantify []string             // fresh identifiers to project away
	Text     string
}

// Arithmetic is an arithmetic term, represented by a fresh identifier and
// an automaton binding it to the term's value.
type Arithmetic struct {
	ID   string
	Side *automaton.Automaton
	Text string
}

// Variable is a (free) variable.
type Variable struct {
	Name string
}

// NumberLiteral is an integer constant of a number system.
type NumberLiteral struct {
	Value  int
	System string // "" for the default system
}

// AlphabetLetter is a letter @n of an output alphabet.
type AlphabetLetter struct {
	Value int
}

func (*Automaton) expression()      {}
func (*Word) expression()           {}
func (*Arithmetic) expression()     {}
func (*Variable) expression()       {}
func (*NumberLiteral) expression()  {}
func (*AlphabetLetter) expression() {}

func (e *Automaton) String() string      { return e.Text }
func (e *Word) String() string           { return e.Text }
func (e *Arithmetic) String() string     { return e.Text }
func (e *Variable) String() string       { return e.Name }
func (e *NumberLiteral) String() string  { return strconv.Itoa(e.Value) }
func (e *AlphabetLetter) String() string { return "@" + strconv.Itoa(e.Value) }

// Constant returns the integer value of a number literal or alphabet letter.
func Constant(e Expression) (int, bool) {
	switch c := e.(type) {
	case *NumberLiteral:
		return c.Value, true
	case *AlphabetLetter:
		return c.Value, true
	}
	return 0, false
}

// Describe names the variant of an expression, for error messages.
func Describe(e Expression) string {
	switch e.(type) {
	case *Automaton:
		return "automaton"
	case *Word:
		return "word"
	case *Arithmetic:
		return "arithmetic expression"
	case *Variable:
		return "variable"
	case *NumberLiteral:
		return "number"
	case *AlphabetLetter:
		return "alphabet letter"
	}
	return "unknown expression"
}
