/*
Package token defines the tokens of formulas and their operator properties.

Tokens are created once by a front end and are read-only afterwards. Every
token knows its arity, its precedence and whether it associates to the
right. Precedence is a number where larger values bind looser:

    ( and quantifiers   100
    <=>                  70
    =>                   60
    & | ^                50
    ~ `                  40
    = != < > <= >=       30
    + -                  20
    * /                  10
    _ (negation)          5
    $p(…), W[…]           0

Negation, reversal, unary minus and applications are prefix operators and
associate to the right.
*/
package token

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind is the category of a token.
type Kind uint8

// Token kinds.
const (
	AlphabetLetter Kind = iota
	NumberLiteral
	Variable
	ArithmeticOp
	RelationalOp
	LogicalOp
	FunctionApp
	WordApp
	LeftParen
	RightParen
)

var kindNames = [...]string{
	"AlphabetLetter", "NumberLiteral", "Variable", "ArithmeticOp", "RelationalOp",
	"LogicalOp", "FunctionApp", "WordApp", "LeftParen", "RightParen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Precedence levels. Larger values bind looser.
const (
	PrioApplication    = 0
	PrioUnaryMinus     = 5
	PrioMultiplicative = 10
	PrioAdditive       = 20
	PrioRelational     = 30
	PrioNegation       = 40
	PrioConjunctive    = 50
	PrioImplication    = 60
	PrioEquivalence    = 70
	PrioOpening        = 100
)

// ErrUnknownOperator flags an operator symbol not valid for a token kind.
var ErrUnknownOperator = errors.New("token: unknown operator")

// Token is an element of a formula.
type Token struct {
	kind   Kind
	op     string // operator symbol or name
	value  int
	system string // number system of a literal
	pos    int
	arity  int
	prio   int
	right  bool
}

// Kind returns the token's category.
func (t Token) Kind() Kind { return t.kind }

// Op returns the operator symbol, the variable name or the name of an
// applied predicate or word.
func (t Token) Op() string { return t.op }

// Value returns the integer value of a literal.
func (t Token) Value() int { return t.value }

// System returns the name of the number system of a number literal, or "".
func (t Token) System() string { return t.system }

// Pos returns the source position of the token.
func (t Token) Pos() int { return t.pos }

// Arity returns the number of operands the token consumes.
func (t Token) Arity() int { return t.arity }

// Priority returns the precedence of the token. Larger values bind looser.
func (t Token) Priority() int { return t.prio }

// RightAssoc is true for right-associative (prefix) operators.
func (t Token) RightAssoc() bool { return t.right }

// IsOperand is true for literals and variables.
func (t Token) IsOperand() bool {
	return t.kind == AlphabetLetter || t.kind == NumberLiteral || t.kind == Variable
}

// IsQuantifier is true for the quantifiers E, A and I.
func (t Token) IsQuantifier() bool {
	return t.kind == LogicalOp && (t.op == "E" || t.op == "A" || t.op == "I")
}

func (t Token) String() string {
	switch t.kind {
	case AlphabetLetter:
		return "@" + strconv.Itoa(t.value)
	case NumberLiteral:
		return strconv.Itoa(t.value)
	case FunctionApp:
		return fmt.Sprintf("$%s/%d", t.op, t.arity)
	case WordApp:
		return fmt.Sprintf("%s/%d", t.op, t.arity)
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	}
	if t.IsQuantifier() {
		return fmt.Sprintf("%s/%d", t.op, t.arity-1)
	}
	return t.op
}

// Letter creates an alphabet letter @n.
func Letter(n int, pos int) Token {
	return Token{kind: AlphabetLetter, value: n, pos: pos}
}

// Number creates a number literal. system names the number system the
// literal belongs to; "" selects the default.
func Number(n int, system string, pos int) Token {
	return Token{kind: NumberLiteral, value: n, system: system, pos: pos}
}

// Var creates a variable.
func Var(name string, pos int) Token {
	return Token{kind: Variable, op: name, pos: pos}
}

// Arith creates an arithmetic operator: one of + - * / or _ (unary minus).
func Arith(op string, pos int) (Token, error) {
	t := Token{kind: ArithmeticOp, op: op, pos: pos, arity: 2}
	switch op {
	case "+", "-":
		t.prio = PrioAdditive
	case "*", "/":
		t.prio = PrioMultiplicative
	case "_":
		t.prio, t.arity, t.right = PrioUnaryMinus, 1, true
	default:
		return Token{}, fmt.Errorf("%w %q at %d", ErrUnknownOperator, op, pos)
	}
	return t, nil
}

// Rel creates a relational operator: one of = != < > <= >=.
func Rel(op string, pos int) (Token, error) {
	switch op {
	case "=", "!=", "<", ">", "<=", ">=":
		return Token{kind: RelationalOp, op: op, pos: pos, arity: 2, prio: PrioRelational}, nil
	}
	return Token{}, fmt.Errorf("%w %q at %d", ErrUnknownOperator, op, pos)
}

// Logic creates a logical operator: ~ (not), ` (reverse), & | ^ => <=>.
func Logic(op string, pos int) (Token, error) {
	t := Token{kind: LogicalOp, op: op, pos: pos, arity: 2}
	switch op {
	case "~", "`":
		t.prio, t.arity, t.right = PrioNegation, 1, true
	case "&", "|", "^":
		t.prio = PrioConjunctive
	case "=>":
		t.prio = PrioImplication
	case "<=>":
		t.prio = PrioEquivalence
	default:
		return Token{}, fmt.Errorf("%w %q at %d", ErrUnknownOperator, op, pos)
	}
	return t, nil
}

// Quantifier creates one of the quantifiers E (exists), A (for all) or
// I (infinitely many), binding n variables. The variable tokens follow the
// quantifier in the token list; the quantifier consumes the n variables and
// the quantified formula.
func Quantifier(q string, n int, pos int) (Token, error) {
	switch q {
	case "E", "A", "I":
	default:
		return Token{}, fmt.Errorf("%w %q at %d", ErrUnknownOperator, q, pos)
	}
	if n < 1 {
		return Token{}, fmt.Errorf("token: quantifier %s at %d binds no variable", q, pos)
	}
	return Token{kind: LogicalOp, op: q, pos: pos, arity: n + 1, prio: PrioOpening}, nil
}

// Func creates the application of predicate name to n arguments.
func Func(name string, n int, pos int) Token {
	return Token{kind: FunctionApp, op: name, pos: pos, arity: n, prio: PrioApplication, right: true}
}

// Word creates the application of automatic word name to n indices.
func Word(name string, n int, pos int) Token {
	return Token{kind: WordApp, op: name, pos: pos, arity: n, prio: PrioApplication, right: true}
}

// LParen creates an opening parenthesis.
func LParen(pos int) Token {
	return Token{kind: LeftParen, op: "(", pos: pos, prio: PrioOpening}
}

// RParen creates a closing parenthesis.
func RParen(pos int) Token {
	return Token{kind: RightParen, op: ")", pos: pos, prio: PrioOpening}
}

// Must unwraps the result of a token constructor and panics on error.
func Must(t Token, err error) Token {
	if err != nil {
		panic(err)
	}
	return t
}
