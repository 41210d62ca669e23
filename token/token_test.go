package token

import (
	"errors"
	"testing"
)

func TestOperatorProperties(t *testing.T) {
	for _, c := range []struct {
		tok   Token
		prio  int
		arity int
		right bool
	}{
		{Must(Arith("+", 0)), PrioAdditive, 2, false},
		{Must(Arith("/", 0)), PrioMultiplicative, 2, false},
		{Must(Arith("_", 0)), PrioUnaryMinus, 1, true},
		{Must(Rel("<=", 0)), PrioRelational, 2, false},
		{Must(Logic("~", 0)), PrioNegation, 1, true},
		{Must(Logic("`", 0)), PrioNegation, 1, true},
		{Must(Logic("^", 0)), PrioConjunctive, 2, false},
		{Must(Logic("=>", 0)), PrioImplication, 2, false},
		{Must(Logic("<=>", 0)), PrioEquivalence, 2, false},
		{Must(Quantifier("E", 2, 0)), PrioOpening, 3, false},
		{Func("p", 3, 0), PrioApplication, 3, true},
		{Word("T", 1, 0), PrioApplication, 1, true},
		{LParen(0), PrioOpening, 0, false},
	} {
		if c.tok.Priority() != c.prio {
			t.Errorf("expected %v to have priority %d, have %d", c.tok, c.prio, c.tok.Priority())
		}
		if c.tok.Arity() != c.arity {
			t.Errorf("expected %v to have arity %d, have %d", c.tok, c.arity, c.tok.Arity())
		}
		if c.tok.RightAssoc() != c.right {
			t.Errorf("expected %v to be right-associative: %v", c.tok, c.right)
		}
	}
}

func TestOperands(t *testing.T) {
	n := Number(17, "msd_3", 4)
	if !n.IsOperand() || n.Value() != 17 || n.System() != "msd_3" || n.Pos() != 4 {
		t.Errorf("unexpected number token %v", n)
	}
	if !Var("x", 0).IsOperand() || !Letter(1, 0).IsOperand() {
		t.Errorf("expected variables and letters to be operands")
	}
	if Must(Quantifier("A", 1, 0)).IsOperand() {
		t.Errorf("expected quantifier not to be an operand")
	}
	if !Must(Quantifier("I", 1, 0)).IsQuantifier() || Must(Logic("&", 0)).IsQuantifier() {
		t.Errorf("expected I to be the only quantifier")
	}
}

func TestUnknownOperators(t *testing.T) {
	if _, err := Arith("%", 3); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("expected unknown operator, have %v", err)
	}
	if _, err := Rel("==", 3); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("expected unknown operator, have %v", err)
	}
	if _, err := Logic("!", 3); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("expected unknown operator, have %v", err)
	}
	if _, err := Quantifier("X", 1, 3); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("expected unknown quantifier, have %v", err)
	}
	if _, err := Quantifier("E", 0, 3); err == nil {
		t.Errorf("expected quantifier without variables to be rejected")
	}
}

func TestString(t *testing.T) {
	for _, c := range []struct {
		tok Token
		s   string
	}{
		{Letter(3, 0), "@3"},
		{Number(-2, "", 0), "-2"},
		{Func("p", 2, 0), "$p/2"},
		{Word("T", 1, 0), "T/1"},
		{Must(Quantifier("E", 2, 0)), "E/2"},
		{Must(Logic("<=>", 0)), "<=>"},
	} {
		if c.tok.String() != c.s {
			t.Errorf("expected %q, have %q", c.s, c.tok.String())
		}
	}
	if NumberLiteral.String() != "NumberLiteral" {
		t.Errorf("expected kind name NumberLiteral, have %s", NumberLiteral)
	}
}
