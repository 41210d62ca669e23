package compile

import (
	"errors"
	"testing"

	"github.com/npillmayer/autoseq/numsys"
)

func TestErrorMatching(t *testing.T) {
	err := newError(TypeError, "&", 12, "variable a not allowed here")
	if !errors.Is(err, ErrType) {
		t.Errorf("expected error to match its kind")
	}
	if errors.Is(err, ErrSyntax) {
		t.Errorf("expected error not to match another kind")
	}
	if have := err.Error(); have != "type error at position 12 (&): variable a not allowed here" {
		t.Errorf("unexpected message %q", have)
	}
	wrapped := wrapError(ArithmeticError, "/", 3, numsys.ErrDivisionByZero)
	if !errors.Is(wrapped, numsys.ErrDivisionByZero) || !errors.Is(wrapped, ErrArithmetic) {
		t.Errorf("expected wrapped error to match both its kind and its cause")
	}
	if have := newError(SyntaxError, "", -1, "empty formula").Error(); have != "syntax error: empty formula" {
		t.Errorf("unexpected message %q", have)
	}
}
