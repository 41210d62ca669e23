package compile

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestDoubleNegation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	a := mustAutomaton(t, "a < 3")
	if !equivalent(t, mustAutomaton(t, "~ ~ a < 3"), a) {
		t.Errorf("expected ~~(a<3) to be equivalent to a<3")
	}
	if !equivalent(t, mustAutomaton(t, "` ` a < 3"), a) {
		t.Errorf("expected reversing twice to be the identity")
	}
	if !equivalent(t, mustAutomaton(t, "~ a < 3"), mustAutomaton(t, "a >= 3")) {
		t.Errorf("expected ~(a<3) to be equivalent to a>=3")
	}
}

func TestConnectives(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, c := range []struct {
		formula string
		holds   func(a, b int) bool
	}{
		{"a < 3 & b > 1", func(a, b int) bool { return a < 3 && b > 1 }},
		{"a < 3 | b > 1", func(a, b int) bool { return a < 3 || b > 1 }},
		{"a < 3 ^ b > 1", func(a, b int) bool { return (a < 3) != (b > 1) }},
		{"a < 3 => b > 1", func(a, b int) bool { return a >= 3 || b > 1 }},
		{"a < 3 <=> b > 1", func(a, b int) bool { return (a < 3) == (b > 1) }},
		{"a = 1 | a = 2 & b = 2", func(a, b int) bool { return (a == 1 || a == 2) && b == 2 }},
	} {
		m := mustAutomaton(t, c.formula)
		for a := 0; a < 6; a++ {
			for b := 0; b < 6; b++ {
				if have := accepts(t, m, map[string]int{"a": a, "b": b}); have != c.holds(a, b) {
					t.Errorf("%q for a=%d, b=%d: expected %v, have %v", c.formula, a, b, c.holds(a, b), have)
				}
			}
		}
	}
}

func TestQuantifiers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, c := range []struct {
		formula string
		value   bool
	}{
		{"E:x,y x < y", true},
		{"A:x,y x < y", false},
		{"A:x E:y x < y", true},
		{"E:y A:x x < y", false},
		{"A:x x + 0 = x", true},
		{"E:x x + 1 = 0", false},
		{"E:x 2 * x = 7", false},
		{"E:x 3 * x = 21", true},
		{"I:x x > 5", true},
		{"I:x x < 5", false},
		{"I:x E:y 2 * y = x", true},
	} {
		if have := truth(t, mustAutomaton(t, c.formula)); have != c.value {
			t.Errorf("expected %q to be %v, have %v", c.formula, c.value, have)
		}
	}
}

func TestForallDuality(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	forall := mustAutomaton(t, "A:x ( x < y | x > 2 )")
	dual := mustAutomaton(t, "~ E:x ~ ( x < y | x > 2 )")
	if !equivalent(t, forall, dual) {
		t.Errorf("expected A x φ to be equivalent to ~E x ~φ")
	}
	for y := 0; y < 6; y++ {
		if have := accepts(t, forall, map[string]int{"y": y}); have != (y > 2) {
			t.Errorf("expected A x (x<y | x>2) for y=%d to be %v, have %v", y, y > 2, have)
		}
	}
}

func TestQuantifyAbsentVariable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if !equivalent(t, mustAutomaton(t, "E:z a < 3"), mustAutomaton(t, "a < 3")) {
		t.Errorf("expected quantifying an absent variable to change nothing")
	}
	if !truth(t, mustAutomaton(t, "E:x E:x x = 3")) {
		t.Errorf("expected re-quantification to be harmless")
	}
}

func TestLogicalTypeErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, f := range []string{"~ a", "a & b", "E:x 3", "` 2 + 3", "a < 3 | 4"} {
		if _, err := compileText(t, f); !errors.Is(err, ErrType) {
			t.Errorf("expected type error for %q, have %v", f, err)
		}
	}
	if _, err := compileText(t, "I:x,y x < y"); !errors.Is(err, ErrArity) {
		t.Errorf("expected I with two variables to be an arity error, have %v", err)
	}
}
