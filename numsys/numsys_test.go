package numsys

import (
	"errors"
	"testing"

	"github.com/npillmayer/autoseq/automaton"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

var systems = []string{"msd_2", "lsd_2", "msd_3", "lsd_10"}

func accepts(t *testing.T, b *Base, m *automaton.Automaton, values map[string]int) bool {
	t.Helper()
	ok, err := b.Accepts(m, values)
	if err != nil {
		t.Fatal(err)
	}
	return ok
}

func TestParse(t *testing.T) {
	for _, name := range systems {
		b, err := Parse(name)
		if err != nil {
			t.Fatal(err)
		}
		if b.Name() != name {
			t.Errorf("expected name %s, have %s", name, b.Name())
		}
	}
	for _, name := range []string{"msd_1", "fib", "msd_x", "lsd_"} {
		if _, err := Parse(name); !errors.Is(err, ErrUnknownSystem) {
			t.Errorf("expected %q to be rejected, have %v", name, err)
		}
	}
}

func TestDigits(t *testing.T) {
	b := MustParse("msd_2")
	d, _ := b.Digits(6, 4)
	if len(d) != 4 || d[0] != 0 || d[1] != 1 || d[2] != 1 || d[3] != 0 {
		t.Errorf("expected 0110, have %v", d)
	}
	l := MustParse("lsd_10")
	d, _ = l.Digits(42, 0)
	if len(d) != 2 || d[0] != 2 || d[1] != 4 {
		t.Errorf("expected [2 4], have %v", d)
	}
	if _, err := b.Digits(-1, 0); !errors.Is(err, ErrNegative) {
		t.Errorf("expected negative number to be rejected, have %v", err)
	}
}

func TestComparisons(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, name := range systems {
		b := MustParse(name)
		for _, op := range []string{"=", "!=", "<", ">", "<=", ">="} {
			m, err := b.Comparison(Var("x"), Var("y"), op)
			if err != nil {
				t.Fatal(err)
			}
			for x := 0; x < 9; x++ {
				for y := 0; y < 9; y++ {
					expected, _ := automaton.Holds(op, x, y)
					if have := accepts(t, b, m, map[string]int{"x": x, "y": y}); have != expected {
						t.Errorf("%s: expected %d %s %d to be %v, have %v", name, x, op, y, expected, have)
					}
				}
			}
		}
	}
}

func TestComparisonWithConstant(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	b := MustParse("msd_2")
	m, err := b.Comparison(Const(5), Var("x"), "<")
	if err != nil {
		t.Fatal(err)
	}
	if accepts(t, b, m, map[string]int{"x": 5}) || !accepts(t, b, m, map[string]int{"x": 6}) {
		t.Errorf("expected 5 < x to hold exactly for x > 5")
	}
	c, err := b.Comparison(Const(3), Const(4), ">=")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := c.Truth(); !ok || v {
		t.Errorf("expected 3 >= 4 to be false")
	}
	same, _ := b.Comparison(Var("x"), Var("x"), "<")
	if !same.IsEmpty() {
		t.Errorf("expected x < x to be unsatisfiable")
	}
	if !same.HasLabel("x") {
		t.Errorf("expected x < x to keep track x")
	}
}

func TestArithmetic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, name := range systems {
		b := MustParse(name)
		plus, err := b.Arithmetic(Var("a"), Const(3), "c", "+")
		if err != nil {
			t.Fatal(err)
		}
		minus, _ := b.Arithmetic(Var("a"), Var("b"), "c", "-")
		times, _ := b.Arithmetic(Const(3), Var("a"), "c", "*")
		div, _ := b.Arithmetic(Var("a"), Const(3), "c", "/")
		for a := 0; a < 12; a++ {
			for c := 0; c < 20; c++ {
				vals := map[string]int{"a": a, "c": c}
				if have := accepts(t, b, plus, vals); have != (a+3 == c) {
					t.Errorf("%s: a+3=c for a=%d, c=%d: have %v", name, a, c, have)
				}
				if have := accepts(t, b, times, vals); have != (3*a == c) {
					t.Errorf("%s: 3*a=c for a=%d, c=%d: have %v", name, a, c, have)
				}
				if have := accepts(t, b, div, vals); have != (a/3 == c) {
					t.Errorf("%s: a/3=c for a=%d, c=%d: have %v", name, a, c, have)
				}
				vals["b"] = 4
				if have := accepts(t, b, minus, vals); have != (a-4 == c) {
					t.Errorf("%s: a-b=c for a=%d, b=4, c=%d: have %v", name, a, c, have)
				}
			}
		}
	}
}

func TestArithmeticErrors(t *testing.T) {
	b := MustParse("msd_2")
	if _, err := b.Arithmetic(Var("x"), Var("y"), "c", "*"); !errors.Is(err, ErrNonlinear) {
		t.Errorf("expected nonlinear error, have %v", err)
	}
	if _, err := b.Arithmetic(Var("x"), Const(0), "c", "/"); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected division by zero, have %v", err)
	}
	if _, err := b.Arithmetic(Var("x"), Const(-2), "c", "/"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected unsupported division, have %v", err)
	}
	if _, err := b.Arithmetic(Const(7), Var("y"), "c", "/"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected unsupported division, have %v", err)
	}
	if _, err := b.Arithmetic(Var("x"), Var("y"), "c", "%"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected unsupported operator, have %v", err)
	}
}

func TestConstant(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	b := MustParse("lsd_2")
	m, err := b.Constant(5, "c")
	if err != nil {
		t.Fatal(err)
	}
	for n := 0; n < 10; n++ {
		if have := accepts(t, b, m, map[string]int{"c": n}); have != (n == 5) {
			t.Errorf("expected c=5 to accept %d: %v, have %v", n, n == 5, have)
		}
	}
	neg, _ := b.Constant(-1, "c")
	if !neg.IsEmpty() {
		t.Errorf("expected negative constant to have no representation")
	}
}

func TestQuantifiedSum(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	// Ey x+y=c accepts every c ≥ x
	for _, name := range systems {
		b := MustParse(name)
		m, _ := b.Arithmetic(Var("x"), Var("y"), "c", "+")
		q := m.Quantify("y")
		geq, _ := b.Comparison(Var("c"), Var("x"), ">=")
		if eq, err := q.Equivalent(geq); err != nil || !eq {
			t.Errorf("%s: expected Ey x+y=c to be equivalent to c>=x (%v)", name, err)
		}
	}
}
