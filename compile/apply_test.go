package compile

import (
	"errors"
	"testing"

	"github.com/npillmayer/autoseq/expr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestSingleTuple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	m := mustAutomaton(t, "( a = 4 ) & ( b ) = ( 5 ) & ( 6 ) = c & ( 17 = d )")
	tuple := map[string]int{"a": 4, "b": 5, "c": 6, "d": 17}
	if !accepts(t, m, tuple) {
		t.Errorf("expected (4,5,6,17) to be accepted")
	}
	tuple["d"] = 16
	if accepts(t, m, tuple) {
		t.Errorf("expected (4,5,6,16) to be rejected")
	}
	if m.StripLeadingZeros(m.Labels()...).Infinite() {
		t.Errorf("expected exactly one tuple to be accepted")
	}
}

func TestWordCaseSplit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	m := mustAutomaton(t, "T/1 ( a ) < b")
	for a := 0; a < 16; a++ {
		for b := 0; b < 4; b++ {
			if have := accepts(t, m, map[string]int{"a": a, "b": b}); have != (thueMorse(a) < b) {
				t.Errorf("T[%d] < %d: expected %v, have %v", a, b, thueMorse(a) < b, have)
			}
		}
	}
	m = mustAutomaton(t, "b <= T/1 ( a )")
	for a := 0; a < 16; a++ {
		for b := 0; b < 3; b++ {
			if have := accepts(t, m, map[string]int{"a": a, "b": b}); have != (b <= thueMorse(a)) {
				t.Errorf("%d <= T[%d]: expected %v, have %v", b, a, b <= thueMorse(a), have)
			}
		}
	}
}

func TestWordArithmetic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if !equivalent(t, mustAutomaton(t, "T/1 ( a ) + 1 = 2"), mustAutomaton(t, "T/1 ( a ) = 1")) {
		t.Errorf("expected T[a]+1=2 to be equivalent to T[a]=1")
	}
	if !equivalent(t, mustAutomaton(t, "1 - T/1 ( a ) = @1"), mustAutomaton(t, "T/1 ( a ) = 0")) {
		t.Errorf("expected 1-T[a]=@1 to be equivalent to T[a]=0")
	}
	if !truth(t, mustAutomaton(t, "T/1 ( a ) * 0 = 0")) {
		t.Errorf("expected T[a]*0 = 0 to fold to true")
	}
	m := mustAutomaton(t, "T/1 ( a ) + b = c")
	for a := 0; a < 8; a++ {
		for b := 0; b < 4; b++ {
			for c := 0; c < 6; c++ {
				expected := thueMorse(a)+b == c
				if have := accepts(t, m, map[string]int{"a": a, "b": b, "c": c}); have != expected {
					t.Errorf("T[%d]+%d=%d: expected %v, have %v", a, b, c, expected, have)
				}
			}
		}
	}
	m = mustAutomaton(t, "_ T/1 ( a ) + 1 = 0")
	for a := 0; a < 8; a++ {
		if have := accepts(t, m, map[string]int{"a": a}); have != (thueMorse(a) == 1) {
			t.Errorf("_T[%d]+1=0: expected %v, have %v", a, thueMorse(a) == 1, have)
		}
	}
	if _, err := compileText(t, "T/1 ( a ) / 0 = 0"); !errors.Is(err, ErrArithmetic) {
		t.Errorf("expected division of word by 0 to fail, have %v", err)
	}
}

func TestWordIndexTerms(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	m := mustAutomaton(t, "T/1 ( a ) = T/1 ( a + 1 )")
	for a := 0; a < 16; a++ {
		if have := accepts(t, m, map[string]int{"a": a}); have != (thueMorse(a) == thueMorse(a+1)) {
			t.Errorf("T[%d]=T[%d]: expected %v, have %v", a, a+1, thueMorse(a) == thueMorse(a+1), have)
		}
	}
	// Thue-Morse has no factor of the form xxx
	cube := "E:i,n n > 0 & A:k k < n => " +
		"( T/1 ( i + k ) = T/1 ( i + n + k ) & T/1 ( i + k ) = T/1 ( i + 2 * n + k ) )"
	if truth(t, mustAutomaton(t, cube)) {
		t.Errorf("expected Thue-Morse to be cube-free")
	}
	if !truth(t, mustAutomaton(t, "T/1 ( 3 ) = 0 & T/1 ( 4 ) = 1")) {
		t.Errorf("expected T[3]=0 and T[4]=1")
	}
	if !truth(t, mustAutomaton(t, "A:n T/1 ( 2 * n ) = T/1 ( n )")) {
		t.Errorf("expected T[2n] = T[n]")
	}
	if !truth(t, mustAutomaton(t, "A:n T/1 ( n ) + Z/1 ( n ) = T/1 ( n )")) {
		t.Errorf("expected T[n]+Z[n] = T[n]")
	}
}

func TestWordExpression(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	e, err := compileText(t, "T/1 ( a + 1 )")
	if err != nil {
		t.Fatal(err)
	}
	w, ok := e.(*expr.Word)
	if !ok {
		t.Fatalf("expected word expression, have %s", expr.Describe(e))
	}
	if len(w.Quantify) != 1 || !w.Side.HasLabel(w.Quantify[0]) || !w.Side.HasLabel("a") {
		t.Errorf("expected side-condition binding the index to a+1, have %v / %v", w.Side, w.Quantify)
	}
	if w.String() != "T[(a+1)]" {
		t.Errorf("expected text T[(a+1)], have %s", w)
	}
}

func TestPredicates(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	m := mustAutomaton(t, "$lt/2 ( a ) ( 3 )")
	for a := 0; a < 6; a++ {
		if have := accepts(t, m, map[string]int{"a": a}); have != (a < 3) {
			t.Errorf("lt(%d,3): expected %v, have %v", a, a < 3, have)
		}
	}
	if !mustAutomaton(t, "$lt/2 ( a ) ( a )").IsEmpty() {
		t.Errorf("expected lt(a,a) to be unsatisfiable")
	}
	m = mustAutomaton(t, "$lt/2 ( y ) ( x )")
	if !accepts(t, m, map[string]int{"x": 3, "y": 1}) || accepts(t, m, map[string]int{"x": 1, "y": 3}) {
		t.Errorf("expected lt(y,x) to bind parameters by position")
	}
	m = mustAutomaton(t, "$lt/2 ( a + 1 ) ( b )")
	if !accepts(t, m, map[string]int{"a": 1, "b": 3}) || accepts(t, m, map[string]int{"a": 2, "b": 3}) {
		t.Errorf("expected lt(a+1, b) to hold for a=1, b=3 only of the two")
	}
	m = mustAutomaton(t, "$lt/2 ( a > 1 ) ( 4 )")
	for a := 0; a < 6; a++ {
		if have := accepts(t, m, map[string]int{"a": a}); have != (a > 1 && a < 4) {
			t.Errorf("lt(a>1, 4) for a=%d: expected %v, have %v", a, a > 1 && a < 4, have)
		}
	}
	if !truth(t, mustAutomaton(t, "A:x E:y $lt/2 ( x ) ( y )")) {
		t.Errorf("expected every number to have a larger one")
	}
}

func TestApplicationErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if _, err := compileText(t, "$lt/1 ( a )"); !errors.Is(err, ErrArity) {
		t.Errorf("expected arity error, have %v", err)
	}
	if _, err := compileText(t, "$gt/2 ( a ) ( b )"); !errors.Is(err, ErrUndefined) {
		t.Errorf("expected undefined predicate, have %v", err)
	}
	if _, err := compileText(t, "U/1 ( a ) = 0"); !errors.Is(err, ErrUndefined) {
		t.Errorf("expected undefined word, have %v", err)
	}
	if _, err := compileText(t, "$lt/2 ( a < b ) ( 1 )"); !errors.Is(err, ErrType) {
		t.Errorf("expected type error for formula with two free variables, have %v", err)
	}
	if _, err := compileText(t, "$lt/2 ( T/1 ( a ) ) ( 1 )"); !errors.Is(err, ErrType) {
		t.Errorf("expected type error for word argument, have %v", err)
	}
}
