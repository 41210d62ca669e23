package compile

import (
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/autoseq/automaton"
	"github.com/npillmayer/autoseq/expr"
	"github.com/npillmayer/autoseq/numsys"
	"github.com/npillmayer/autoseq/token"
)

// toks creates a token list from space-separated items:
//
//     12      number literal
//     @1      alphabet letter
//     x       variable
//     E:x,y   quantifier with its variables
//     $p/2    predicate application
//     T/1     word application
//
// Everything else is an operator or a parenthesis.
func toks(t *testing.T, src string) []token.Token {
	t.Helper()
	var list []token.Token
	for pos, item := range strings.Fields(src) {
		c := item[0]
		switch {
		case c >= '0' && c <= '9':
			n, _ := strconv.Atoi(item)
			list = append(list, token.Number(n, "", pos))
		case c == '@':
			n, _ := strconv.Atoi(item[1:])
			list = append(list, token.Letter(n, pos))
		case (c == 'E' || c == 'A' || c == 'I') && len(item) > 1 && item[1] == ':':
			vars := strings.Split(item[2:], ",")
			list = append(list, token.Must(token.Quantifier(item[:1], len(vars), pos)))
			for _, v := range vars {
				list = append(list, token.Var(v, pos))
			}
		case c == '$' || (c >= 'A' && c <= 'Z'):
			parts := strings.Split(item, "/")
			n, _ := strconv.Atoi(parts[1])
			if c == '$' {
				list = append(list, token.Func(parts[0][1:], n, pos))
			} else {
				list = append(list, token.Word(parts[0], n, pos))
			}
		case c >= 'a' && c <= 'z':
			list = append(list, token.Var(item, pos))
		case item == "(":
			list = append(list, token.LParen(pos))
		case item == ")":
			list = append(list, token.RParen(pos))
		default:
			if tok, err := token.Arith(item, pos); err == nil {
				list = append(list, tok)
			} else if tok, err := token.Rel(item, pos); err == nil {
				list = append(list, tok)
			} else {
				list = append(list, token.Must(token.Logic(item, pos)))
			}
		}
	}
	return list
}

var msd2 = numsys.MustParse("msd_2")

// testLibrary knows the Thue-Morse word T, the word Z = 0 0 0 …, and the
// predicate lt(x,y) = x < y.
func testLibrary(t *testing.T) *Library {
	t.Helper()
	lib := NewLibrary()
	b := automaton.NewBuilder([]string{"n"}, []int{2}, false)
	s0, s1 := b.AddState(false), b.AddState(false)
	b.Transition(s0, []int{0}, s0).Transition(s0, []int{1}, s1)
	b.Transition(s1, []int{0}, s1).Transition(s1, []int{1}, s0)
	tm, err := b.BuildWord(s0, []int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	lib.DefineWord("T", tm)
	z := automaton.NewBuilder([]string{"n"}, []int{2}, false)
	s := z.AddState(false)
	z.Transition(s, []int{0}, s).Transition(s, []int{1}, s)
	zero, err := z.BuildWord(s, []int{0})
	if err != nil {
		t.Fatal(err)
	}
	lib.DefineWord("Z", zero)
	lt, err := msd2.Comparison(numsys.Var("x"), numsys.Var("y"), "<")
	if err != nil {
		t.Fatal(err)
	}
	lib.DefinePredicate("lt", lt)
	return lib
}

// compileText compiles a formula given in the notation of toks.
func compileText(t *testing.T, src string) (expr.Expression, error) {
	t.Helper()
	ctx := NewContext(msd2, testLibrary(t))
	return Compile(ctx, toks(t, src))
}

// mustAutomaton compiles a formula which has to result in an automaton.
func mustAutomaton(t *testing.T, src string) *automaton.Automaton {
	t.Helper()
	e, err := compileText(t, src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	a, ok := e.(*expr.Automaton)
	if !ok {
		t.Fatalf("%s: expected automaton, have %s", src, expr.Describe(e))
	}
	return a.M
}

func accepts(t *testing.T, m *automaton.Automaton, values map[string]int) bool {
	t.Helper()
	ok, err := msd2.Accepts(m, values)
	if err != nil {
		t.Fatal(err)
	}
	return ok
}

func truth(t *testing.T, m *automaton.Automaton) bool {
	t.Helper()
	v, ok := m.Truth()
	if !ok {
		t.Fatalf("expected closed formula, have free variables %v", m.Labels())
	}
	return v
}

func equivalent(t *testing.T, a, b *automaton.Automaton) bool {
	t.Helper()
	eq, err := a.Equivalent(b)
	if err != nil {
		t.Fatal(err)
	}
	return eq
}

func thueMorse(n int) int {
	c := 0
	for ; n > 0; n >>= 1 {
		c ^= n & 1
	}
	return c
}
