package formula

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/autoseq/compile"
	"github.com/npillmayer/autoseq/token"
	"github.com/npillmayer/gorgo/lr/scanner"
)

// Formula is the result of parsing the text of a formula.
type Formula struct {
	Source string        // normalized input
	System string        // number system selected by a leading ?prefix, or the default
	Tokens []token.Token // infix token list, ready for compile.Compile
}

// Option configures Parse.
type Option func(*grouper)

// DefaultNumberSystem sets the number system of literals not preceded by a
// ?prefix.
func DefaultNumberSystem(name string) Option {
	return func(g *grouper) {
		g.system = name
	}
}

type lexeme struct {
	kind int
	text string
	pos  int
}

type frame struct {
	call    bool // argument list of a predicate
	bracket bool // index of a word
	pos     int
}

type grouper struct {
	lexemes []lexeme
	system  string
	out     []token.Token
	frames  []frame
	call    bool // next ( opens an argument list
}

// Parse reads a formula and returns its tokens. Errors are of type
// *compile.Error with kind compile.SyntaxError.
func Parse(input string, opts ...Option) (*Formula, error) {
	lx, err := NewLexer(input)
	if err != nil {
		return nil, &compile.Error{Kind: compile.InternalError, Pos: -1, Err: err}
	}
	g := &grouper{}
	for _, opt := range opts {
		opt(g)
	}
	var lexErr error
	lx.SetErrorHandler(func(e error) {
		if lexErr == nil {
			lexErr = e
		}
	})
	for {
		kind, value, pos, _ := lx.NextToken(scanner.AnyToken)
		if kind == scanner.EOF {
			break
		}
		g.lexemes = append(g.lexemes, lexeme{kind: kind, text: value.(string), pos: int(pos)})
	}
	if lexErr != nil {
		pos := -1
		if le, ok := lexErr.(*LexError); ok {
			pos = le.Pos
		}
		return nil, &compile.Error{Kind: compile.SyntaxError, Pos: pos, Err: lexErr}
	}
	f := &Formula{Source: lx.Input(), System: g.system}
	if len(g.lexemes) > 0 && g.lexemes[0].kind == System {
		f.System = g.lexemes[0].text[1:]
	}
	if err := g.group(); err != nil {
		return nil, err
	}
	f.Tokens = g.out
	T().Infof("formula %q: %d tokens in system %q", f.Source, len(f.Tokens), f.System)
	return f, nil
}

func syntaxError(l lexeme, format string, args ...interface{}) *compile.Error {
	return &compile.Error{Kind: compile.SyntaxError, Op: l.text, Pos: l.pos, Msg: fmt.Sprintf(format, args...)}
}

func (g *grouper) group() error {
	for i, l := range g.lexemes {
		if g.call && l.kind != LParen {
			g.call = false
		}
		var err error
		switch l.kind {
		case System:
			g.system = l.text[1:]
		case Number:
			var n int
			if n, err = strconv.Atoi(l.text); err != nil {
				return syntaxError(l, "number out of range")
			}
			g.emit(token.Number(n, g.system, l.pos))
		case Letter:
			var n int
			if n, err = strconv.Atoi(l.text[1:]); err != nil {
				return syntaxError(l, "letter out of range")
			}
			g.emit(token.Letter(n, l.pos))
		case Ident:
			g.emit(token.Var(l.text, l.pos))
		case Quantifier:
			err = g.quantifier(l)
		case WordName:
			n := g.groups(i+1, LBracket)
			if n < 0 {
				return syntaxError(l, "unbalanced index of word %s", l.text)
			} else if n == 0 {
				return syntaxError(l, "word %s needs an index", l.text)
			}
			g.emit(token.Word(l.text, n, l.pos))
		case PredicateName:
			err = g.predicate(i, l)
		case LParen:
			g.frames = append(g.frames, frame{call: g.call, pos: l.pos})
			g.call = false
			g.emit(token.LParen(l.pos))
		case LBracket:
			g.frames = append(g.frames, frame{bracket: true, pos: l.pos})
			g.emit(token.LParen(l.pos))
		case RParen, RBracket:
			if len(g.frames) == 0 {
				return syntaxError(l, "unbalanced %s", l.text)
			}
			top := g.frames[len(g.frames)-1]
			if top.bracket != (l.kind == RBracket) {
				return syntaxError(l, "%s does not match bracket at position %d", l.text, top.pos)
			}
			g.frames = g.frames[:len(g.frames)-1]
			g.emit(token.RParen(l.pos))
		case Comma:
			if len(g.frames) == 0 || !g.frames[len(g.frames)-1].call {
				return syntaxError(l, "comma outside of argument list")
			}
			g.emit(token.RParen(l.pos))
			g.emit(token.LParen(l.pos))
		case ArithOp:
			op := l.text
			if op == "-" && !g.afterOperand(i) {
				op = "_"
			}
			err = g.operator(token.Arith(op, l.pos))
		case RelOp:
			err = g.operator(token.Rel(l.text, l.pos))
		case LogicOp:
			err = g.operator(token.Logic(l.text, l.pos))
		default:
			return syntaxError(l, "unexpected %s", LexemeString(l.kind))
		}
		if err != nil {
			if ce, ok := err.(*compile.Error); ok {
				return ce
			}
			return &compile.Error{Kind: compile.SyntaxError, Op: l.text, Pos: l.pos, Err: err}
		}
	}
	if len(g.frames) > 0 {
		f := g.frames[len(g.frames)-1]
		return &compile.Error{Kind: compile.SyntaxError, Pos: f.pos, Msg: "unclosed bracket"}
	}
	return nil
}

func (g *grouper) emit(t token.Token) {
	g.out = append(g.out, t)
}

func (g *grouper) operator(t token.Token, err error) error {
	if err != nil {
		return err
	}
	g.emit(t)
	return nil
}

// quantifier splits "E x, y" into a quantifier and its variables.
func (g *grouper) quantifier(l lexeme) error {
	names := strings.Split(l.text[1:], ",")
	vars := make([]token.Token, 0, len(names))
	offset := 1
	for _, n := range names {
		name := strings.TrimSpace(n)
		at := offset + strings.Index(n, name)
		vars = append(vars, token.Var(name, l.pos+at))
		offset += len(n) + 1
	}
	q, err := token.Quantifier(l.text[:1], len(vars), l.pos)
	if err != nil {
		return err
	}
	g.emit(q)
	g.out = append(g.out, vars...)
	return nil
}

// predicate emits the application of a predicate. Without an argument list
// the predicate is applied to nothing.
func (g *grouper) predicate(i int, l lexeme) error {
	name := l.text[1:]
	if i+1 >= len(g.lexemes) || g.lexemes[i+1].kind != LParen {
		g.emit(token.Func(name, 0, l.pos))
		return nil
	}
	end := g.closing(i + 1)
	if end < 0 {
		return syntaxError(l, "unbalanced arguments of predicate %s", name)
	}
	if end == i+2 {
		return syntaxError(l, "empty argument list of predicate %s", name)
	}
	n, depth := 1, 0
	for _, a := range g.lexemes[i+2 : end] {
		switch a.kind {
		case LParen, LBracket:
			depth++
		case RParen, RBracket:
			depth--
		case Comma:
			if depth == 0 {
				n++
			}
		}
	}
	g.emit(token.Func(name, n, l.pos))
	g.call = true
	return nil
}

// groups counts consecutive bracketed groups starting at lexeme i, or
// returns -1 if one of them is not closed.
func (g *grouper) groups(i int, open int) int {
	n := 0
	for i < len(g.lexemes) && g.lexemes[i].kind == open {
		end := g.closing(i)
		if end < 0 {
			return -1
		}
		n++
		i = end + 1
	}
	return n
}

// closing finds the lexeme closing the bracket at position i.
func (g *grouper) closing(i int) int {
	depth := 0
	for j := i; j < len(g.lexemes); j++ {
		switch g.lexemes[j].kind {
		case LParen, LBracket:
			depth++
		case RParen, RBracket:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// afterOperand is true if the lexeme before i ends an operand, making a
// following minus binary.
func (g *grouper) afterOperand(i int) bool {
	if i == 0 {
		return false
	}
	switch g.lexemes[i-1].kind {
	case Number, Letter, Ident, RParen, RBracket:
		return true
	}
	return false
}
