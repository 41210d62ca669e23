package formula

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
	"golang.org/x/text/unicode/norm"
)

// Lexeme categories returned by Lexer.NextToken.
const (
	Quantifier = iota + 1 // E, A or I with its variable list
	Ident                 // variable
	WordName              // automatic word
	PredicateName         // $name
	System                // ?msd_k
	Number
	Letter // @n
	ArithOp
	RelOp
	LogicOp
	LParen
	RParen
	LBracket
	RBracket
	Comma
)

var lexemeNames = map[int]string{
	Quantifier: "quantifier", Ident: "identifier", WordName: "word", PredicateName: "predicate",
	System: "number system", Number: "number", Letter: "letter", ArithOp: "arithmetic operator",
	RelOp: "relation", LogicOp: "logical operator", LParen: "(", RParen: ")",
	LBracket: "[", RBracket: "]", Comma: ",",
}

// LexemeString returns a readable name for a lexeme category.
func LexemeString(l int) string {
	if l == scanner.EOF {
		return "EOF"
	}
	if s, ok := lexemeNames[l]; ok {
		return s
	}
	return fmt.Sprintf("lexeme(%d)", l)
}

const ws = `( |\t|\n|\r)`

var literals = []struct {
	lit  string
	kind int
}{
	{"+", ArithOp}, {"-", ArithOp}, {"*", ArithOp}, {"/", ArithOp}, {"_", ArithOp},
	{"=", RelOp}, {"!=", RelOp}, {"<", RelOp}, {">", RelOp}, {"<=", RelOp}, {">=", RelOp},
	{"~", LogicOp}, {"`", LogicOp}, {"&", LogicOp}, {"|", LogicOp}, {"^", LogicOp},
	{"=>", LogicOp}, {"<=>", LogicOp},
	{"(", LParen}, {")", RParen}, {"[", LBracket}, {"]", RBracket}, {",", Comma},
}

var (
	lexOnce  sync.Once
	lexDFA   *lexmachine.Lexer
	lexError error
)

// Words are added before quantifiers: on matches of equal length the
// earlier pattern wins.
func compiledLexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`[A-Z][A-Za-z0-9_]*`), emit(WordName))
		lx.Add([]byte(`(E|A|I)`+ws+`*[a-z][a-z0-9_]*(`+ws+`*,`+ws+`*[a-z][a-z0-9_]*)*`), emit(Quantifier))
		lx.Add([]byte(`[a-z][a-z0-9_]*`), emit(Ident))
		lx.Add([]byte(`\$[a-zA-Z_][a-zA-Z0-9_]*`), emit(PredicateName))
		lx.Add([]byte(`\?[a-z]+[_][a-z0-9]+`), emit(System))
		lx.Add([]byte(`[0-9]+`), emit(Number))
		lx.Add([]byte(`\@(\-)?[0-9]+`), emit(Letter))
		for _, l := range literals {
			r := `\` + strings.Join(strings.Split(l.lit, ""), `\`)
			lx.Add([]byte(r), emit(l.kind))
		}
		lx.Add([]byte(ws+`+`), skip)
		if lexError = lx.Compile(); lexError == nil {
			lexDFA = lx
		}
	})
	return lexDFA, lexError
}

func emit(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(kind, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

var operators = strings.NewReplacer(
	"≤", "<=", "≥", ">=", "≠", "!=", "¬", "~", "∧", "&", "∨", "|", "⊕", "^",
	"⇒", "=>", "→", "=>", "⇔", "<=>", "↔", "<=>", "∃", "E ", "∀", "A ",
	"−", "-", "×", "*", "÷", "/", "·", "*",
)

// Normalize folds input to NFKC and replaces Unicode operators by their
// ASCII spelling.
func Normalize(input string) string {
	return operators.Replace(norm.NFKC.String(input))
}

// Lexer splits a formula into lexemes. It implements scanner.Tokenizer.
type Lexer struct {
	input   string
	scan    *lexmachine.Scanner
	onError func(error)
	done    bool
}

// NewLexer creates a lexer for a formula. The input is normalized first.
func NewLexer(input string) (*Lexer, error) {
	lx, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	input = Normalize(input)
	scan, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Lexer{input: input, scan: scan}, nil
}

// Input returns the normalized text the lexer operates on.
func (l *Lexer) Input() string {
	return l.input
}

// SetErrorHandler sets a function which receives errors for unrecognized
// input. The lexer skips the offending text and continues.
func (l *Lexer) SetErrorHandler(h func(error)) {
	l.onError = h
}

// NextToken returns the next lexeme: its category, its text, its position
// and its length. At the end of input it returns scanner.EOF.
// Parameter expected is ignored.
func (l *Lexer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	for !l.done {
		tok, err, eos := l.scan.Next()
		if eos {
			l.done = true
			break
		}
		if err != nil {
			ui, ok := err.(*machines.UnconsumedInput)
			if !ok {
				l.done = true
				l.error(err)
				break
			}
			next := ui.FailTC
			if next <= ui.StartTC {
				next = ui.StartTC + 1
			}
			l.error(&LexError{Pos: ui.StartTC, Text: l.input[ui.StartTC:next]})
			l.scan.TC = next
			continue
		}
		t := tok.(*lexmachine.Token)
		T().Debugf("lexeme %s %q at %d", LexemeString(t.Type), t.Lexeme, t.TC)
		return t.Type, t.Value, uint64(t.TC), uint64(len(t.Lexeme))
	}
	return scanner.EOF, "", uint64(len(l.input)), 0
}

func (l *Lexer) error(err error) {
	T().Errorf("formula: %v", err)
	if l.onError != nil {
		l.onError(err)
	}
}

// LexError reports input which does not start any lexeme.
type LexError struct {
	Pos  int
	Text string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected input %q at position %d", e.Text, e.Pos)
}

var _ scanner.Tokenizer = (*Lexer)(nil)
