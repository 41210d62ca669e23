package compile

import (
	"fmt"
	"strings"
)

// ErrorKind classifies compilation errors.
type ErrorKind int

// Kinds of compilation errors.
const (
	SyntaxError     ErrorKind = iota + 1 // unbalanced parentheses, leftover operands
	ArityError                           // too few operands on the stack
	TypeError                            // operand of the wrong expression variant
	ArithmeticError                      // division by zero, overflow, non-linear terms
	UndefinedError                       // unknown predicate, word or number system
	InternalError                        // unknown token kinds or operators
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case ArityError:
		return "arity error"
	case TypeError:
		return "type error"
	case ArithmeticError:
		return "arithmetic error"
	case UndefinedError:
		return "undefined name"
	case InternalError:
		return "internal error"
	}
	return "error"
}

// Error is an error raised during compilation. It is tagged with the
// operator and the source position of the token being processed.
type Error struct {
	Kind ErrorKind
	Op   string // operator or name, may be empty
	Pos  int    // source position, -1 if unknown
	Msg  string
	Err  error // underlying error, may be nil
}

// Sentinels to match error kinds with errors.Is.
var (
	ErrSyntax     = &Error{Kind: SyntaxError}
	ErrArity      = &Error{Kind: ArityError}
	ErrType       = &Error{Kind: TypeError}
	ErrArithmetic = &Error{Kind: ArithmeticError}
	ErrUndefined  = &Error{Kind: UndefinedError}
	ErrInternal   = &Error{Kind: InternalError}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Pos >= 0 {
		fmt.Fprintf(&b, " at position %d", e.Pos)
	}
	if e.Op != "" {
		fmt.Fprintf(&b, " (%s)", e.Op)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of equal kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, op string, pos int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, op string, pos int, err error) *Error {
	return &Error{Kind: kind, Op: op, Pos: pos, Err: err}
}
