package compile

import (
	"errors"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/autoseq/automaton"
	"github.com/npillmayer/autoseq/expr"
	"github.com/npillmayer/autoseq/numsys"
	"github.com/npillmayer/autoseq/token"
)

// Compile reduces a token list in infix order and evaluates it.
func Compile(ctx *Context, tokens []token.Token) (expr.Expression, error) {
	postfix, err := Reduce(tokens)
	if err != nil {
		return nil, err
	}
	return Evaluate(ctx, postfix)
}

// Evaluate interprets a token list in postfix order. The formula must
// reduce to exactly one expression.
func Evaluate(ctx *Context, postfix []token.Token) (expr.Expression, error) {
	ev := &evaluator{ctx: ctx, stack: arraystack.New()}
	for _, t := range postfix {
		if err := ev.apply(t); err != nil {
			T().Errorf("%v", err)
			return nil, err
		}
	}
	switch ev.stack.Size() {
	case 0:
		return nil, newError(SyntaxError, "", -1, "empty formula")
	case 1:
		v, _ := ev.stack.Pop()
		e := v.(expr.Expression)
		T().Infof("evaluated %s", e)
		return e, nil
	}
	return nil, newError(SyntaxError, "", -1, "%d expressions left over, missing operator", ev.stack.Size())
}

type evaluator struct {
	ctx   *Context
	stack *arraystack.Stack
}

func (ev *evaluator) push(e expr.Expression) {
	ev.stack.Push(e)
}

// pop removes the top n expressions and returns them in the order they
// were pushed.
func (ev *evaluator) pop(n int) []expr.Expression {
	args := make([]expr.Expression, n)
	for i := n - 1; i >= 0; i-- {
		v, _ := ev.stack.Pop()
		args[i] = v.(expr.Expression)
	}
	return args
}

func (ev *evaluator) apply(t token.Token) error {
	if ev.stack.Size() < t.Arity() {
		return newError(ArityError, t.String(), t.Pos(),
			"operator requires %d operands, have %d", t.Arity(), ev.stack.Size())
	}
	T().Debugf("apply %v at %d", t, t.Pos())
	switch t.Kind() {
	case token.AlphabetLetter:
		ev.push(&expr.AlphabetLetter{Value: t.Value()})
	case token.NumberLiteral:
		ev.push(&expr.NumberLiteral{Value: t.Value(), System: t.System()})
	case token.Variable:
		ev.push(&expr.Variable{Name: t.Op()})
	case token.ArithmeticOp:
		return ev.arithmetic(t)
	case token.RelationalOp:
		return ev.relation(t)
	case token.LogicalOp:
		return ev.logical(t)
	case token.FunctionApp:
		return ev.applyPredicate(t)
	case token.WordApp:
		return ev.applyWord(t)
	default:
		return newError(InternalError, t.String(), t.Pos(), "unexpected token of kind %s", t.Kind())
	}
	return nil
}

// --- Helpers ---------------------------------------------------------------

// operand converts variables, arithmetic terms and constants into operands
// for a number system.
func (ev *evaluator) operand(t token.Token, e expr.Expression) (numsys.Operand, error) {
	switch x := e.(type) {
	case *expr.Variable:
		return numsys.Var(x.Name), nil
	case *expr.Arithmetic:
		return numsys.Var(x.ID), nil
	case *expr.NumberLiteral:
		return numsys.Const(x.Value), nil
	case *expr.AlphabetLetter:
		return numsys.Const(x.Value), nil
	}
	return numsys.Operand{}, typeError(t, e)
}

// system selects the number system for an operation: the one of the first
// number literal with an explicit system, or the default.
func (ev *evaluator) system(t token.Token, args ...expr.Expression) (NumberSystem, error) {
	name := ""
	for _, a := range args {
		if n, ok := a.(*expr.NumberLiteral); ok && n.System != "" {
			name = n.System
			break
		}
	}
	ns, ok := ev.ctx.numberSystem(name)
	if !ok {
		return nil, newError(UndefinedError, t.String(), t.Pos(), "number system %q", name)
	}
	return ns, nil
}

// absorb conjoins the side-conditions of arithmetic operands to m and
// projects away their identifiers.
func (ev *evaluator) absorb(t token.Token, m *automaton.Automaton, args ...expr.Expression) (*automaton.Automaton, error) {
	var ids []string
	for _, a := range args {
		var side *automaton.Automaton
		switch x := a.(type) {
		case *expr.Arithmetic:
			side = x.Side
			ids = append(ids, x.ID)
		case *expr.Word:
			side = x.Side
			ids = append(ids, x.Quantify...)
		default:
			continue
		}
		var err error
		if m, err = m.And(side); err != nil {
			return nil, automatonError(t, err)
		}
	}
	return m.Quantify(ids...), nil
}

func typeError(t token.Token, e expr.Expression) *Error {
	return newError(TypeError, t.String(), t.Pos(), "%s %s not allowed here", expr.Describe(e), e)
}

// automatonError wraps errors of the automaton algebra and of number systems.
func automatonError(t token.Token, err error) *Error {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr
	}
	switch {
	case errors.Is(err, automaton.ErrDivisionByZero),
		errors.Is(err, numsys.ErrDivisionByZero),
		errors.Is(err, numsys.ErrNonlinear),
		errors.Is(err, numsys.ErrUnsupported):
		return wrapError(ArithmeticError, t.String(), t.Pos(), err)
	case errors.Is(err, automaton.ErrUnknownOperator):
		return wrapError(InternalError, t.String(), t.Pos(), err)
	}
	return wrapError(TypeError, t.String(), t.Pos(), err)
}
