package compile

import (
	"fmt"
	"strings"

	"github.com/npillmayer/autoseq/automaton"
	"github.com/npillmayer/autoseq/expr"
	"github.com/npillmayer/autoseq/numsys"
	"github.com/npillmayer/autoseq/token"
)

// binding collects the renaming of parameters to arguments of a predicate
// or word application, together with the side-conditions for arguments
// which are not plain variables.
type binding struct {
	ev     *evaluator
	tok    token.Token
	rename map[string]string
	used   map[string]bool
	side   *automaton.Automaton
	fresh  []string
}

func (ev *evaluator) newBinding(t token.Token) *binding {
	return &binding{
		ev:     ev,
		tok:    t,
		rename: make(map[string]string),
		used:   make(map[string]bool),
		side:   automaton.True(),
	}
}

func (b *binding) conjoin(m *automaton.Automaton) error {
	side, err := b.side.And(m)
	if err != nil {
		return automatonError(b.tok, err)
	}
	b.side = side
	return nil
}

// variable binds param to a variable. A variable occurring more than once
// is bound to a fresh identifier equal to it.
func (b *binding) variable(param, name string) error {
	if !b.used[name] {
		b.used[name] = true
		b.rename[param] = name
		return nil
	}
	ns, err := b.ev.system(b.tok)
	if err != nil {
		return err
	}
	c := b.ev.ctx.Fresh()
	eq, err := ns.Comparison(numsys.Var(name), numsys.Var(c), "=")
	if err != nil {
		return automatonError(b.tok, err)
	}
	b.rename[param] = c
	b.fresh = append(b.fresh, c)
	return b.conjoin(eq)
}

// bind binds parameter param to argument arg.
func (b *binding) bind(param string, arg expr.Expression) error {
	switch a := arg.(type) {
	case *expr.Variable:
		return b.variable(param, a.Name)
	case *expr.Arithmetic:
		b.rename[param] = a.ID
		b.used[a.ID] = true
		b.fresh = append(b.fresh, a.ID)
		return b.conjoin(a.Side)
	case *expr.NumberLiteral, *expr.AlphabetLetter:
		n, _ := expr.Constant(a)
		ns, err := b.ev.system(b.tok, a)
		if err != nil {
			return err
		}
		c := b.ev.ctx.Fresh()
		m, err := ns.Constant(n, c)
		if err != nil {
			return automatonError(b.tok, err)
		}
		b.rename[param] = c
		b.used[c] = true
		b.fresh = append(b.fresh, c)
		return b.conjoin(m)
	case *expr.Automaton:
		// a formula with a single free variable constrains that variable
		labels := a.M.Labels()
		if len(labels) != 1 {
			return newError(TypeError, b.tok.String(), b.tok.Pos(),
				"formula argument %s must have exactly one free variable, has %d", a, len(labels))
		}
		if err := b.variable(param, labels[0]); err != nil {
			return err
		}
		return b.conjoin(a.M)
	}
	return typeError(b.tok, arg)
}

// args binds the parameters of an application to the arguments on the stack.
func (b *binding) args(params []string) ([]expr.Expression, error) {
	t := b.tok
	if len(params) != t.Arity() {
		return nil, newError(ArityError, t.String(), t.Pos(),
			"%s expects %d arguments, have %d", t.Op(), len(params), t.Arity())
	}
	args := b.ev.pop(t.Arity())
	for i, p := range params {
		if err := b.bind(p, args[i]); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func joinArgs(args []expr.Expression, open, sep, close string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return open + strings.Join(parts, sep) + close
}

// applyPredicate applies a named predicate to its arguments. Parameters are
// the tracks of the predicate's automaton, in track order.
func (ev *evaluator) applyPredicate(t token.Token) error {
	callee, ok := ev.ctx.names.Predicate(t.Op())
	if !ok {
		return newError(UndefinedError, t.String(), t.Pos(), "predicate $%s", t.Op())
	}
	b := ev.newBinding(t)
	args, err := b.args(callee.Labels())
	if err != nil {
		return err
	}
	m, err := callee.Rename(b.rename)
	if err != nil {
		return automatonError(t, err)
	}
	if m, err = m.And(b.side); err != nil {
		return automatonError(t, err)
	}
	ev.push(&expr.Automaton{
		M:    m.Quantify(b.fresh...),
		Text: fmt.Sprintf("$%s%s", t.Op(), joinArgs(args, "(", ",", ")")),
	})
	return nil
}

// applyWord applies a named automatic word to its indices. The bindings
// stay attached to the resulting word expression until it is compared.
func (ev *evaluator) applyWord(t token.Token) error {
	callee, ok := ev.ctx.names.Word(t.Op())
	if !ok {
		return newError(UndefinedError, t.String(), t.Pos(), "word %s", t.Op())
	}
	b := ev.newBinding(t)
	args, err := b.args(callee.Labels())
	if err != nil {
		return err
	}
	w, err := callee.Rename(b.rename)
	if err != nil {
		return automatonError(t, err)
	}
	ev.push(&expr.Word{
		W:        w,
		Side:     b.side,
		Quantify: b.fresh,
		Text:     t.Op() + joinArgs(args, "[", "][", "]"),
	})
	return nil
}
