package autoseq

import (
	"context"
	"fmt"
	"strings"
	"sync"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/autoseq/automaton"
	"github.com/npillmayer/autoseq/compile"
	"github.com/npillmayer/autoseq/expr"
	"github.com/npillmayer/autoseq/formula"
	"github.com/npillmayer/autoseq/numsys"
	"github.com/npillmayer/autoseq/token"
)

// Prover evaluates formulas against a library of words and predicates.
// A Prover may be used by concurrent goroutines.
type Prover struct {
	mx     sync.RWMutex
	lib    *compile.Library
	system compile.NumberSystem // default number system
	opool  *pool.ObjectPool
	ctx    context.Context
}

type config struct {
	system   string
	poolSize int
}

// Option configures a Prover.
type Option func(*config)

// WithNumberSystem sets the default number system, e.g. "msd_2" (the
// default) or "lsd_10".
func WithNumberSystem(name string) Option {
	return func(c *config) {
		c.system = name
	}
}

// WithPoolSize limits the number of compilations running at the same time.
// n ≤ 0 means no limit.
func WithPoolSize(n int) Option {
	return func(c *config) {
		c.poolSize = n
	}
}

// New creates a Prover with an empty library.
func New(opts ...Option) (*Prover, error) {
	c := config{system: "msd_2", poolSize: -1}
	for _, opt := range opts {
		opt(&c)
	}
	system, err := numsys.Parse(c.system)
	if err != nil {
		return nil, err
	}
	p := &Prover{lib: compile.NewLibrary(), system: system, ctx: context.Background()}
	// Compilation contexts are short-lived; they are pooled and reset on
	// every borrow.
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return compile.NewContext(p.system, resolver{p}), nil
		})
	pconf := pool.NewDefaultPoolConfig()
	pconf.MaxTotal = -1
	if c.poolSize > 0 {
		pconf.MaxTotal = c.poolSize
		pconf.MaxIdle = c.poolSize
	}
	pconf.BlockWhenExhausted = true
	p.opool = pool.NewObjectPool(p.ctx, factory, pconf)
	return p, nil
}

// NumberSystem returns the default number system of p.
func (p *Prover) NumberSystem() string {
	return p.system.Name()
}

// AddWord registers an automatic word. It may be referenced as name[i] in
// formulas.
func (p *Prover) AddWord(name string, w *automaton.Word) {
	p.mx.Lock()
	defer p.mx.Unlock()
	p.lib.DefineWord(name, w)
}

// AddPredicate registers an automaton as a predicate. It may be referenced
// as $name(…) in formulas, with arguments bound to the tracks of m in
// track order.
func (p *Prover) AddPredicate(name string, m *automaton.Automaton) {
	p.mx.Lock()
	defer p.mx.Unlock()
	p.lib.DefinePredicate(name, m)
}

// AddNumberSystem registers a number system for ?name prefixes of formulas.
// Systems msd_k and lsd_k are always available.
func (p *Prover) AddNumberSystem(ns compile.NumberSystem) {
	p.mx.Lock()
	defer p.mx.Unlock()
	p.lib.AddNumberSystem(ns)
}

// --- Lookup -----------------------------------------------------------

// Predicate looks up a registered predicate.
func (p *Prover) Predicate(name string) (*automaton.Automaton, bool) {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.lib.Predicate(name)
}

// Word looks up a registered word.
func (p *Prover) Word(name string) (*automaton.Word, bool) {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.lib.Word(name)
}

func (p *Prover) numberSystem(name string) (compile.NumberSystem, bool) {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.lib.NumberSystem(name)
}

// --- Evaluation -------------------------------------------------------

// Result is the outcome of evaluating a formula.
type Result struct {
	Formula   string               // normalized text of the formula
	Automaton *automaton.Automaton // accepts the satisfying assignments
	Free      []string             // free variables, in track order
}

// Closed is true if the formula has no free variables.
func (r *Result) Closed() bool {
	return len(r.Free) == 0
}

// True is true for a closed formula which holds. Formulas with free
// variables are true if they hold for every assignment.
func (r *Result) True() bool {
	if v, ok := r.Automaton.Truth(); ok {
		return v
	}
	return r.Automaton.Not().IsEmpty()
}

func (r *Result) String() string {
	if r.Closed() {
		if r.True() {
			return "TRUE"
		}
		return "FALSE"
	}
	return fmt.Sprintf("%s with free variables %s, %d states",
		r.Automaton, strings.Join(r.Free, ", "), r.Automaton.States())
}

// Eval compiles a formula.
func (p *Prover) Eval(text string) (*Result, error) {
	return p.EvalContext(context.Background(), text)
}

// EvalContext compiles a formula. ctx bounds the wait for a free compilation
// context if the pool size is limited.
func (p *Prover) EvalContext(ctx context.Context, text string) (*Result, error) {
	f, err := formula.Parse(text)
	if err != nil {
		return nil, err
	}
	system := p.system
	if f.System != "" {
		var ok bool
		if system, ok = p.numberSystem(f.System); !ok {
			return nil, &compile.Error{Kind: compile.UndefinedError, Op: "?" + f.System, Pos: 0,
				Msg: "number system " + f.System}
		}
	}
	r, err := p.eval(ctx, system, f.Tokens)
	if err != nil {
		return nil, err
	}
	r.Formula = f.Source
	return r, nil
}

// EvalTokens compiles a formula given as a list of tokens in infix order,
// using the default number system.
func (p *Prover) EvalTokens(tokens []token.Token) (*Result, error) {
	return p.eval(context.Background(), p.system, tokens)
}

func (p *Prover) eval(ctx context.Context, system compile.NumberSystem, tokens []token.Token) (*Result, error) {
	o, err := p.opool.BorrowObject(ctx)
	if err != nil {
		return nil, err
	}
	cctx := o.(*compile.Context)
	defer p.releaseIntoPool(cctx)
	cctx.Reset(system, resolver{p})
	e, err := compile.Compile(cctx, tokens)
	if err != nil {
		CT().Infof("compilation failed: %v", err)
		return nil, err
	}
	m, ok := e.(*expr.Automaton)
	if !ok {
		return nil, &compile.Error{Kind: compile.TypeError, Pos: -1,
			Msg: "formula denotes " + expr.Describe(e) + ", not a truth value"}
	}
	CT().Debugf("compiled to %s", m.M)
	return &Result{Formula: m.Text, Automaton: m.M, Free: m.M.Labels()}, nil
}

func (p *Prover) releaseIntoPool(ctx *compile.Context) {
	ctx.Reset(p.system, resolver{p})
	_ = p.opool.ReturnObject(p.ctx, ctx)
}

// Def evaluates a formula and registers the result as a predicate. params
// fixes the order of the predicate's parameters and must name the free
// variables of the formula; without params the track order of the result
// is used.
func (p *Prover) Def(name, text string, params ...string) (*Result, error) {
	r, err := p.Eval(text)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		m, err := r.Automaton.Reorder(params)
		if err != nil {
			return nil, err
		}
		r.Automaton, r.Free = m, m.Labels()
	}
	p.AddPredicate(name, r.Automaton)
	CT().Infof("defined $%s(%s)", name, strings.Join(r.Free, ", "))
	return r, nil
}

// resolver adapts a Prover to interface compile.Resolver. The library
// is locked for every lookup.
type resolver struct {
	p *Prover
}

func (r resolver) Predicate(name string) (*automaton.Automaton, bool) {
	return r.p.Predicate(name)
}

func (r resolver) Word(name string) (*automaton.Word, bool) {
	return r.p.Word(name)
}

func (r resolver) NumberSystem(name string) (compile.NumberSystem, bool) {
	return r.p.numberSystem(name)
}
