package compile

import (
	"strconv"

	"github.com/npillmayer/autoseq/automaton"
	"github.com/npillmayer/autoseq/numsys"
)

// NumberSystem synthesizes automata for arithmetic and comparisons.
// *numsys.Base implements it.
type NumberSystem interface {
	Name() string
	Arithmetic(lhs, rhs numsys.Operand, result string, op string) (*automaton.Automaton, error)
	Comparison(lhs, rhs numsys.Operand, op string) (*automaton.Automaton, error)
	Constant(n int, label string) (*automaton.Automaton, error)
}

// Resolver looks up named predicates, words and number systems.
type Resolver interface {
	Predicate(name string) (*automaton.Automaton, bool)
	Word(name string) (*automaton.Word, bool)
	NumberSystem(name string) (NumberSystem, bool)
}

// Library is a Resolver backed by maps. It is not safe for concurrent
// modification.
type Library struct {
	predicates map[string]*automaton.Automaton
	words      map[string]*automaton.Word
	systems    map[string]NumberSystem
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		predicates: make(map[string]*automaton.Automaton),
		words:      make(map[string]*automaton.Word),
		systems:    make(map[string]NumberSystem),
	}
}

// DefinePredicate registers a predicate. Its parameters are the tracks of m
// in track order.
func (lib *Library) DefinePredicate(name string, m *automaton.Automaton) {
	lib.predicates[name] = m
}

// DefineWord registers an automatic word.
func (lib *Library) DefineWord(name string, w *automaton.Word) {
	lib.words[name] = w
}

// AddNumberSystem registers a number system under its name.
func (lib *Library) AddNumberSystem(ns NumberSystem) {
	lib.systems[ns.Name()] = ns
}

// Predicate is part of interface Resolver.
func (lib *Library) Predicate(name string) (*automaton.Automaton, bool) {
	m, ok := lib.predicates[name]
	return m, ok
}

// Word is part of interface Resolver.
func (lib *Library) Word(name string) (*automaton.Word, bool) {
	w, ok := lib.words[name]
	return w, ok
}

// NumberSystem is part of interface Resolver. Systems not registered are
// created from their name, if possible.
func (lib *Library) NumberSystem(name string) (NumberSystem, bool) {
	if ns, ok := lib.systems[name]; ok {
		return ns, true
	}
	if b, err := numsys.Parse(name); err == nil {
		return b, true
	}
	return nil, false
}

// FreshPrefix starts every fresh identifier. Variables of formulas never
// start with it.
const FreshPrefix = "#"

// Context holds the state of a compilation: the default number system, the
// resolver for names and the counter for fresh identifiers.
// A Context must not be shared between concurrent compilations.
type Context struct {
	system  NumberSystem
	names   Resolver
	counter int
}

// NewContext creates a compilation context. names may be nil.
func NewContext(system NumberSystem, names Resolver) *Context {
	if names == nil {
		names = NewLibrary()
	}
	return &Context{system: system, names: names}
}

// Fresh returns an identifier unique within the context.
func (ctx *Context) Fresh() string {
	ctx.counter++
	return FreshPrefix + strconv.Itoa(ctx.counter)
}

// Reset prepares a context for another compilation.
func (ctx *Context) Reset(system NumberSystem, names Resolver) {
	if names == nil {
		names = NewLibrary()
	}
	ctx.system, ctx.names, ctx.counter = system, names, 0
}

// System returns the default number system.
func (ctx *Context) System() NumberSystem {
	return ctx.system
}

// numberSystem resolves a number system by name; "" is the default.
func (ctx *Context) numberSystem(name string) (NumberSystem, bool) {
	if name == "" || name == ctx.system.Name() {
		return ctx.system, true
	}
	return ctx.names.NumberSystem(name)
}
