package fst

import (
	"errors"
	"fmt"
	"strings"
)

// StateID identifies a state within a transducer. The start state is always 0.
type StateID int

// Start is the ID of the start state of every transducer.
const Start StateID = 0

// Arc is a weighted transition in:out. If Class is set, the arc admits every
// input symbol of the class and In is ignored; an Out of Identity then echoes
// the input symbol.
type Arc struct {
	In, Out string
	Class   *SymbolClass
	Weight  float64
	Target  StateID
}

func (arc Arc) String() string {
	in := arc.In
	if arc.Class != nil {
		in = arc.Class.String()
	}
	return fmt.Sprintf("-%s:%s/%g-> %d", in, arc.Out, arc.Weight, arc.Target)
}

// State is a transducer state with its outgoing arcs.
type State struct {
	Arcs        []Arc
	Final       bool
	FinalWeight float64
}

// Transducer is an immutable weighted finite-state transducer.
// Create one with a Builder or with the combinators of this package.
type Transducer struct {
	name     string
	states   []State
	alphabet *Alphabet
}

// ErrMalformed is returned if a transducer under construction is inconsistent.
var ErrMalformed = errors.New("malformed transducer")

// Name returns the name of the transducer, which may be empty.
func (t *Transducer) Name() string {
	return t.name
}

// StateCount returns the number of states.
func (t *Transducer) StateCount() int {
	return len(t.states)
}

// State returns state s. Clients must treat the arcs of the returned state as
// read-only.
func (t *Transducer) State(s StateID) State {
	return t.states[s]
}

// Alphabet returns the alphabet of t.
func (t *Transducer) Alphabet() *Alphabet {
	return t.alphabet
}

// ArcCount returns the total number of arcs.
func (t *Transducer) ArcCount() int {
	n := 0
	for _, s := range t.states {
		n += len(s.Arcs)
	}
	return n
}

// WithName returns a copy of t with a new name.
func (t *Transducer) WithName(name string) *Transducer {
	c := t.copy()
	c.name = name
	return c
}

// WithSymbols returns a copy of t with symbols inserted into its alphabet.
// The states of t are unchanged.
func (t *Transducer) WithSymbols(syms ...string) *Transducer {
	c := t.copy()
	c.alphabet = t.alphabet.With(syms...)
	return c
}

// Dump is a debugging helper.
func (t *Transducer) Dump() {
	tracer().Debugf("--- transducer %q ------------------", t.name)
	for id, s := range t.states {
		f := ""
		if s.Final {
			f = fmt.Sprintf(" final/%g", s.FinalWeight)
		}
		tracer().Debugf("state %03d%s", id, f)
		for _, arc := range s.Arcs {
			tracer().Debugf("      %s", arc)
		}
	}
	tracer().Debugf("alphabet = %s", t.alphabet)
}

func (t *Transducer) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(fst %q |%d|)", t.name, len(t.states))
	return b.String()
}

// copy creates a deep copy of the state vector. Symbol classes are shared, as
// they are immutable.
func (t *Transducer) copy() *Transducer {
	c := &Transducer{
		name:     t.name,
		states:   make([]State, len(t.states)),
		alphabet: t.alphabet,
	}
	for i, s := range t.states {
		c.states[i] = State{
			Arcs:        append([]Arc(nil), s.Arcs...),
			Final:       s.Final,
			FinalWeight: s.FinalWeight,
		}
	}
	return c
}

// --- Builder ---------------------------------------------------------------

// Builder constructs a transducer state by state. A new builder has a single
// (non-final) start state. After calling Transducer() the builder must not be
// used any more.
type Builder struct {
	t    *Transducer
	syms []string
}

// NewBuilder creates a builder for a transducer with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		t: &Transducer{
			name:   name,
			states: []State{{}},
		},
	}
}

// AddState adds a new state and returns its ID.
func (b *Builder) AddState() StateID {
	b.t.states = append(b.t.states, State{})
	return StateID(len(b.t.states) - 1)
}

// AddArc adds an arc leaving state from.
func (b *Builder) AddArc(from StateID, arc Arc) *Builder {
	b.t.states[from].Arcs = append(b.t.states[from].Arcs, arc)
	return b
}

// SetFinal makes state s final with weight w.
func (b *Builder) SetFinal(s StateID, w float64) *Builder {
	b.t.states[s].Final = true
	b.t.states[s].FinalWeight = w
	return b
}

// AddSymbols adds symbols to the alphabet which do not occur on any arc.
func (b *Builder) AddSymbols(syms ...string) *Builder {
	b.syms = append(b.syms, syms...)
	return b
}

// Transducer validates and returns the constructed transducer.
func (b *Builder) Transducer() (*Transducer, error) {
	t := b.t
	if err := t.validate(); err != nil {
		return nil, err
	}
	t.alphabet = collectAlphabet(t.states).With(b.syms...)
	b.t = nil
	return t, nil
}

func (t *Transducer) validate() error {
	for id, s := range t.states {
		for _, arc := range s.Arcs {
			if arc.Target < 0 || int(arc.Target) >= len(t.states) {
				return fmt.Errorf("%w: arc %s of state %d targets unknown state", ErrMalformed, arc, id)
			}
			if (arc.Class == nil && arc.In == "") || arc.Out == "" {
				return fmt.Errorf("%w: arc of state %d has empty label", ErrMalformed, id)
			}
			if name, ok := CalledName(arc.In); ok && strings.TrimSpace(name) == "" {
				return fmt.Errorf("%w: call without a name at state %d", ErrMalformed, id)
			}
		}
	}
	return nil
}

func collectAlphabet(states []State) *Alphabet {
	a := NewAlphabet()
	for _, s := range states {
		for _, arc := range s.Arcs {
			if arc.Class != nil {
				a.add(arc.Class.members.Symbols()...)
			} else {
				a.add(arc.In)
			}
			a.add(arc.Out)
		}
	}
	return a
}
