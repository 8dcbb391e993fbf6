package fst

// Combinators for transducers. All of them leave their arguments untouched
// and return a fresh transducer without a name.

// --- Primitive transducers -------------------------------------------------

// Symbol creates a transducer accepting exactly one arc in:out.
func Symbol(in, out string) *Transducer {
	t := &Transducer{states: []State{
		{Arcs: []Arc{{In: in, Out: out, Target: 1}}},
		{Final: true},
	}}
	t.alphabet = collectAlphabet(t.states)
	return t
}

// EpsilonTransducer creates a transducer accepting the empty string only.
func EpsilonTransducer() *Transducer {
	return &Transducer{
		states:   []State{{Final: true}},
		alphabet: NewAlphabet(),
	}
}

// Marker creates a transducer which emits a control symbol without
// consuming input.
func Marker(sym string) *Transducer {
	return Symbol(Epsilon, sym)
}

// InsertCall creates a transducer which calls (inserts) the transducer with
// the given name at match time.
func InsertCall(name string) *Transducer {
	c := CallSymbol(name)
	return Symbol(c, c)
}

// classTransducer creates a one-arc acceptor for a symbol class.
func classTransducer(class *SymbolClass) *Transducer {
	t := &Transducer{states: []State{
		{Arcs: []Arc{{Class: class, Out: Identity, Target: 1}}},
		{Final: true},
	}}
	t.alphabet = collectAlphabet(t.states).With(Identity)
	return t
}

// List creates an acceptor for any single ordinary symbol of t's alphabet.
func List(t *Transducer) *Transducer {
	return classTransducer(NewSymbolClass(NewAlphabet(t.alphabet.Ordinary()...), false))
}

// ExcList creates an acceptor for any single symbol which is not an ordinary
// symbol of t's alphabet.
func ExcList(t *Transducer) *Transducer {
	return classTransducer(NewSymbolClass(NewAlphabet(t.alphabet.Ordinary()...), true))
}

// --- Rational operations ---------------------------------------------------

// appendStates copies the states of t into states, shifting all targets by the
// current length. It returns the extended slice and the offset of t's start.
func appendStates(states []State, t *Transducer) ([]State, StateID) {
	offset := StateID(len(states))
	for _, s := range t.states {
		arcs := make([]Arc, len(s.Arcs))
		for i, arc := range s.Arcs {
			arc.Target += offset
			arcs[i] = arc
		}
		states = append(states, State{Arcs: arcs, Final: s.Final, FinalWeight: s.FinalWeight})
	}
	return states, offset
}

// Union creates a transducer accepting the union of the languages of ts.
func Union(ts ...*Transducer) *Transducer {
	states := []State{{}}
	alpha := NewAlphabet()
	for _, t := range ts {
		var start StateID
		states, start = appendStates(states, t)
		states[0].Arcs = append(states[0].Arcs, Arc{In: Epsilon, Out: Epsilon, Target: start})
		alpha = alpha.Union(t.alphabet)
	}
	tracer().Debugf("union of %d transducers has %d states", len(ts), len(states))
	return &Transducer{states: states, alphabet: alpha}
}

// Concat creates the concatenation of ts, in order.
func Concat(ts ...*Transducer) *Transducer {
	if len(ts) == 0 {
		return EpsilonTransducer()
	}
	r := ts[0].copy()
	r.name = ""
	for _, t := range ts[1:] {
		prevLen := len(r.states)
		var start StateID
		r.states, start = appendStates(r.states, t)
		for i := 0; i < prevLen; i++ {
			s := &r.states[i]
			if s.Final {
				s.Arcs = append(s.Arcs, Arc{In: Epsilon, Out: Epsilon, Weight: s.FinalWeight, Target: start})
				s.Final, s.FinalWeight = false, 0
			}
		}
		r.alphabet = r.alphabet.Union(t.alphabet)
	}
	return r
}

// Plus creates the Kleene-plus (one or more repetitions) of t.
func Plus(t *Transducer) *Transducer {
	r := t.copy()
	r.name = ""
	for i := range r.states {
		s := &r.states[i]
		if s.Final {
			s.Arcs = append(s.Arcs, Arc{In: Epsilon, Out: Epsilon, Weight: s.FinalWeight, Target: Start})
		}
	}
	return r
}

// SetFinalWeights creates a copy of t where every final state has weight w.
func SetFinalWeights(t *Transducer, w float64) *Transducer {
	r := t.copy()
	r.name = ""
	for i := range r.states {
		if r.states[i].Final {
			r.states[i].FinalWeight = w
		}
	}
	return r
}

// --- Context and delimiters ------------------------------------------------

// LeftContext wraps t into context markers, asserting that t matches the input
// immediately left of the current position without consuming it. t is read
// right-to-left.
func LeftContext(t *Transducer) *Transducer {
	return Concat(Marker(LCEntry), t, Marker(LCExit))
}

// RightContext wraps t into context markers, asserting that t matches the
// input immediately right of the current position without consuming it.
func RightContext(t *Transducer) *Transducer {
	return Concat(Marker(RCEntry), t, Marker(RCExit))
}

// AddDelimiters brackets t with the match delimiters required for
// transducers containing context conditions.
func AddDelimiters(t *Transducer) *Transducer {
	return Concat(Marker(Entry), t, Marker(Exit))
}
