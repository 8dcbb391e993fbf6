package runtime

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pmtok/fst"
)

// ErrSymbolMissing is returned when a machine is compiled in harmonized mode
// and uses a symbol which is not in the container's symbol table.
var ErrSymbolMissing = errors.New("symbol missing from symbol table")

type arcKind uint8

const (
	arcSymbol   arcKind = iota // consume one known symbol
	arcClass                   // consume one symbol admitted by a symbol class
	arcUnknown                 // consume one symbol outside of the alphabet
	arcEpsilon                 // consume nothing
	arcBoundary                // assert an input edge
	arcCall                    // insert a named machine
	arcLCEntry
	arcLCExit
	arcRCEntry
	arcRCExit
)

// mArc is the compiled form of an fst.Arc.
type mArc struct {
	kind   arcKind
	in     SymbolID
	class  *fst.SymbolClass
	out    string // empty for no output
	echo   bool   // output the consumed input symbol
	mark   bool   // output an input mark
	callee string
	weight float64
	target int
}

type mState struct {
	arcs        []mArc
	final       bool
	finalWeight float64
}

// Machine is a transducer compiled for matching. Machines are read-only and
// may be shared between concurrent matches.
type Machine struct {
	name   string
	states []mState
	symtab *SymbolTable
}

// Name returns the name of the machine.
func (m *Machine) Name() string {
	return m.name
}

// StateCount returns the number of states of m.
func (m *Machine) StateCount() int {
	return len(m.states)
}

// Callees returns the names of all machines m inserts.
func (m *Machine) Callees() []string {
	var names []string
	seen := make(map[string]bool)
	for _, s := range m.states {
		for _, arc := range s.arcs {
			if arc.kind == arcCall && !seen[arc.callee] {
				seen[arc.callee] = true
				names = append(names, arc.callee)
			}
		}
	}
	return names
}

func (m *Machine) String() string {
	return fmt.Sprintf("<machine %s |%d|>", m.name, len(m.states))
}

// Compile translates t into a machine, using symbol IDs of symtab.
// If harmonized is set, every symbol of t must already be present in symtab,
// otherwise an error wrapping ErrSymbolMissing is returned. If harmonized is
// not set, missing symbols are defined.
func Compile(t *fst.Transducer, symtab *SymbolTable, harmonized bool) (*Machine, error) {
	for _, sym := range t.Alphabet().Symbols() {
		if harmonized {
			if symtab.ResolveSymbol(sym) == NoSymbol {
				return nil, fmt.Errorf("%w: %q of machine %q", ErrSymbolMissing, sym, t.Name())
			}
			continue
		}
		symtab.DefineSymbol(sym)
	}
	m := &Machine{
		name:   t.Name(),
		states: make([]mState, t.StateCount()),
		symtab: symtab,
	}
	for s := range m.states {
		st := t.State(fst.StateID(s))
		ms := mState{final: st.Final, finalWeight: st.FinalWeight}
		ms.arcs = make([]mArc, 0, len(st.Arcs))
		for _, arc := range st.Arcs {
			ma, err := compileArc(arc, symtab)
			if err != nil {
				return nil, fmt.Errorf("machine %q, state %d: %w", t.Name(), s, err)
			}
			ms.arcs = append(ms.arcs, ma)
		}
		m.states[s] = ms
	}
	tracer().Debugf("compiled %s", m)
	return m, nil
}

func compileArc(arc fst.Arc, symtab *SymbolTable) (mArc, error) {
	ma := mArc{weight: arc.Weight, target: int(arc.Target), in: NoSymbol}
	switch arc.Out {
	case fst.Epsilon, fst.Boundary, fst.Entry, fst.Exit,
		fst.LCEntry, fst.LCExit, fst.RCEntry, fst.RCExit:
		// no output
	case fst.Identity, fst.Unknown:
		ma.echo = true
	case fst.InputMark:
		ma.mark = true
	default:
		if _, isCall := fst.CalledName(arc.Out); !isCall {
			ma.out = arc.Out
		}
	}
	if arc.Class != nil {
		ma.kind = arcClass
		ma.class = arc.Class
		return ma, nil
	}
	if name, ok := fst.CalledName(arc.In); ok {
		ma.kind, ma.callee = arcCall, name
		ma.out, ma.echo, ma.mark = "", false, false
		return ma, nil
	}
	switch arc.In {
	case fst.Epsilon:
		ma.kind = arcEpsilon
		switch arc.Out {
		case fst.LCEntry:
			ma.kind = arcLCEntry
		case fst.LCExit:
			ma.kind = arcLCExit
		case fst.RCEntry:
			ma.kind = arcRCEntry
		case fst.RCExit:
			ma.kind = arcRCExit
		}
		if ma.echo {
			return ma, fmt.Errorf("epsilon arc cannot echo its input")
		}
	case fst.Boundary:
		ma.kind = arcBoundary
		ma.echo = false
	case fst.Identity, fst.Unknown:
		ma.kind = arcUnknown
	default:
		ma.kind = arcSymbol
		ma.in = symtab.ResolveSymbol(arc.In)
		if ma.in == NoSymbol {
			return ma, fmt.Errorf("%w: %q", ErrSymbolMissing, arc.In)
		}
	}
	return ma, nil
}
