package fst

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
)

// === Minimization ==========================================================

// Minimize returns a reduced transducer equivalent to t. States which are not
// reachable from the start state or cannot reach a final state are removed,
// then states with identical futures (same finality, same weights, same
// labeled arcs into equivalent states) are merged.
//
// For deterministic transducers this yields the minimal automaton. For
// non-deterministic ones it is a language-preserving reduction.
func Minimize(t *Transducer) *Transducer {
	r := trim(t)
	r = mergeEquivalent(r)
	tracer().Debugf("minimized %q: %d -> %d states", t.name, len(t.states), len(r.states))
	return r
}

// trim removes useless states. The start state is always kept.
func trim(t *Transducer) *Transducer {
	n := len(t.states)
	accessible := make([]bool, n)
	accessible[Start] = true
	agenda := []StateID{Start}
	reverse := make([][]StateID, n)
	for len(agenda) > 0 {
		s := agenda[len(agenda)-1]
		agenda = agenda[:len(agenda)-1]
		for _, arc := range t.states[s].Arcs {
			reverse[arc.Target] = append(reverse[arc.Target], s)
			if !accessible[arc.Target] {
				accessible[arc.Target] = true
				agenda = append(agenda, arc.Target)
			}
		}
	}
	coaccessible := make([]bool, n)
	for id, s := range t.states {
		if s.Final && accessible[id] {
			coaccessible[id] = true
			agenda = append(agenda, StateID(id))
		}
	}
	for len(agenda) > 0 {
		s := agenda[len(agenda)-1]
		agenda = agenda[:len(agenda)-1]
		for _, p := range reverse[s] {
			if !coaccessible[p] {
				coaccessible[p] = true
				agenda = append(agenda, p)
			}
		}
	}
	renumber := make([]StateID, n)
	next := StateID(0)
	for id := range t.states {
		if id == int(Start) || accessible[id] && coaccessible[id] {
			renumber[id] = next
			next++
		} else {
			renumber[id] = -1
		}
	}
	r := &Transducer{name: t.name, alphabet: t.alphabet, states: make([]State, 0, next)}
	for id, s := range t.states {
		if renumber[id] < 0 {
			continue
		}
		ns := State{Final: s.Final, FinalWeight: s.FinalWeight}
		for _, arc := range s.Arcs {
			if renumber[arc.Target] < 0 {
				continue
			}
			arc.Target = renumber[arc.Target]
			ns.Arcs = append(ns.Arcs, arc)
		}
		r.states = append(r.states, ns)
	}
	return r
}

// sigArc and signature are the hashed representation of a state during
// partition refinement. Fields have to be exported for structhash.
type sigArc struct {
	In     string
	Out    string
	Class  string
	Weight float64
	Block  int
}

type signature struct {
	Self        int
	Final       bool
	FinalWeight float64
	Arcs        []sigArc
}

// mergeEquivalent performs partition refinement on state signatures until
// the partition is stable, then builds the quotient transducer.
func mergeEquivalent(t *Transducer) *Transducer {
	n := len(t.states)
	block := make([]int, n) // all states start in block 0
	blocks := 1
	for {
		ids := make(map[string]int)
		next := make([]int, n)
		for id := range t.states {
			h := stateHash(t.states[id], id, block)
			b, ok := ids[h]
			if !ok {
				b = len(ids)
				ids[h] = b
			}
			next[id] = b
		}
		block = next
		if len(ids) == blocks {
			break
		}
		blocks = len(ids)
	}
	// the start state's block becomes the new start state
	newID := make([]StateID, blocks)
	for i := range newID {
		newID[i] = -1
	}
	order := arraylist.New()
	newID[block[Start]] = 0
	order.Add(int(Start))
	for id := range t.states {
		if newID[block[id]] < 0 {
			newID[block[id]] = StateID(order.Size())
			order.Add(id)
		}
	}
	r := &Transducer{name: t.name, alphabet: t.alphabet, states: make([]State, order.Size())}
	it := order.Iterator()
	for it.Next() {
		rep := t.states[it.Value().(int)]
		ns := State{Final: rep.Final, FinalWeight: rep.FinalWeight}
		seen := make(map[string]bool)
		for _, arc := range rep.Arcs {
			arc.Target = newID[block[arc.Target]]
			key := arc.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			ns.Arcs = append(ns.Arcs, arc)
		}
		r.states[newID[block[it.Value().(int)]]] = ns
	}
	return r
}

func stateHash(s State, id int, block []int) string {
	sig := signature{Self: block[id], Final: s.Final, FinalWeight: s.FinalWeight}
	for _, arc := range s.Arcs {
		sig.Arcs = append(sig.Arcs, sigArc{
			In:     arc.In,
			Out:    arc.Out,
			Class:  arc.Class.String(),
			Weight: arc.Weight,
			Block:  block[arc.Target],
		})
	}
	sort.Slice(sig.Arcs, func(i, j int) bool {
		return fmt.Sprint(sig.Arcs[i]) < fmt.Sprint(sig.Arcs[j])
	})
	uniq := sig.Arcs[:0]
	for _, a := range sig.Arcs {
		if len(uniq) == 0 || a != uniq[len(uniq)-1] {
			uniq = append(uniq, a)
		}
	}
	sig.Arcs = uniq
	h, err := structhash.Hash(sig, 1)
	if err != nil {
		panic(fmt.Sprintf("cannot hash state signature: %v", err))
	}
	return h
}
