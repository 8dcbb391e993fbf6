/*
Package runtime implements the pattern matching runtime, consisting of
compiled machines, a shared symbol table and call frames for inserted
(called) machines.

A Container bundles a top-level machine named TOP with any number of named
machines TOP may insert ("recursive transition networks", RTNs). Containers
locate matches in input strings:

    c, err := runtime.NewContainer(top, symtab, []*runtime.Machine{lexicon})
    …
    lvv := c.Locate("Hello world", 0)  // 0 = unbounded time budget

Symbol Table and Harmonization

All machines of a container share one symbol table. Machines compiled in
harmonized mode must not introduce new symbols, i.e. their alphabets have
to be reconciled before compilation.

Matching

Locate proceeds left to right. At each position it searches all paths of
TOP depth first, following calls into RTNs, checking left and right
contexts without consuming input, and recording input marks as part
boundaries. The longest non-empty match wins. Input nobody matches is
collected into a single non-matching location.

Call Frames

This module implements a stack of immutable call frames, shared between
branches of the search.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pmtok/fst"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.runtime")
}

// ErrUnresolvedCall is returned when a machine inserts a machine which is not
// part of the container.
var ErrUnresolvedCall = errors.New("call of unknown machine")

// Container is a type implementing a runtime environment for matching.
type Container struct {
	top             *Machine
	rtns            map[string]*Machine
	symtab          *SymbolTable
	singleCodepoint bool
	verbose         bool
}

// Option configures a container.
type Option func(*Container)

// SingleCodepointTokenization sets how input strings are split into symbols.
// If on (the default), every code-point is a symbol. If off, multi-character
// symbols of the alphabet are recognized, longest first.
func SingleCodepointTokenization(on bool) Option {
	return func(c *Container) {
		c.singleCodepoint = on
	}
}

// Verbose switches on informational tracing during matching.
func Verbose(on bool) Option {
	return func(c *Container) {
		c.verbose = on
	}
}

// NewContainer constructs
// a new container, initialized. top is the machine matching starts with,
// rtns are the machines it may insert by name. All calls have to be resolvable.
//
func NewContainer(top *Machine, symtab *SymbolTable, rtns []*Machine, opts ...Option) (*Container, error) {
	c := &Container{
		top:             top,
		rtns:            make(map[string]*Machine, len(rtns)),
		symtab:          symtab,
		singleCodepoint: true,
	}
	for _, m := range rtns {
		c.rtns[m.Name()] = m
	}
	for _, m := range append([]*Machine{top}, rtns...) {
		for _, name := range m.Callees() {
			if _, ok := c.rtns[name]; !ok {
				return nil, fmt.Errorf("%w: %q inserts %q", ErrUnresolvedCall, m.Name(), name)
			}
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	tracer().Debugf("container with %s and %d RTN(s), %s", top, len(rtns), symtab)
	return c, nil
}

// Link compiles transducers into a container. The first transducer is the
// top-level machine, the others are RTNs. The symbol table is made from the
// union of all alphabets.
func Link(ts []*fst.Transducer, opts ...Option) (*Container, error) {
	if len(ts) == 0 {
		return nil, errors.New("no transducer to link")
	}
	symtab := NewSymbolTable()
	for _, t := range ts {
		symtab.DefineAlphabet(t.Alphabet())
	}
	machines := make([]*Machine, len(ts))
	for i, t := range ts {
		m, err := Compile(t, symtab, true)
		if err != nil {
			return nil, err
		}
		machines[i] = m
	}
	return NewContainer(machines[0], symtab, machines[1:], opts...)
}

// Top returns the top-level machine.
func (c *Container) Top() *Machine {
	return c.top
}

// RTN returns the machine with the given name, or nil.
func (c *Container) RTN(name string) *Machine {
	return c.rtns[name]
}

// SymbolTable returns the symbol table shared by all machines of c.
func (c *Container) SymbolTable() *SymbolTable {
	return c.symtab
}

func (c *Container) String() string {
	return fmt.Sprintf("<container %s +%d>", c.top.Name(), len(c.rtns))
}
