package fst

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Alphabet is a sorted set of symbol strings. Alphabets are treated as
// values: operations return new alphabets and leave the receiver unchanged.
// Epsilon is never part of an alphabet.
type Alphabet struct {
	set *treeset.Set
}

// NewAlphabet creates an alphabet from a list of symbols.
func NewAlphabet(syms ...string) *Alphabet {
	a := &Alphabet{set: treeset.NewWithStringComparator()}
	a.add(syms...)
	return a
}

func (a *Alphabet) add(syms ...string) {
	for _, s := range syms {
		if s == Epsilon || s == "" {
			continue
		}
		a.set.Add(s)
	}
}

// With returns a copy of a with symbols syms added.
func (a *Alphabet) With(syms ...string) *Alphabet {
	b := NewAlphabet(a.Symbols()...)
	b.add(syms...)
	return b
}

// Union returns the union of a and b.
func (a *Alphabet) Union(b *Alphabet) *Alphabet {
	return a.With(b.Symbols()...)
}

// Difference returns the symbols of a which are not in b, in sorted order.
func (a *Alphabet) Difference(b *Alphabet) []string {
	diff := make([]string, 0, 8)
	it := a.set.Iterator()
	for it.Next() {
		sym := it.Value().(string)
		if !b.Contains(sym) {
			diff = append(diff, sym)
		}
	}
	return diff
}

// Contains checks if sym is a symbol of a.
func (a *Alphabet) Contains(sym string) bool {
	if a == nil {
		return false
	}
	return a.set.Contains(sym)
}

// Size returns the number of symbols in a.
func (a *Alphabet) Size() int {
	if a == nil {
		return 0
	}
	return a.set.Size()
}

// Symbols returns the symbols of a in sorted order.
func (a *Alphabet) Symbols() []string {
	if a == nil {
		return nil
	}
	syms := make([]string, 0, a.set.Size())
	for _, x := range a.set.Values() {
		syms = append(syms, x.(string))
	}
	return syms
}

// Ordinary returns all symbols of a which are not special symbols.
func (a *Alphabet) Ordinary() []string {
	syms := make([]string, 0, a.Size())
	for _, s := range a.Symbols() {
		if !IsSpecial(s) {
			syms = append(syms, s)
		}
	}
	return syms
}

func (a *Alphabet) String() string {
	return "{" + strings.Join(a.Symbols(), " ") + "}"
}

// --- Symbol classes --------------------------------------------------------

// SymbolClass is a set of input symbols an arc admits. A negated class admits
// every symbol which is not a member.
type SymbolClass struct {
	members *Alphabet
	negated bool
}

// NewSymbolClass creates a symbol class for a set of members.
func NewSymbolClass(members *Alphabet, negated bool) *SymbolClass {
	return &SymbolClass{members: NewAlphabet(members.Symbols()...), negated: negated}
}

// Admits is a predicate: does the class admit input symbol sym?
// Special symbols are never admitted.
func (c *SymbolClass) Admits(sym string) bool {
	if IsSpecial(sym) {
		return false
	}
	return c.members.Contains(sym) != c.negated
}

// Members returns the members of the class.
func (c *SymbolClass) Members() *Alphabet {
	return c.members
}

// Negated returns true for complement classes.
func (c *SymbolClass) Negated() bool {
	return c.negated
}

func (c *SymbolClass) String() string {
	if c == nil {
		return ""
	}
	if c.negated {
		return "[^" + strings.Join(c.members.Symbols(), " ") + "]"
	}
	return "[" + strings.Join(c.members.Symbols(), " ") + "]"
}
