package runtime

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/pmtok/fst"
)

// Symbol table for the symbols of a container. All machines of a container
// share one symbol table, which maps symbol strings to dense IDs.
//

// SymbolID is the runtime representation of a symbol.
type SymbolID int32

// Pre-defined symbol IDs.
const (
	NoSymbol      SymbolID = -1 // symbols not in the table, e.g. unknown input
	EpsilonSymbol SymbolID = 0
)

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store symbols (map-like semantics).
type SymbolTable struct {
	Table     map[string]SymbolID
	names     []string
	multichar map[string]bool
	maxRunes  int
}

// NewSymbolTable creates a symbol table containing only epsilon.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table:     make(map[string]SymbolID),
		multichar: make(map[string]bool),
		maxRunes:  1,
	}
	symtab.DefineSymbol(fst.Epsilon)
	return &symtab
}

// ResolveSymbol checks for a symbol in the symbol table.
// Returns its ID or NoSymbol.
//
func (t *SymbolTable) ResolveSymbol(name string) SymbolID {
	if id, ok := t.Table[name]; ok {
		return id
	}
	return NoSymbol
}

// ResolveOrDefineSymbol finds
// a symbol in the table, inserts a new one if not found.
// Returns the ID and a flag, signalling wether the symbol
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineSymbol(name string) (SymbolID, bool) {
	if len(name) == 0 {
		return NoSymbol, false
	}
	if id := t.ResolveSymbol(name); id != NoSymbol {
		return id, true
	}
	return t.DefineSymbol(name), false
}

// DefineSymbol enters a new symbol into the symbol table.
// The symbol's name may not be empty. If the symbol is already present,
// its ID is returned.
//
func (t *SymbolTable) DefineSymbol(name string) SymbolID {
	if len(name) == 0 {
		return NoSymbol
	}
	if id, ok := t.Table[name]; ok {
		return id
	}
	id := SymbolID(len(t.names))
	t.Table[name] = id
	t.names = append(t.names, name)
	if n := utf8.RuneCountInString(name); n > 1 && !fst.IsSpecial(name) {
		t.multichar[name] = true
		if n > t.maxRunes {
			t.maxRunes = n
		}
	}
	return id
}

// DefineAlphabet enters all symbols of an alphabet, in sorted order.
func (t *SymbolTable) DefineAlphabet(a *fst.Alphabet) {
	for _, sym := range a.Symbols() {
		t.DefineSymbol(sym)
	}
}

// Name returns the symbol string for id.
func (t *SymbolTable) Name(id SymbolID) string {
	if id < 0 || int(id) >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// Size counts the symbols in a symbol table, including epsilon.
func (t *SymbolTable) Size() int {
	return len(t.names)
}

// Each iterates over each symbol in the table in order of definition,
// executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, SymbolID)) {
	for id, name := range t.names {
		mapper(name, SymbolID(id))
	}
}

// Multichar returns the ordinary multi-character symbols of the table,
// longest first.
func (t *SymbolTable) Multichar() []string {
	syms := make([]string, 0, len(t.multichar))
	for s := range t.multichar {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		ni, nj := utf8.RuneCountInString(syms[i]), utf8.RuneCountInString(syms[j])
		if ni != nj {
			return ni > nj
		}
		return syms[i] < syms[j]
	})
	return syms
}

func (t *SymbolTable) String() string {
	return fmt.Sprintf("<symtab |%d|>", len(t.names))
}

// === Input symbols =========================================================

// inputSymbol is a symbol of the input string together with its byte span.
type inputSymbol struct {
	id         SymbolID
	text       string
	start, end int
}

// symbolize splits input into symbols. With single-codepoint tokenization
// every code-point is a symbol. Otherwise, at each position the longest
// multi-character symbol of the table is preferred over a single code-point.
func (t *SymbolTable) symbolize(input string, singleCodepoint bool) []inputSymbol {
	syms := make([]inputSymbol, 0, len(input))
	for pos := 0; pos < len(input); {
		end := pos
		if !singleCodepoint && len(t.multichar) > 0 {
			end = t.longestMultichar(input, pos)
		}
		if end == pos {
			_, size := utf8.DecodeRuneInString(input[pos:])
			end = pos + size
		}
		text := input[pos:end]
		syms = append(syms, inputSymbol{id: t.ResolveSymbol(text), text: text, start: pos, end: end})
		pos = end
	}
	return syms
}

func (t *SymbolTable) longestMultichar(input string, pos int) int {
	ends := make([]int, 0, t.maxRunes)
	for i, n := pos, 0; i < len(input) && n < t.maxRunes; n++ {
		_, size := utf8.DecodeRuneInString(input[i:])
		i += size
		ends = append(ends, i)
	}
	for k := len(ends) - 1; k >= 1; k-- {
		if t.multichar[input[pos:ends[k]]] {
			return ends[k]
		}
	}
	return pos
}
