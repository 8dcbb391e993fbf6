package fst

import "unicode"

// Utility acceptors over the Latin-1 range. Each accepts exactly one symbol,
// every symbol being a single code-point.

// latin1Whitespace lists the whitespace code-points of Latin-1.
var latin1Whitespace = []rune{' ', '\t', '\n', '\v', '\f', '\r', 0x85, 0xA0}

// WhitespaceAcceptor creates an acceptor for a single Latin-1 whitespace
// character.
func WhitespaceAcceptor() *Transducer {
	return runeAcceptor(latin1Whitespace)
}

// PunctuationAcceptor creates an acceptor for a single Latin-1 punctuation
// or symbol character.
func PunctuationAcceptor() *Transducer {
	var punct []rune
	for r := rune(0x21); r <= 0xFF; r++ {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			punct = append(punct, r)
		}
	}
	return runeAcceptor(punct)
}

func runeAcceptor(runes []rune) *Transducer {
	t := &Transducer{states: []State{{}, {Final: true}}}
	for _, r := range runes {
		s := string(r)
		t.states[0].Arcs = append(t.states[0].Arcs, Arc{In: s, Out: s, Target: 1})
	}
	t.alphabet = collectAlphabet(t.states)
	return t
}
