/*
Package fst implements weighted finite-state transducers as used by the
pattern-matching runtime.

Transducers are built bottom-up. Low-level construction is done with a
Builder; everything else is done with combinators, which never modify their
arguments but return a fresh transducer:

    ws := fst.WhitespaceAcceptor()
    punct := fst.PunctuationAcceptor()
    boundary := fst.Union(ws, punct)          // single-symbol acceptor
    others := fst.Plus(fst.ExcList(boundary)) // any non-boundary run
    others = fst.SetFinalWeights(others, fst.MaxWeight)

Weights are tropical: path weights add up, and among alternatives the lower
weight is better.

Special Symbols

Besides ordinary symbols (usually single Unicode code-points, possibly
multi-character symbols) transducers may contain special symbols, which
the matching runtime interprets: epsilon, identity/unknown, the input
boundary, context entry/exit markers, match delimiters, input marks and
calls of named sub-transducers (RTNs). See the constants in symbols.go.

Symbol Classes

An arc may carry a symbol class instead of a single input symbol. A class
either admits a fixed set of symbols or every symbol except a fixed set
(complement-of-set, see ExcList). Classes let a transducer speak about
"any other symbol" without knowing the final alphabet of the container it
will be matched in.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.fst'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.fst")
}
