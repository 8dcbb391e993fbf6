/*
Package lexicon builds lexicon transducers from lists of entries.

An entry pairs a surface form with an analysis and a weight. Surface forms
and analyses are aligned code-point by code-point; whatever is left over of
the longer side is consumed or emitted at the end of the entry. Entries
which span several tokens (multiword expressions) mark their parts with
'|' in both surface and analysis:

    New |York	New York+N+Prop|+Sem/Plc

At every part boundary the transducer emits an input mark, which the
runtime reports as a part boundary of the match.

Lexicons are read from tab-separated files with lines

    surface<TAB>analysis[<TAB>weight]

Empty lines and lines starting with '#' are ignored.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexicon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pmtok/fst"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.lexicon")
}

// PartMark separates the parts of multiword entries.
const PartMark = "|"

// ErrMalformedEntry is returned for entries which cannot be compiled.
var ErrMalformedEntry = errors.New("malformed lexicon entry")

// Entry is a lexicon entry.
type Entry struct {
	Surface  string
	Analysis string
	Weight   float64
}

func (e Entry) String() string {
	return fmt.Sprintf("%s:%s/%g", e.Surface, e.Analysis, e.Weight)
}

// parts splits surface and analysis at part marks.
func (e Entry) parts() ([]string, []string, error) {
	in := strings.Split(e.Surface, PartMark)
	out := strings.Split(e.Analysis, PartMark)
	if e.Analysis == "" {
		out = make([]string, len(in))
	}
	if len(in) != len(out) {
		return nil, nil, fmt.Errorf("%w: %s has %d surface parts, but %d analysis parts",
			ErrMalformedEntry, e, len(in), len(out))
	}
	for _, p := range in {
		if p == "" {
			return nil, nil, fmt.Errorf("%w: %s has an empty surface part", ErrMalformedEntry, e)
		}
	}
	return in, out, nil
}

type trieKey struct {
	from    fst.StateID
	in, out string
}

// Build creates a lexicon transducer from entries. Entries sharing a prefix
// share a path. The result is minimized and carries the given name.
func Build(name string, entries []Entry) (*fst.Transducer, error) {
	b := fst.NewBuilder(name)
	trie := make(map[trieKey]fst.StateID)
	finals := make(map[fst.StateID]float64)
	arc := func(from fst.StateID, in, out string) fst.StateID {
		key := trieKey{from, in, out}
		if to, ok := trie[key]; ok {
			return to
		}
		to := b.AddState()
		b.AddArc(from, fst.Arc{In: in, Out: out, Target: to})
		trie[key] = to
		return to
	}
	for _, e := range entries {
		in, out, err := e.parts()
		if err != nil {
			return nil, err
		}
		s := fst.Start
		for k := range in {
			if k > 0 {
				s = arc(s, fst.Epsilon, fst.InputMark)
			}
			ins, outs := codepoints(in[k]), codepoints(out[k])
			for i := 0; i < len(ins) || i < len(outs); i++ {
				x, y := fst.Epsilon, fst.Epsilon
				if i < len(ins) {
					x = ins[i]
				}
				if i < len(outs) {
					y = outs[i]
				}
				s = arc(s, x, y)
			}
		}
		if w, ok := finals[s]; !ok || e.Weight < w {
			finals[s] = e.Weight
		}
	}
	for s, w := range finals {
		b.SetFinal(s, w)
	}
	t, err := b.Transducer()
	if err != nil {
		return nil, err
	}
	tracer().Infof("lexicon %q: %d entries, %d states", name, len(entries), t.StateCount())
	return fst.Minimize(t), nil
}

func codepoints(s string) []string {
	syms := make([]string, 0, len(s))
	for _, r := range s {
		syms = append(syms, string(r))
	}
	return syms
}
