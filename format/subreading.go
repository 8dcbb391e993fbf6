package format

import (
	"strings"

	"github.com/npillmayer/pmtok"
)

// Subreading is one level of a stacked analysis.
type Subreading struct {
	Text  string // the slice of the analysis
	Input string // aligned slice of the input, empty if not aligned
	Depth int    // 0 for the outermost reading
}

// Decompose splits the output of a location into subreadings, outermost
// first. Subreadings are separated by sep within the output. When the
// location has parts, a subreading ending at a part boundary receives the
// input slice of this part. The deepest subreading receives the remaining
// input prefix if any part has been claimed before.
//
// Separators inside lemmas or tags are not detected.
func Decompose(loc pmtok.Location, sep string) []Subreading {
	var subs []Subreading
	d := newDecomposer(loc, sep)
	for sr, ok := d.next(); ok; sr, ok = d.next() {
		subs = append(subs, sr)
	}
	return subs
}

// decomposer scans an output backwards. Its state is the end of the not yet
// consumed output, the end of the not yet claimed input, and the number of
// unclaimed parts.
type decomposer struct {
	loc    pmtok.Location
	sep    string
	outEnd int
	inEnd  int
	part   int
	depth  int
	done   bool
}

func newDecomposer(loc pmtok.Location, sep string) *decomposer {
	return &decomposer{
		loc:    loc,
		sep:    sep,
		outEnd: len(loc.Output),
		inEnd:  len(loc.Input),
		part:   len(loc.InputParts),
		done:   loc.Output == "",
	}
}

// next yields the next subreading. There are three ways to cut a subreading
// from the end of the unconsumed output: at a part boundary (the subreading
// claims the input of this part), at a separator, or at the start of the
// output (the subreading claims the rest of the input, provided a part
// boundary has claimed input before).
func (d *decomposer) next() (Subreading, bool) {
	if d.done {
		return Subreading{}, false
	}
	out, in := d.loc.Output, d.loc.Input
	subBeg := lastSeparator(out, d.sep, d.outEnd)
	partBeg := 0
	if d.part > 0 {
		partBeg = d.loc.OutputParts[d.part-1]
	}
	var outBeg, nextEnd int
	var inpart string
	switch {
	case partBeg > subBeg: // cut at part boundary
		inBeg := d.loc.InputParts[d.part-1]
		outBeg, nextEnd = partBeg, partBeg
		inpart = in[inBeg:d.inEnd]
		d.inEnd = inBeg
		d.part--
	case subBeg > 0: // cut at separator
		outBeg, nextEnd = subBeg+len(d.sep), subBeg
	default: // deepest subreading
		if d.inEnd != len(in) {
			inpart = in[:d.inEnd]
		}
	}
	if outBeg > d.outEnd {
		outBeg = d.outEnd
	}
	sr := Subreading{Text: out[outBeg:d.outEnd], Input: inpart, Depth: d.depth}
	if outBeg == 0 {
		d.done = true
	} else {
		d.outEnd = nextEnd
		d.depth++
	}
	return sr, true
}

// lastSeparator finds the last separator starting before outEnd.
// It returns 0 if there is none.
func lastSeparator(out, sep string, outEnd int) int {
	limit := outEnd - 1 + len(sep)
	if limit > len(out) {
		limit = len(out)
	}
	if limit < 0 {
		return 0
	}
	if i := strings.LastIndex(out[:limit], sep); i > 0 {
		return i
	}
	return 0
}
