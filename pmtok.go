package pmtok

import "fmt"

// NonMatching is the output marker of a location the automaton could not
// analyze. The location's input still carries the unmatched text.
const NonMatching = "@_NONMATCHING_@"

// --- Locations -------------------------------------------------------------

// Location is one candidate analysis for one matched span of input.
//
// An example would be an analysis of a plural noun:
//
//    Start   = 4                 // byte offset of the span within the chunk
//    Length  = 4                 // byte length of the span
//    Input   = "cats"            // text consumed by the automaton
//    Output  = "cat+N+Pl"        // analysis produced for Input
//    Weight  = 0.0               // lower is better
//
// InputParts and OutputParts mark the boundaries between constituent tokens
// when a match spans several lexicon-level tokens (e.g., a multiword
// expression). They are byte offsets into Input and Output respectively,
// have equal length and are strictly increasing. Both are empty for
// single-token matches.
type Location struct {
	Start       int
	Length      int
	Input       string
	Output      string
	Weight      float64
	InputParts  []int
	OutputParts []int
}

// Span returns the byte span of the location within its chunk.
func (loc Location) Span() Span {
	return Span{uint64(loc.Start), uint64(loc.Start + loc.Length)}
}

// IsNonMatching is true if loc is the non-matching marker location.
func (loc Location) IsNonMatching() bool {
	return loc.Output == NonMatching
}

func (loc Location) String() string {
	return fmt.Sprintf("<%q:%q %g %v>", loc.Input, loc.Output, loc.Weight, loc.Span())
}

// LocationVector is a sequence of alternative analyses of the same span.
type LocationVector []Location

// IsNonMatching is a predicate: does this vector denote a span which has not
// been analyzed at all? Every other vector holds genuine analyses.
func (lv LocationVector) IsNonMatching() bool {
	return len(lv) == 1 && lv[0].IsNonMatching()
}

// Input returns the text of the span the vector covers, or "" for an empty
// vector.
func (lv LocationVector) Input() string {
	if len(lv) == 0 {
		return ""
	}
	return lv[0].Input
}

// LocationVectorVector is a sequence of location vectors, one per consecutive
// span of a chunk, in input order.
type LocationVectorVector []LocationVector

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a range of input bytes. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
