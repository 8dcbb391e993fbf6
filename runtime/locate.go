package runtime

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/pmtok"
	"github.com/npillmayer/pmtok/fst"
)

// maxEpsilonRun limits the number of consecutive moves which do not consume
// input, guarding against epsilon cycles.
const maxEpsilonRun = 512

// the clock is consulted every deadlineInterval search steps
const deadlineInterval = 1024

type ctxMode uint8

const (
	ctxNone ctxMode = iota
	ctxLeft
	ctxRight
)

// outNode is a persistent list of output symbols, newest first. Branches of
// the search share common prefixes of their output.
type outNode struct {
	text  string
	mark  bool
	inPos int // byte offset into the input, for marks
	prev  *outNode
}

// config is a configuration of the search: a state of a machine at an input
// position, together with the output so far.
type config struct {
	m     *Machine
	state int
	pos   int // index into the input symbols
	out   *outNode
	w     float64
	frame *CallFrame
	ctx   ctxMode
	saved int // position to restore when leaving a context
	eps   int // length of the current run of non-consuming moves
}

type hit struct {
	end int
	out *outNode
	w   float64
}

// search holds the state of one call to Locate.
type search struct {
	c        *Container
	input    string
	syms     []inputSymbol
	offsets  []int // byte offset of every symbol, plus len(input)
	deadline time.Time
	bounded  bool
	expired  bool
	steps    int
}

// Locate finds matches in input, left to right. At each position the longest
// non-empty match of the top-level machine wins, and all of its analyses
// form one location vector, sorted by ascending weight. Input which cannot be
// matched is collected into non-matching locations.
//
// budget limits the time spent. A budget of 0 means no limit. When the time
// is up, each remaining search returns its first complete result, so the
// result is always valid but possibly not optimal.
func (c *Container) Locate(input string, budget time.Duration) pmtok.LocationVectorVector {
	var lvv pmtok.LocationVectorVector
	if input == "" {
		return lvv
	}
	s := c.newSearch(input, budget)
	unmatched := -1
	for pos := 0; pos < len(s.syms); {
		hits := s.matchAt(pos)
		if len(hits) == 0 {
			if unmatched < 0 {
				unmatched = pos
			}
			pos++
			continue
		}
		if unmatched >= 0 {
			lvv = append(lvv, s.nonMatching(unmatched, pos))
			unmatched = -1
		}
		lvv = append(lvv, s.locations(pos, hits))
		pos = hits[0].end
	}
	if unmatched >= 0 {
		lvv = append(lvv, s.nonMatching(unmatched, len(s.syms)))
	}
	if c.verbose {
		tracer().Infof("located %d span(s) in %d symbols, %d steps", len(lvv), len(s.syms), s.steps)
	}
	return lvv
}

func (c *Container) newSearch(input string, budget time.Duration) *search {
	s := &search{c: c, input: input}
	s.syms = c.symtab.symbolize(input, c.singleCodepoint)
	s.offsets = make([]int, len(s.syms)+1)
	for i, sym := range s.syms {
		s.offsets[i] = sym.start
	}
	s.offsets[len(s.syms)] = len(input)
	if budget > 0 {
		s.deadline, s.bounded = time.Now().Add(budget), true
	}
	return s
}

// matchAt searches all paths of the top-level machine starting at symbol
// position start. It returns the hits of maximal length.
func (s *search) matchAt(start int) []hit {
	var hits []hit
	stack := arraystack.New()
	stack.Push(config{m: s.c.top, pos: start})
	for !stack.Empty() {
		v, _ := stack.Pop()
		cf := v.(config)
		if s.timeIsUp() && len(hits) > 0 {
			break
		}
		st := &cf.m.states[cf.state]
		if st.final {
			if cf.frame != nil {
				if cf.eps < maxEpsilonRun {
					ret := cf
					ret.m, ret.state, ret.frame = cf.frame.Caller, cf.frame.Return, cf.frame.Parent
					ret.w += st.finalWeight
					ret.eps++
					stack.Push(ret)
				}
			} else if cf.ctx == ctxNone && cf.pos > start {
				hits = addHit(hits, hit{end: cf.pos, out: cf.out, w: cf.w + st.finalWeight})
			}
		}
		for i := len(st.arcs) - 1; i >= 0; i-- {
			if next, ok := s.step(cf, &st.arcs[i]); ok {
				stack.Push(next)
			}
		}
	}
	return hits
}

func (s *search) timeIsUp() bool {
	s.steps++
	if !s.bounded || s.expired {
		return s.expired
	}
	if s.steps%deadlineInterval == 0 && time.Now().After(s.deadline) {
		tracer().Infof("time budget exceeded, search continues best-effort")
		s.expired = true
	}
	return s.expired
}

// addHit keeps the hits of maximal length.
func addHit(hits []hit, h hit) []hit {
	if len(hits) > 0 {
		if h.end < hits[0].end {
			return hits
		}
		if h.end > hits[0].end {
			hits = hits[:0]
		}
	}
	return append(hits, h)
}

// step tries to follow arc from configuration cf.
func (s *search) step(cf config, arc *mArc) (config, bool) {
	next := cf
	next.state = arc.target
	next.w += arc.weight
	switch arc.kind {
	case arcSymbol, arcClass, arcUnknown:
		sym, pos, ok := s.peek(cf)
		if !ok {
			return next, false
		}
		switch {
		case arc.kind == arcSymbol && sym.id != arc.in:
			return next, false
		case arc.kind == arcClass && !arc.class.Admits(sym.text):
			return next, false
		case arc.kind == arcUnknown && sym.id != NoSymbol:
			return next, false
		}
		next.pos, next.eps = pos, 0
		if cf.ctx == ctxNone {
			next.out = s.emit(cf.out, arc, sym.text, pos)
		}
		return next, true
	case arcBoundary:
		atStart, atEnd := cf.pos == 0, cf.pos == len(s.syms)
		switch {
		case cf.ctx == ctxLeft && !atStart:
			return next, false
		case cf.ctx == ctxRight && !atEnd:
			return next, false
		case cf.ctx == ctxNone && !atStart && !atEnd:
			return next, false
		}
	case arcCall:
		if cf.frame.Depth() >= maxCallDepth {
			tracer().Errorf("call depth exceeded for %q", arc.callee)
			return next, false
		}
		next.frame = cf.frame.Push(arc.callee, cf.m, arc.target)
		next.m, next.state = s.c.rtns[arc.callee], 0
	case arcLCEntry, arcRCEntry:
		if cf.ctx != ctxNone {
			return next, false
		}
		next.ctx, next.saved = ctxRight, cf.pos
		if arc.kind == arcLCEntry {
			next.ctx = ctxLeft
		}
	case arcLCExit:
		if cf.ctx != ctxLeft {
			return next, false
		}
		next.ctx, next.pos = ctxNone, cf.saved
	case arcRCExit:
		if cf.ctx != ctxRight {
			return next, false
		}
		next.ctx, next.pos = ctxNone, cf.saved
	}
	// moves which do not consume input
	if cf.eps >= maxEpsilonRun {
		return next, false
	}
	next.eps = cf.eps + 1
	if cf.ctx == ctxNone && next.ctx == ctxNone {
		next.out = s.emit(cf.out, arc, "", next.pos)
	}
	return next, true
}

// peek returns the next input symbol in reading direction and the position
// after reading it. Left contexts read backwards.
func (s *search) peek(cf config) (inputSymbol, int, bool) {
	if cf.ctx == ctxLeft {
		if cf.pos == 0 {
			return inputSymbol{}, 0, false
		}
		return s.syms[cf.pos-1], cf.pos - 1, true
	}
	if cf.pos >= len(s.syms) {
		return inputSymbol{}, 0, false
	}
	return s.syms[cf.pos], cf.pos + 1, true
}

func (s *search) emit(out *outNode, arc *mArc, text string, pos int) *outNode {
	switch {
	case arc.mark:
		return &outNode{mark: true, inPos: s.offsets[pos], prev: out}
	case arc.echo && text != "":
		return &outNode{text: text, prev: out}
	case arc.out != "":
		return &outNode{text: arc.out, prev: out}
	}
	return out
}

// --- Locations -------------------------------------------------------------

// locations creates a location vector from the hits at symbol position start.
// Duplicate analyses are collapsed to their lowest weight. Analyses of
// maximum weight are dropped if a better analysis exists.
func (s *search) locations(start int, hits []hit) pmtok.LocationVector {
	from, to := s.offsets[start], s.offsets[hits[0].end]
	best := fst.MaxWeight
	for _, h := range hits {
		if h.w < best {
			best = h.w
		}
	}
	index := make(map[string]int, len(hits))
	lv := make(pmtok.LocationVector, 0, len(hits))
	for _, h := range hits {
		if h.w >= fst.MaxWeight && best < fst.MaxWeight {
			continue
		}
		loc := s.location(from, to, h)
		key := dedupKey(loc)
		if i, ok := index[key]; ok {
			if loc.Weight < lv[i].Weight {
				lv[i].Weight = loc.Weight
			}
			continue
		}
		index[key] = len(lv)
		lv = append(lv, loc)
	}
	sort.SliceStable(lv, func(i, j int) bool {
		return lv[i].Weight < lv[j].Weight
	})
	return lv
}

// dedupKey identifies an analysis by its output and its parts.
func dedupKey(loc pmtok.Location) string {
	var b strings.Builder
	b.WriteString(loc.Output)
	for i := range loc.InputParts {
		b.WriteByte(0)
		b.WriteString(strconv.Itoa(loc.InputParts[i]))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(loc.OutputParts[i]))
	}
	return b.String()
}

func (s *search) location(from, to int, h hit) pmtok.Location {
	var nodes []*outNode
	for n := h.out; n != nil; n = n.prev {
		nodes = append(nodes, n)
	}
	loc := pmtok.Location{
		Start:  from,
		Length: to - from,
		Input:  s.input[from:to],
		Weight: h.w,
	}
	var out strings.Builder
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if !n.mark {
			out.WriteString(n.text)
			continue
		}
		inp, outp := n.inPos-from, out.Len()
		if k := len(loc.InputParts); k > 0 && (inp <= loc.InputParts[k-1] || outp <= loc.OutputParts[k-1]) {
			continue // parts have to be strictly increasing
		}
		loc.InputParts = append(loc.InputParts, inp)
		loc.OutputParts = append(loc.OutputParts, outp)
	}
	loc.Output = out.String()
	return loc
}

func (s *search) nonMatching(from, to int) pmtok.LocationVector {
	start, end := s.offsets[from], s.offsets[to]
	return pmtok.LocationVector{{
		Start:  start,
		Length: end - start,
		Input:  s.input[start:end],
		Output: pmtok.NonMatching,
	}}
}
