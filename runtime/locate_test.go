package runtime

import (
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/pmtok"
	"github.com/npillmayer/pmtok/fst"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func link(t *testing.T, ts []*fst.Transducer, opts ...Option) *Container {
	c, err := Link(ts, opts...)
	require.NoError(t, err)
	return c
}

func outputs(lv pmtok.LocationVector) []string {
	var outs []string
	for _, loc := range lv {
		outs = append(outs, loc.Output)
	}
	return outs
}

func TestLocateSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.runtime")
	defer teardown()
	//
	c := link(t, []*fst.Transducer{fst.Symbol("a", "A").WithName(fst.TopName)})
	assert.Empty(t, c.Locate("", 0))
	lvv := c.Locate("ab", 0)
	require.Len(t, lvv, 2)
	assert.Equal(t, "a", lvv[0].Input())
	assert.Equal(t, []string{"A"}, outputs(lvv[0]))
	assert.True(t, lvv[1].IsNonMatching())
	assert.Equal(t, "b", lvv[1].Input())
	//
	lvv = c.Locate("bba", 0)
	require.Len(t, lvv, 2)
	assert.True(t, lvv[0].IsNonMatching())
	assert.Equal(t, "bb", lvv[0].Input())
	assert.Equal(t, pmtok.Span{2, 3}, lvv[1][0].Span())
}

func TestLocateLongestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.runtime")
	defer teardown()
	//
	top := fst.Union(fst.Symbol("a", "1"), fst.Concat(fst.Symbol("a", "2"), fst.Symbol("b", "3")))
	c := link(t, []*fst.Transducer{top.WithName(fst.TopName)})
	lvv := c.Locate("ab", 0)
	require.Len(t, lvv, 1)
	assert.Equal(t, []string{"23"}, outputs(lvv[0]))
}

func TestLocateAmbiguity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.runtime")
	defer teardown()
	//
	b := fst.NewBuilder(fst.TopName)
	f := b.AddState()
	b.SetFinal(f, 0)
	b.AddArc(fst.Start, fst.Arc{In: "a", Out: "x", Weight: 2, Target: f})
	b.AddArc(fst.Start, fst.Arc{In: "a", Out: "y", Weight: 1, Target: f})
	b.AddArc(fst.Start, fst.Arc{In: "a", Out: "x", Weight: 0.5, Target: f})
	top, err := b.Transducer()
	require.NoError(t, err)
	lvv := link(t, []*fst.Transducer{top}).Locate("a", 0)
	require.Len(t, lvv, 1)
	assert.Equal(t, []string{"x", "y"}, outputs(lvv[0]))
	assert.Equal(t, 0.5, lvv[0][0].Weight)
	assert.Equal(t, 1.0, lvv[0][1].Weight)
}

func TestLocateFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.runtime")
	defer teardown()
	//
	b := fst.NewBuilder(fst.TopName)
	f1, f2 := b.AddState(), b.AddState()
	b.AddArc(fst.Start, fst.Arc{In: "a", Out: "a", Target: f1}).SetFinal(f1, fst.MaxWeight)
	b.AddArc(fst.Start, fst.Arc{In: "a", Out: "A", Weight: 1, Target: f2}).SetFinal(f2, 0)
	top, err := b.Transducer()
	require.NoError(t, err)
	lvv := link(t, []*fst.Transducer{top}).Locate("a", 0)
	require.Len(t, lvv, 1)
	assert.Equal(t, []string{"A"}, outputs(lvv[0]))
	//
	only := fst.SetFinalWeights(fst.Symbol("a", "a"), fst.MaxWeight).WithName(fst.TopName)
	lvv = link(t, []*fst.Transducer{only}).Locate("a", 0)
	require.Len(t, lvv, 1)
	assert.Equal(t, []string{"a"}, outputs(lvv[0]))
}

func TestLocateCallsAndMarks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.runtime")
	defer teardown()
	//
	lex := fst.Concat(fst.Symbol("a", "a"), fst.Marker(fst.InputMark), fst.Symbol("b", "b")).WithName("lex")
	top := fst.InsertCall("lex").WithName(fst.TopName)
	c := link(t, []*fst.Transducer{top, lex})
	assert.NotNil(t, c.RTN("lex"))
	lvv := c.Locate("ab", 0)
	require.Len(t, lvv, 1)
	loc := lvv[0][0]
	assert.Equal(t, "ab", loc.Output)
	assert.Equal(t, []int{1}, loc.InputParts)
	assert.Equal(t, []int{1}, loc.OutputParts)
	//
	_, err := Link([]*fst.Transducer{fst.InsertCall("nope").WithName(fst.TopName)})
	assert.ErrorIs(t, err, ErrUnresolvedCall)
}

func TestLocateContexts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.runtime")
	defer teardown()
	//
	boundary := fst.Union(fst.Symbol(" ", " "), fst.Symbol(fst.Boundary, fst.Boundary))
	top := fst.Concat(fst.LeftContext(boundary), fst.Plus(fst.Symbol("a", "a")), fst.RightContext(boundary))
	c := link(t, []*fst.Transducer{fst.Minimize(top).WithName(fst.TopName)})
	for _, budget := range []time.Duration{0, time.Nanosecond} {
		lvv := c.Locate("aa a", budget)
		require.Len(t, lvv, 3)
		assert.Equal(t, []string{"aa"}, outputs(lvv[0]))
		assert.True(t, lvv[1].IsNonMatching())
		assert.Equal(t, " ", lvv[1].Input())
		assert.Equal(t, []string{"a"}, outputs(lvv[2]))
	}
	// no boundary to the right of "aa"
	lvv := c.Locate("aab", 0)
	require.Len(t, lvv, 1)
	assert.True(t, lvv[0].IsNonMatching())
}

func TestLocateMultichar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.runtime")
	defer teardown()
	//
	top := fst.Symbol("ch", "X").WithName(fst.TopName)
	lvv := link(t, []*fst.Transducer{top}, SingleCodepointTokenization(false)).Locate("ch", 0)
	require.Len(t, lvv, 1)
	assert.Equal(t, []string{"X"}, outputs(lvv[0]))
	lvv = link(t, []*fst.Transducer{top}).Locate("ch", 0)
	require.Len(t, lvv, 1)
	assert.True(t, lvv[0].IsNonMatching())
}

func TestLocateTimeBudgetExpires(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.runtime")
	defer teardown()
	//
	boundary := fst.Union(fst.Symbol(" ", " "), fst.Symbol(fst.Boundary, fst.Boundary))
	top := fst.Concat(fst.LeftContext(boundary), fst.Plus(fst.Symbol("a", "a")), fst.RightContext(boundary))
	c := link(t, []*fst.Transducer{fst.Minimize(top).WithName(fst.TopName)})
	input := strings.Repeat("a", 3000) + " b " + strings.Repeat("a", 1500)
	// the clock is read every deadlineInterval steps only
	s := c.newSearch(input, time.Nanosecond)
	hits := s.matchAt(0)
	assert.Greater(t, s.steps, deadlineInterval)
	assert.True(t, s.expired)
	require.NotEmpty(t, hits)
	// a time-bounded result is valid: contiguous spans, each one either
	// non-matching or a run of "a"s between boundaries
	lvv := c.Locate(input, time.Nanosecond)
	require.NotEmpty(t, lvv)
	end := uint64(0)
	for _, lv := range lvv {
		require.NotEmpty(t, lv)
		span := lv[0].Span()
		assert.Equal(t, end, span.From())
		assert.Equal(t, input[span.From():span.To()], lv.Input())
		assert.Equal(t, uint64(len(lv.Input())), span.Len())
		end = span.To()
		if lv.IsNonMatching() {
			continue
		}
		for _, loc := range lv {
			assert.Equal(t, strings.Repeat("a", loc.Length), loc.Output)
			assert.Equal(t, loc.Input, loc.Output)
		}
	}
	assert.Equal(t, uint64(len(input)), end)
	assert.Equal(t, strings.Repeat("a", 3000), lvv[0].Input())
}

func TestLocateDeduplicatesByParts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.runtime")
	defer teardown()
	//
	withMark := fst.Concat(fst.Symbol("a", "a"), fst.Marker(fst.InputMark), fst.Symbol("b", "b"))
	plain := fst.Concat(fst.Symbol("a", "a"), fst.Symbol("b", "b"))
	top := fst.Union(withMark, plain, fst.SetFinalWeights(plain, 2)).WithName(fst.TopName)
	lvv := link(t, []*fst.Transducer{top}).Locate("ab", 0)
	require.Len(t, lvv, 1)
	require.Len(t, lvv[0], 2)
	assert.Equal(t, "ab", lvv[0][0].Output)
	assert.Equal(t, "ab", lvv[0][1].Output)
	assert.Equal(t, 0.0, lvv[0][0].Weight)
	assert.Equal(t, 0.0, lvv[0][1].Weight)
	assert.NotEqual(t, lvv[0][0].InputParts, lvv[0][1].InputParts)
}
