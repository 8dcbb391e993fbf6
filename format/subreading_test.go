package format

import (
	"testing"

	"github.com/npillmayer/pmtok"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDecomposeWithoutSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	loc := pmtok.Location{Input: "cats", Output: "cat+N+Pl"}
	assert.Equal(t, []Subreading{{Text: "cat+N+Pl"}}, Decompose(loc, "#"))
	assert.Empty(t, Decompose(pmtok.Location{Input: "x"}, "#"))
}

func TestDecomposeSeparators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	loc := pmtok.Location{Input: "New York", Output: "New York#propername+loc"}
	assert.Equal(t, []Subreading{
		{Text: "propername+loc", Depth: 0},
		{Text: "New York", Depth: 1},
	}, Decompose(loc, "#"))
	loc = pmtok.Location{Input: "abc", Output: "a<>b<>c"}
	assert.Equal(t, []Subreading{
		{Text: "c", Depth: 0},
		{Text: "b", Depth: 1},
		{Text: "a", Depth: 2},
	}, Decompose(loc, "<>"))
}

func TestDecomposeParts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	// part boundary right of the separator
	loc := pmtok.Location{
		Input:       "a b",
		Output:      "a+X#b+Y",
		InputParts:  []int{2},
		OutputParts: []int{4},
	}
	assert.Equal(t, []Subreading{
		{Text: "b+Y", Input: "b", Depth: 0},
		{Text: "", Depth: 1},
		{Text: "a+X", Input: "a ", Depth: 2},
	}, Decompose(loc, "#"))
	// part boundary at the separator terminates as well
	loc.OutputParts = []int{3}
	assert.Equal(t, []Subreading{
		{Text: "b+Y", Depth: 0},
		{Text: "", Input: "b", Depth: 1},
		{Text: "a+X", Input: "a ", Depth: 2},
	}, Decompose(loc, "#"))
}

func TestDecomposeTwoParts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	loc := pmtok.Location{
		Input:       "abc",
		Output:      "AxBxC",
		InputParts:  []int{1, 2},
		OutputParts: []int{2, 4},
	}
	assert.Equal(t, []Subreading{
		{Text: "C", Input: "c", Depth: 0},
		{Text: "Bx", Input: "b", Depth: 1},
		{Text: "Ax", Input: "a", Depth: 2},
	}, Decompose(loc, "#"))
}

func TestLastSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	assert.Equal(t, 3, lastSeparator("abc#def", "#", 7))
	assert.Equal(t, 0, lastSeparator("abc#def", "#", 3))
	assert.Equal(t, 3, lastSeparator("abc#def", "#", 4))
	assert.Equal(t, 0, lastSeparator("#abc", "#", 4))
	assert.Equal(t, 3, lastSeparator("abc##", "##", 4))
}
