package segment

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func chunks(s *Segmenter) []string {
	var all []string
	for s.Next() {
		all = append(all, s.Chunk())
	}
	return all
}

func TestBlankLineMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.segment")
	defer teardown()
	//
	inputs := []string{
		"a\nb\n\nc\n",
		"\n\na\n\n\n\nb",
		"",
		"\n\n",
		"single line",
	}
	expected := [][]string{
		{"a\nb\n", "c\n"},
		{"a\n", "b"},
		nil,
		nil,
		{"single line"},
	}
	for i, input := range inputs {
		seg := New(strings.NewReader(input), BlankLine, false)
		assert.Equal(t, expected[i], chunks(seg), "input #%d", i)
		assert.NoError(t, seg.Err())
		assert.False(t, seg.Next(), "exhausted segmenter must stay exhausted")
	}
}

func TestBlankLineRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.segment")
	defer teardown()
	//
	input := "The first\nparagraph.\n\nThe second one.\n"
	all := chunks(New(strings.NewReader(input), BlankLine, false))
	assert.Equal(t, input, strings.Join(all, "\n"))
}

func TestNewlineMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.segment")
	defer teardown()
	//
	input := "one\n\ntwo"
	assert.Equal(t, []string{"one\n", "\n", "two"},
		chunks(New(strings.NewReader(input), Newline, false)))
	kept := chunks(New(strings.NewReader(input), Newline, true))
	assert.Equal(t, []string{"one\n\n", "\n\n", "two\n"}, kept)
	// stripping one newline per chunk reproduces the lines
	var lines []string
	for _, c := range kept {
		lines = append(lines, strings.TrimSuffix(c, "\n"))
	}
	assert.Equal(t, input, strings.Join(lines, ""))
}

func TestReadError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.segment")
	defer teardown()
	//
	r := iotest.TimeoutReader(strings.NewReader("a\n\nb\n"))
	seg := New(r, BlankLine, false)
	assert.Equal(t, []string{"a\n", "b\n"}, chunks(seg))
	assert.True(t, errors.Is(seg.Err(), iotest.ErrTimeout))
}
