package format

import (
	"bytes"
	"testing"

	"github.com/npillmayer/pmtok"
	"github.com/npillmayer/pmtok/config"
	"github.com/npillmayer/pmtok/fst"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatter(t *testing.T, opts ...config.Option) *Formatter {
	cfg, err := config.New(opts...)
	require.NoError(t, err)
	f, err := New(cfg)
	require.NoError(t, err)
	return f
}

func single(input, output string, w float64) pmtok.LocationVectorVector {
	return pmtok.LocationVectorVector{{{Input: input, Output: output, Weight: w}}}
}

func nonMatching(text string) pmtok.LocationVector {
	return pmtok.LocationVector{{Input: text, Output: pmtok.NonMatching}}
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	f := formatter(t)
	lvv := single("Hello world", "Hello world+Gre", 0)
	assert.Equal(t, "Hello world\n\n", f.RenderString("Hello world", lvv))
	f = formatter(t, config.WithPrintWeights())
	lvv = pmtok.LocationVectorVector{{
		{Input: "Hello", Output: "Hello+A", Weight: 1.5},
		{Input: "Hello", Output: "Hello+B", Weight: 2},
	}}
	assert.Equal(t, "Hello\t1.5\n\n", f.RenderString("Hello", lvv))
}

func TestXerox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	f := formatter(t, config.WithFormat(config.Xerox))
	lvv := single("Hello world", "Hello world+Gre", 0)
	assert.Equal(t, "Hello world\tHello world+Gre\n\n", f.RenderString("Hello world", lvv))
}

func TestWeightOrderIsPreserved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	f := formatter(t, config.WithFormat(config.Xerox), config.WithPrintWeights())
	lvv := pmtok.LocationVectorVector{{
		{Input: "a", Output: "x", Weight: 2},
		{Input: "a", Output: "y", Weight: 1},
	}}
	assert.Equal(t, "a\tx\t2\na\ty\t1\n\n", f.RenderString("a", lvv))
}

func TestCG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	f := formatter(t, config.WithFormat(config.CG))
	assert.Equal(t, "\"<cats>\"\n\tcat+N+Pl\n\n",
		f.RenderString("cats", single("cats", "cat+N+Pl", 0)))
	assert.Equal(t, "\"<cats>\"\n\t\"cats\"+N+Pl\n\n",
		f.RenderString("cats", single("cats", "cats+N+Pl", 0)))
	f = formatter(t, config.WithFormat(config.CG), config.WithPrintWeights())
	assert.Equal(t, "\"<cats>\"\n\t\"cats\"+N+Pl\t0.25\n\n",
		f.RenderString("cats", single("cats", "cats+N+Pl", 0.25)))
}

func TestGTD(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	f := formatter(t, config.WithFormat(config.GTD))
	out := f.RenderString("New York", single("New York", "New York#propername+loc", 0))
	assert.Equal(t, "\"<New York>\"\n"+
		"\t\"propername\" loc <W:0>\n"+
		"\t\t\"\" New York <W:0>\n"+
		"\n", out)
	// tokenized without analysis
	out = f.RenderString("x", single("x", "", 0))
	assert.Equal(t, "\"<x>\"\n\t\"x\" ?\n\n", out)
	// empty analyses are skipped among others
	lvv := pmtok.LocationVectorVector{{
		{Input: "x", Output: "", Weight: 0},
		{Input: "x", Output: "x+N", Weight: 1},
	}}
	assert.Equal(t, "\"<x>\"\n\t\"x\" N <W:1>\n\n", f.RenderString("x", lvv))
}

func TestGTDWithParts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	f := formatter(t, config.WithFormat(config.GTD), config.WithWeightTag("WEIGHT"))
	lvv := pmtok.LocationVectorVector{{{
		Input:       "New York",
		Output:      "New York+N",
		Weight:      0.5,
		InputParts:  []int{4},
		OutputParts: []int{4},
	}}}
	assert.Equal(t, "\"<New York>\"\n"+
		"\t\"York\" N <WEIGHT:0.5> \"<York>\"\n"+
		"\t\t\"\" New  <WEIGHT:0.5> \"<New >\"\n"+
		"\n", f.RenderString("New York", lvv))
}

func TestNonMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	lvv := pmtok.LocationVectorVector{nonMatching("a\nb")}
	expected := map[config.Format]string{
		config.Tokenize: "a\nb\n",
		config.Xerox:    "a\nb\ta\nb+?\n",
		config.CG:       "\"<a\nb>\"\n\t\"a\nb\" ?\n",
		config.GTD:      ":a\\nb\n\n",
		config.FinnPos:  "a\nb\t_\t_\t_\t_\n\n",
	}
	for format, exp := range expected {
		f := formatter(t, config.WithFormat(format), config.WithPrintAll())
		assert.Equal(t, exp, f.RenderString("a\nb", lvv), format.String())
	}
	// without print-all, non-matching text is dropped
	f := formatter(t, config.WithFormat(config.Xerox))
	lvv = pmtok.LocationVectorVector{nonMatching(" "), single("a", "A", 0)[0]}
	assert.Equal(t, "a\tA\n\n", f.RenderString(" a", lvv))
}

func TestNoOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	expected := map[config.Format]string{
		config.Tokenize: "Hello\n\n",
		config.Xerox:    "Hello\tHello+?\n\n",
		config.CG:       "\"<Hello>\"\n\t\"Hello\" ?\n\n",
		config.GTD:      "\"<Hello>\"\n\t\"Hello\" ?\n\n\n",
		config.FinnPos:  "Hello\t_\t_\t_\t_\n\n",
	}
	for format, exp := range expected {
		f := formatter(t, config.WithFormat(format), config.WithPrintAll())
		assert.Equal(t, exp, f.RenderString("Hello", nil), format.String())
	}
	f := formatter(t)
	assert.Equal(t, "", f.RenderString("Hello", nil))
}

func TestFinnPos(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	f := formatter(t, config.WithFormat(config.FinnPos))
	lvv := pmtok.LocationVectorVector{{
		{Input: "cats", Output: "cat N Sg"},
		{Input: "cats", Output: "cat N Pl"},
	}}
	// split at the last space: lemma "cat N" contains a space and is skipped
	assert.Equal(t, "cats\t_\t_\tPl Sg\t_\n\n", f.RenderString("cats", lvv))
	lvv = pmtok.LocationVectorVector{{
		{Input: "cats", Output: "cat Sg"},
		{Input: "cats", Output: "cat Pl"},
		{Input: "cats", Output: "noanalysis"},
	}, {
		{Input: "dog", Output: "dog N"},
	}}
	assert.Equal(t, "cats\t_\tcat\tPl Sg\t_\ndog\t_\tdog\tN\t_\n\n", f.RenderString("cats dog", lvv))
}

func TestRenderWrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	var buf bytes.Buffer
	f := formatter(t, config.WithFormat(config.Xerox))
	require.NoError(t, f.Render(&buf, "a", single("a", "A", 0)))
	assert.Equal(t, "a\tA\n\n", buf.String())
}

func TestFormatWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.format")
	defer teardown()
	//
	assert.Equal(t, "0", formatWeight(0))
	assert.Equal(t, "0.5", formatWeight(0.5))
	assert.Equal(t, "1.23457e+06", formatWeight(1234567))
	assert.Equal(t, "3.40282e+38", formatWeight(fst.MaxWeight))
}
