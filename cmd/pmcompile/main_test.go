package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/pmtok/fst/att"
	"github.com/npillmayer/pmtok/tokenizer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lexiconTSV = `# test lexicon
cats	cat+N+Pl
cats	cat+V+Sg3	2.5
New |York	New York+N|+Prop
`

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.cli")
	defer teardown()
	//
	dir := t.TempDir()
	in := filepath.Join(dir, "animals.tsv")
	require.NoError(t, os.WriteFile(in, []byte(lexiconTSV), 0644))
	for _, out := range []string{"animals.att", "animals.att.gz"} {
		out = filepath.Join(dir, out)
		var stderr bytes.Buffer
		require.Equal(t, 0, run([]string{in, out}, &stderr), stderr.String())
		ts, err := att.Open(out)
		require.NoError(t, err)
		require.Len(t, ts, 1)
		assert.Equal(t, "animals", ts[0].Name())
		c, err := tokenizer.Load(out)
		require.NoError(t, err)
		lvv := c.Locate("New York cats", 0)
		require.Len(t, lvv, 3)
		assert.Equal(t, "New York+N+Prop", lvv[0][0].Output)
		assert.Equal(t, []int{4}, lvv[0][0].InputParts)
		assert.Equal(t, "cat+V+Sg3", lvv[2][1].Output)
		assert.Equal(t, 2.5, lvv[2][1].Weight)
	}
}

func TestCompileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.cli")
	defer teardown()
	//
	dir := t.TempDir()
	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"only-one"}, &stderr))
	in := filepath.Join(dir, "bad.tsv")
	require.NoError(t, os.WriteFile(in, []byte("a|b\tA\n"), 0644))
	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-name", "x", in, filepath.Join(dir, "x.att")}, &stderr))
	assert.Contains(t, stderr.String(), "malformed lexicon entry")
	stderr.Reset()
	assert.Equal(t, 1, run([]string{filepath.Join(dir, "missing.tsv"), filepath.Join(dir, "y.att")}, &stderr))
}
