package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/pmtok/fst/att"
	"github.com/npillmayer/pmtok/lexicon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archive(t *testing.T) string {
	lex, err := lexicon.Build("dict", []lexicon.Entry{
		{Surface: "cats", Analysis: "cat+N+Pl"},
		{Surface: "dogs", Analysis: "dog+N+Pl"},
	})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "dict.att")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, att.Write(f, lex))
	return path
}

func call(args []string, input string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.cli")
	defer teardown()
	//
	path := archive(t)
	code, out, _ := call([]string{path}, "cats and dogs\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "cats\n\nand\n\ndogs\n\n", out)
	code, out, _ = call([]string{"-x", path}, "cats\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "cats\tcat+N+Pl\n\n", out)
	code, out, _ = call([]string{"--cg", "-w", path}, "cats\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "\"<cats>\"\n\tcat+N+Pl\t0\n\n", out)
}

func TestRunOptionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.cli")
	defer teardown()
	//
	path := archive(t)
	// -g switches on print-all, so the line break shows up as non-matching
	code, out, _ := call([]string{"-g", "-x", path}, "cats\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "cats\tcat+N+Pl\t0\n\n\n\t\n+?\n", out)
	code, out, _ = call([]string{"-x", "-g", path}, "cats\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "\"<cats>\"\n\t\"cat\" N Pl <W:0>\n:\\n\n\n", out)
}

func TestRunErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.cli")
	defer teardown()
	//
	path := archive(t)
	code, _, msg := call([]string{"-t", "-1", path}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, msg, "Invalid argument for --time-cutoff")
	code, _, msg = call([]string{path, path}, "")
	assert.Equal(t, 1, code)
	assert.Equal(t, "More than one input file given\n", msg)
	code, _, msg = call(nil, "")
	assert.Equal(t, 1, code)
	assert.Equal(t, "No input file given\n", msg)
	missing := filepath.Join(t.TempDir(), "nope.att")
	code, _, msg = call([]string{missing}, "")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Could not open file "+missing+"\n", msg)
	bad := filepath.Join(t.TempDir(), "bad.att")
	require.NoError(t, os.WriteFile(bad, []byte("no archive\n"), 0644))
	code, _, msg = call([]string{bad}, "")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(msg, "The archive in "+bad+" doesn't look right."))
}

func TestRunConfigFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmtok.cli")
	defer teardown()
	//
	path := archive(t)
	profile := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("format: xerox\nprint-weights: true\n"), 0644))
	code, out, _ := call([]string{"-config", profile, path}, "cats\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "cats\tcat+N+Pl\t0\n\n", out)
	require.NoError(t, os.WriteFile(profile, []byte("no-such-key: 1\n"), 0644))
	code, _, _ = call([]string{"-config", profile, path}, "cats\n")
	assert.Equal(t, 1, code)
}
