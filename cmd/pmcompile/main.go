/*
Command pmcompile compiles a lexicon into a transducer archive for pmtokenize.

Usage:

    pmcompile [-name NAME] [-trace LEVEL] LEXICON.tsv OUT.att[.gz]

LEXICON.tsv holds lines "surface<TAB>analysis[<TAB>weight]". Parts of
multiword entries are separated by '|' in both surface and analysis. If the
name of the output file ends in ".gz", the archive is gzip-compressed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/pmtok/fst/att"
	"github.com/npillmayer/pmtok/lexicon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.cli'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.cli")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("pmcompile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", "", "name of the lexicon (default: file name of the lexicon)")
	tlevel := fs.String("trace", "Error", "Trace level [Debug|Info|Error]")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "Usage: pmcompile [-name NAME] LEXICON.tsv OUT.att[.gz]")
		return 1
	}
	in, out := fs.Arg(0), fs.Arg(1)
	if *name == "" {
		*name = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	}
	if err := compile(*name, in, out); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func compile(name, in, out string) (err error) {
	r, err := os.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()
	entries, err := lexicon.ReadTSV(r)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	lex, err := lexicon.Build(name, entries)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	var w io.Writer = f
	if strings.HasSuffix(out, ".gz") {
		zw := gzip.NewWriter(f)
		defer func() {
			if cerr := zw.Close(); err == nil {
				err = cerr
			}
		}()
		w = zw
	}
	tracer().Infof("writing lexicon %q with %d entries to %s", name, len(entries), out)
	return att.Write(w, lex)
}
