/*
Command pmtokenize tokenizes and analyzes text read from standard input.

Usage:

    pmtokenize [options] ARCHIVE

ARCHIVE is a transducer archive in AT&T text format, possibly gzipped. It
either contains a complete pattern matching container (the first transducer
named TOP) or a single lexicon, around which a naive whitespace and
punctuation tokenizer is built.

Options:

    -n, -newline             every line is a chunk (default: blank lines separate chunks)
    -k, -keep-newline        keep line breaks in chunks (implies -n)
    -a, -print-all           print non-matching text
    -w, -print-weights       print weights
    -m, -tokenize-multichar  recognize multi-character symbols of the archive in the input
    -t, -time-cutoff S       spend at most S seconds per chunk (0 = unlimited)
    -z, -segment             print tokens only (default)
    -x, -xerox               Xerox output
    -c, -cg                  Constraint Grammar output
    -g, -gtd                 Giellatekno/Divvun CG output (implies -w -a -k)
    -f, -finnpos             FinnPos output
    -v, -verbose             print informational messages while matching
    -config FILE             read a YAML configuration profile before applying options
    -trace LEVEL             trace level [Debug|Info|Error]
    -i                       interactive mode

Options are applied in order, so "-g -x" gives Xerox output with the
settings -g implies.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.cli'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.cli")
}
