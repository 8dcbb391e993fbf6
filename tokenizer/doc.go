/*
Package tokenizer connects the parts of the tokenizing pipeline.

Input archives either contain a complete pattern matching container, with a
top-level transducer named TOP, or a bare lexicon transducer. For a bare
lexicon, Assemble wraps it into a naive tokenizer: every span delimited by
whitespace, punctuation or the ends of the input is a token, and spans the
lexicon knows are preferred over the generic fallback.

A Processor then segments an input stream into chunks, matches every chunk
and writes the analyses in the configured output format:

    c, err := tokenizer.Load("dict.att", tokenizer.RuntimeOptions(cfg)...)
    …
    p, err := tokenizer.NewProcessor(c, cfg)
    …
    err = p.Run(os.Stdin, os.Stdout)

Chunks are processed strictly one after another, and the output of each
chunk is written in a single write.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokenizer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.tokenizer'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.tokenizer")
}
