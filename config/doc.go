/*
Package config holds the format configuration of a tokenizer run.

A Config is an immutable value, created once from options before the first
chunk is processed and passed explicitly to the segmenter, the matcher and
the formatter:

    cfg, err := config.New(
        config.WithFormat(config.CG),
        config.WithPrintWeights(),
    )

Profiles may be loaded from YAML and overlay a base configuration:

    format: gtd
    tokenize-multichar: true
    time-cutoff: 2.5      # seconds

Selecting format gtd implies print-weights, print-all, keep-newline and
newline segmentation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.config'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.config")
}
