/*
Package format renders located analyses in one of several interchange
formats: plain tokens, Xerox, Constraint Grammar (CG), Giellatekno/Divvun CG
with subreadings (gtd), and FinnPos columns.

A Formatter is created once per run from the configuration and selects a
renderer for the configured format:

    f, err := format.New(cfg)
    …
    for seg.Next() {
        text, lvv := matcher.Match(seg.Chunk())
        f.Render(os.Stdout, text, lvv)
    }

Each chunk is rendered in one piece and written with a single call.
Analyses are printed in the order the matcher returns them; the formatter
never re-sorts by weight.

Subreadings

The gtd format decomposes an analysis into stacked subreadings, separated by
the subreading separator. The rightmost segment is the outermost reading.
If a match spans several lexicon-level tokens, every subreading aligned
with a part boundary carries its slice of the input as surface form.
See Decompose.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package format

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.format'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.format")
}
