/*
Package att reads and writes transducer archives in AT&T tabular text format.

An archive holds one or more transducers, separated by lines consisting of
"--". Each transducer is a sequence of tab-separated lines:

    src  dst  in  out  [weight]    an arc
    state  [weight]                a final state

The source state of the first line is the start state. Epsilon is written as
"@0@", a space as "@_SPACE_@" and a tab as "@_TAB_@". Two optional header
lines extend the classic format:

    #name     NAME                 names the transducer (e.g. TOP)
    #symbols  sym  sym ...         alphabet symbols without an arc

Archives may be gzip-compressed; Open and Read detect this automatically.
Open memory-maps the archive file.

Symbol classes have no representation in AT&T format. Transducers containing
class arcs cannot be written; they are assembled at load time instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package att

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.att'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.att")
}
