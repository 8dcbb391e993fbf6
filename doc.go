/*
Package pmtok is a pattern-matching tokenizer and analyzer for text streams.

PMTok runs a weighted finite-state transducer ("pmatch" automaton) over chunks
of text, collects the (possibly ambiguous) analyses of every matched span and
serializes them into one of several interchange formats used by NLP
pipelines. Package structure is as follows:

■ fst: Package fst implements weighted transducers and the combinators to
build them, plus package att for reading and writing automaton archives.

■ runtime: Package runtime compiles transducers into matching machines and
implements the time-bounded locate operation.

■ tokenizer: Package tokenizer assembles a tokenizer around a bare lexicon,
drives matching per chunk and connects segmentation, matching and output.

■ segment: Package segment splits an input stream into chunks.

■ format: Package format implements the output formats (tokenize, Xerox, CG,
Giellatekno/Divvun CG, FinnPos).

■ config: Package config holds the process-wide, read-only configuration.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pmtok
