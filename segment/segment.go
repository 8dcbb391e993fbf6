/*
Package segment splits an input stream into chunks, the units of analysis.

Two modes are supported. In blank-line mode (the default) consecutive
non-empty lines form a chunk; a line consisting of a line terminator only
ends the current chunk. In newline mode every line is a chunk of its own.

Chunks are produced lazily, in input order, by a single forward scan:

    seg := segment.New(os.Stdin, segment.BlankLine, false)
    for seg.Next() {
        chunk := seg.Chunk()
        …
    }
    if err := seg.Err(); err != nil {
        …
    }

Chunks keep the line terminators as read. Consumers are expected to strip a
single trailing newline before matching. With keep-newlines in newline mode,
an additional newline is appended to every chunk, so that the line, including
its terminator, survives this stripping.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segment

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmtok.segment'.
func tracer() tracing.Trace {
	return tracing.Select("pmtok.segment")
}

// Mode is a segmentation policy.
type Mode int

// Segmentation modes.
const (
	BlankLine Mode = iota // chunks are separated by blank lines
	Newline               // every line is a chunk
)

// Segmenter is an iterator over the chunks of an input stream. It is not
// restartable.
type Segmenter struct {
	r     *bufio.Reader
	mode  Mode
	keep  bool
	chunk string
	err   error
	done  bool
	count int
}

// New creates a segmenter for r. keepNewlines is relevant in newline mode
// only.
func New(r io.Reader, mode Mode, keepNewlines bool) *Segmenter {
	return &Segmenter{
		r:    bufio.NewReader(r),
		mode: mode,
		keep: keepNewlines,
	}
}

// Next advances to the next chunk. It returns false at the end of input or
// after a read error.
func (s *Segmenter) Next() bool {
	if s.done {
		s.chunk = ""
		return false
	}
	var ok bool
	if s.mode == Newline {
		ok = s.nextLine()
	} else {
		ok = s.nextBlock()
	}
	if ok {
		s.count++
		tracer().Debugf("chunk #%d = %q", s.count, s.chunk)
	}
	return ok
}

// Chunk returns the current chunk.
func (s *Segmenter) Chunk() string {
	return s.chunk
}

// Err returns the first read error, if any. End of input is not an error.
func (s *Segmenter) Err() error {
	return s.err
}

func (s *Segmenter) nextLine() bool {
	line, err := s.r.ReadString('\n')
	if err != nil {
		s.stop(err)
		if line == "" {
			return false
		}
	}
	if s.keep {
		line += "\n"
	}
	s.chunk = line
	return true
}

func (s *Segmenter) nextBlock() bool {
	var b strings.Builder
	for {
		line, err := s.r.ReadString('\n')
		if line != "" {
			if line[0] == '\n' {
				if b.Len() > 0 {
					s.chunk = b.String()
					return true
				}
			} else {
				b.WriteString(line)
			}
		}
		if err != nil {
			s.stop(err)
			if b.Len() == 0 {
				return false
			}
			s.chunk = b.String()
			return true
		}
	}
}

func (s *Segmenter) stop(err error) {
	s.done = true
	if err != io.EOF {
		tracer().Errorf("reading input: %v", err)
		s.err = err
	}
}
