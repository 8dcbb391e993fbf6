package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTSV reads lexicon entries from tab-separated lines.
func ReadTSV(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: line %d: expected 2 or 3 fields, have %d",
				ErrMalformedEntry, line, len(fields))
		}
		e := Entry{Surface: fields[0], Analysis: fields[1]}
		if len(fields) == 3 {
			w, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: invalid weight %q", ErrMalformedEntry, line, fields[2])
			}
			e.Weight = w
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("read %d lexicon entries", len(entries))
	return entries, nil
}
