package att

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/npillmayer/pmtok/fst"
	"github.com/npillmayer/schuko/gtrace"
)

// ErrFormat is returned for archives which cannot be decoded.
var ErrFormat = errors.New("bad transducer archive")

var gzipMagic = []byte{0x1f, 0x8b}

// Open memory-maps the archive file at path and decodes all transducers
// contained in it.
func Open(path string) ([]*fst.Transducer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: archive %s is empty", ErrFormat, path)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()
	tracer().Debugf("mapped archive %s, %d bytes", path, len(m))
	if bytes.HasPrefix(m, gzipMagic) {
		return Read(bytes.NewReader(m))
	}
	return Parse(m)
}

// Read decodes all transducers from r, which may be gzip-compressed.
func Read(r io.Reader) ([]*fst.Transducer, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		return Parse(data)
	}
	data, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes all transducers of an uncompressed archive. The returned
// transducers do not reference data.
func Parse(data []byte) ([]*fst.Transducer, error) {
	p := &parser{}
	if err := scanRecords(data, p.record); err != nil {
		return nil, syntaxError(err)
	}
	if err := p.finish(); err != nil {
		return nil, syntaxError(err)
	}
	if len(p.result) == 0 {
		return nil, syntaxError(fmt.Errorf("%w: archive contains no transducer", ErrFormat))
	}
	tracer().Infof("read %d transducer(s) from archive", len(p.result))
	return p.result, nil
}

// syntaxError reports err to the global syntax tracer, if one is installed.
func syntaxError(err error) error {
	if gtrace.SyntaxTracer != nil {
		gtrace.SyntaxTracer.Errorf("archive: %v", err)
	} else {
		tracer().Errorf("archive: %v", err)
	}
	return err
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	name    string
	extra   []string
	builder *fst.Builder
	ids     map[int]fst.StateID
	result  []*fst.Transducer
}

func (p *parser) record(line int, fields []string) error {
	if len(fields) == 1 && fields[0] == "--" {
		return p.finish()
	}
	switch fields[0] {
	case "#name":
		if len(fields) != 2 || fields[1] == "" {
			return fmt.Errorf("%w: line %d: malformed name header", ErrFormat, line)
		}
		if p.builder != nil {
			return fmt.Errorf("%w: line %d: name header after first state", ErrFormat, line)
		}
		p.name = fields[1]
		return nil
	case "#symbols":
		for _, s := range fields[1:] {
			p.extra = append(p.extra, decodeSymbol(s))
		}
		return nil
	}
	src, err := p.state(fields[0], line)
	if err != nil {
		return err
	}
	switch len(fields) {
	case 1, 2:
		w, err := weight(fields[1:], line)
		if err != nil {
			return err
		}
		p.builder.SetFinal(src, w)
	case 4, 5:
		dst, err := p.state(fields[1], line)
		if err != nil {
			return err
		}
		w, err := weight(fields[4:], line)
		if err != nil {
			return err
		}
		if fields[2] == "" || fields[3] == "" {
			return fmt.Errorf("%w: line %d: empty arc label", ErrFormat, line)
		}
		p.builder.AddArc(src, fst.Arc{
			In:     decodeSymbol(fields[2]),
			Out:    decodeSymbol(fields[3]),
			Weight: w,
			Target: dst,
		})
	default:
		return fmt.Errorf("%w: line %d: unexpected number of fields (%d)", ErrFormat, line, len(fields))
	}
	return nil
}

// state maps an archive state number to a builder state. The first state
// seen in a section is the start state.
func (p *parser) state(field string, line int) (fst.StateID, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: line %d: invalid state %q", ErrFormat, line, field)
	}
	if p.builder == nil {
		p.builder = fst.NewBuilder(p.name)
		p.ids = make(map[int]fst.StateID)
	}
	if id, ok := p.ids[n]; ok {
		return id, nil
	}
	id := fst.Start
	if len(p.ids) > 0 {
		id = p.builder.AddState()
	}
	p.ids[n] = id
	return id, nil
}

// finish completes the current section. Sections without any content are
// ignored.
func (p *parser) finish() error {
	if p.builder == nil && p.name == "" && len(p.extra) == 0 {
		return nil
	}
	if p.builder == nil {
		p.builder = fst.NewBuilder(p.name)
	}
	p.builder.AddSymbols(p.extra...)
	t, err := p.builder.Transducer()
	if err != nil {
		return fmt.Errorf("%w: transducer #%d: %v", ErrFormat, len(p.result)+1, err)
	}
	tracer().Debugf("decoded %s", t)
	p.result = append(p.result, t)
	p.name, p.extra, p.builder, p.ids = "", nil, nil, nil
	return nil
}

func weight(fields []string, line int) (float64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: invalid weight %q", ErrFormat, line, fields[0])
	}
	return w, nil
}

// --- Symbol escapes --------------------------------------------------------

const (
	attEpsilon = "@0@"
	attSpace   = "@_SPACE_@"
	attTab     = "@_TAB_@"
	attNewline = "@_NEWLINE_@"
)

func decodeSymbol(s string) string {
	switch s {
	case attEpsilon:
		return fst.Epsilon
	case attSpace:
		return " "
	case attTab:
		return "\t"
	case attNewline:
		return "\n"
	}
	return s
}

func encodeSymbol(s string) string {
	switch s {
	case fst.Epsilon:
		return attEpsilon
	case " ":
		return attSpace
	case "\t":
		return attTab
	case "\n":
		return attNewline
	}
	return s
}
