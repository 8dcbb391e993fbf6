package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/pmtok"
	"github.com/npillmayer/pmtok/config"
)

// groupRenderer is implemented once per output format.
type groupRenderer interface {
	group(b *strings.Builder, lv pmtok.LocationVector) // one span with its analyses
	nonMatching(b *strings.Builder, text string)        // a span without analysis
	noOutput(b *strings.Builder, text string)           // a chunk without any span
	endChunk(b *strings.Builder)
}

// Formatter renders location vectors in the configured output format.
// A Formatter is read-only after creation.
type Formatter struct {
	cfg      config.Config
	renderer groupRenderer
}

// New creates a formatter for the format selected by cfg.
func New(cfg config.Config) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Formatter{cfg: cfg}
	switch cfg.Format {
	case config.Tokenize:
		f.renderer = tokenizeRenderer{cfg: cfg}
	case config.Xerox:
		f.renderer = xeroxRenderer{cfg: cfg}
	case config.CG:
		f.renderer = cgRenderer{cfg: cfg}
	case config.GTD:
		f.renderer = gtdRenderer{cfg: cfg}
	case config.FinnPos:
		f.renderer = finnposRenderer{}
	default:
		return nil, fmt.Errorf("%w: no renderer for %s", config.ErrInvalidOption, cfg.Format)
	}
	tracer().Debugf("formatter for %s", cfg.Format)
	return f, nil
}

// Render writes the rendering of the analyses of a chunk to w. text is the
// chunk text the analyses have been located in.
func (f *Formatter) Render(w io.Writer, text string, lvv pmtok.LocationVectorVector) error {
	_, err := io.WriteString(w, f.RenderString(text, lvv))
	return err
}

// RenderString renders the analyses of a chunk into a string.
func (f *Formatter) RenderString(text string, lvv pmtok.LocationVectorVector) string {
	var b strings.Builder
	if len(lvv) == 0 && f.cfg.PrintAll {
		f.renderer.noOutput(&b, text)
	}
	for _, lv := range lvv {
		if lv.IsNonMatching() {
			if f.cfg.PrintAll {
				f.renderer.nonMatching(&b, lv[0].Input)
			}
			continue
		}
		if len(lv) == 0 {
			continue
		}
		f.renderer.group(&b, lv)
	}
	f.renderer.endChunk(&b)
	return b.String()
}

// formatWeight prints a weight the way a C++ output stream with default
// settings does.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', 6, 64)
}

// --- tokenize --------------------------------------------------------------

type tokenizeRenderer struct {
	cfg config.Config
}

func (r tokenizeRenderer) group(b *strings.Builder, lv pmtok.LocationVector) {
	b.WriteString(lv[0].Input)
	if r.cfg.PrintWeights {
		b.WriteString("\t" + formatWeight(lv[0].Weight))
	}
	b.WriteString("\n\n")
}

func (r tokenizeRenderer) nonMatching(b *strings.Builder, text string) {
	b.WriteString(text + "\n")
}

func (r tokenizeRenderer) noOutput(b *strings.Builder, text string) {
	b.WriteString(text + "\n\n")
}

func (r tokenizeRenderer) endChunk(b *strings.Builder) {}

// --- xerox -----------------------------------------------------------------

type xeroxRenderer struct {
	cfg config.Config
}

func (r xeroxRenderer) group(b *strings.Builder, lv pmtok.LocationVector) {
	for _, loc := range lv {
		b.WriteString(loc.Input + "\t" + loc.Output)
		if r.cfg.PrintWeights {
			b.WriteString("\t" + formatWeight(loc.Weight))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func (r xeroxRenderer) nonMatching(b *strings.Builder, text string) {
	b.WriteString(text + "\t" + text + "+?\n")
}

func (r xeroxRenderer) noOutput(b *strings.Builder, text string) {
	b.WriteString(text + "\t" + text + "+?\n\n")
}

func (r xeroxRenderer) endChunk(b *strings.Builder) {}

// --- cg --------------------------------------------------------------------

type cgRenderer struct {
	cfg config.Config
}

func (r cgRenderer) group(b *strings.Builder, lv pmtok.LocationVector) {
	b.WriteString(`"<` + lv[0].Input + `>"` + "\n")
	for _, loc := range lv {
		// analyses starting with the input get the input quoted, as CG tools
		// expect; for all others the analysis is printed as is
		if strings.HasPrefix(loc.Output, loc.Input) {
			b.WriteString("\t\"" + loc.Input + "\"" + loc.Output[len(loc.Input):])
		} else {
			b.WriteString("\t" + loc.Output)
		}
		if r.cfg.PrintWeights {
			b.WriteString("\t" + formatWeight(loc.Weight))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func (r cgRenderer) nonMatching(b *strings.Builder, text string) {
	writeUnknownCohort(b, text)
}

func (r cgRenderer) noOutput(b *strings.Builder, text string) {
	writeUnknownCohort(b, text)
	b.WriteByte('\n')
}

func (r cgRenderer) endChunk(b *strings.Builder) {}

// writeUnknownCohort writes a cohort with a single reading marked unknown.
func writeUnknownCohort(b *strings.Builder, text string) {
	b.WriteString(`"<` + text + `>"` + "\n")
	b.WriteString("\t\"" + text + "\" ?\n")
}
