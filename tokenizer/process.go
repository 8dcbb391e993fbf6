package tokenizer

import (
	"io"

	"github.com/npillmayer/pmtok/config"
	"github.com/npillmayer/pmtok/format"
	"github.com/npillmayer/pmtok/runtime"
	"github.com/npillmayer/pmtok/segment"
)

// RuntimeOptions derives the container options from a configuration.
func RuntimeOptions(cfg config.Config) []runtime.Option {
	return []runtime.Option{
		runtime.SingleCodepointTokenization(!cfg.TokenizeMultichar),
		runtime.Verbose(cfg.Verbose),
	}
}

// Processor runs the pipeline of segmentation, matching and output.
type Processor struct {
	cfg       config.Config
	matcher   *Matcher
	formatter *format.Formatter
}

// NewProcessor creates a processor for a container.
func NewProcessor(c *runtime.Container, cfg config.Config) (*Processor, error) {
	f, err := format.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Processor{
		cfg:       cfg,
		matcher:   NewMatcher(c, cfg.TimeCutoff),
		formatter: f,
	}, nil
}

// Matcher returns the matcher of p.
func (p *Processor) Matcher() *Matcher {
	return p.matcher
}

// Formatter returns the formatter of p.
func (p *Processor) Formatter() *format.Formatter {
	return p.formatter
}

// Run processes r chunk by chunk and writes the analyses to w. It stops at
// the first read or write error.
func (p *Processor) Run(r io.Reader, w io.Writer) error {
	mode := segment.BlankLine
	if !p.cfg.BlanklineSeparated {
		mode = segment.Newline
	}
	seg := segment.New(r, mode, p.cfg.KeepNewlines)
	chunks := 0
	for seg.Next() {
		text, lvv := p.matcher.Match(seg.Chunk())
		if err := p.formatter.Render(w, text, lvv); err != nil {
			tracer().Errorf("writing output: %v", err)
			return err
		}
		chunks++
	}
	tracer().Debugf("processed %d chunk(s)", chunks)
	return seg.Err()
}
