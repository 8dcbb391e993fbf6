package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidOption is returned for option values which are out of range.
var ErrInvalidOption = errors.New("invalid option")

// Format selects the output format.
type Format int

// Output formats.
const (
	Tokenize Format = iota // one token per line
	Xerox                  // input, output and weight, tab separated
	CG                     // Constraint Grammar cohorts
	GTD                    // Giellatekno/Divvun CG with subreadings
	FinnPos                // FinnPos columns
)

var formatNames = []string{"tokenize", "xerox", "cg", "gtd", "finnpos"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat finds a format by name.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return Tokenize, fmt.Errorf("%w: unknown format %q", ErrInvalidOption, name)
}

// Config is the format configuration. It is created once and read-only
// afterwards.
type Config struct {
	Format              Format
	BlanklineSeparated  bool          // segment at blank lines; otherwise at every newline
	KeepNewlines        bool          // pass line terminators on to the matcher
	PrintAll            bool          // print non-matching text
	PrintWeights        bool          // print the weight of every analysis
	TokenizeMultichar   bool          // split input at multi-character symbols
	TagSeparator        string        // separates lemma and tags
	SubreadingSeparator string        // separates stacked subreadings
	WeightTag           string        // label of the weight tag in gtd output
	TimeCutoff          time.Duration // time budget per chunk, 0 for unlimited
	Verbose             bool
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Format:              Tokenize,
		BlanklineSeparated:  true,
		TagSeparator:        "+",
		SubreadingSeparator: "#",
		WeightTag:           "W",
	}
}

// Option modifies a configuration under construction.
type Option func(*Config) error

// New creates a configuration from the defaults and a list of options.
func New(opts ...Option) (Config, error) {
	return Default().With(opts...)
}

// With returns a copy of c with options applied. c is unchanged.
func (c Config) With(opts ...Option) (Config, error) {
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return c, err
		}
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	tracer().Debugf("config = %s", c)
	return c, nil
}

// Validate checks the configuration for values out of range.
func (c Config) Validate() error {
	switch {
	case c.Format < Tokenize || c.Format > FinnPos:
		return fmt.Errorf("%w: format %d", ErrInvalidOption, c.Format)
	case c.TimeCutoff < 0:
		return fmt.Errorf("%w: negative time cutoff", ErrInvalidOption)
	case c.TagSeparator == "" || c.SubreadingSeparator == "":
		return fmt.Errorf("%w: empty separator", ErrInvalidOption)
	case c.KeepNewlines && c.BlanklineSeparated:
		return fmt.Errorf("%w: keep-newline requires newline segmentation", ErrInvalidOption)
	}
	return nil
}

func (c Config) String() string {
	var flags []string
	add := func(on bool, name string) {
		if on {
			flags = append(flags, name)
		}
	}
	add(!c.BlanklineSeparated, "newline")
	add(c.KeepNewlines, "keep-newline")
	add(c.PrintAll, "print-all")
	add(c.PrintWeights, "print-weights")
	add(c.TokenizeMultichar, "multichar")
	add(c.Verbose, "verbose")
	return fmt.Sprintf("<config %s [%s] tag=%q sub=%q cutoff=%s>", c.Format,
		strings.Join(flags, " "), c.TagSeparator, c.SubreadingSeparator, c.TimeCutoff)
}

// --- Options ---------------------------------------------------------------

// WithFormat selects the output format. Selecting GTD switches on
// print-weights, print-all, keep-newline and newline segmentation.
func WithFormat(f Format) Option {
	return func(c *Config) error {
		c.Format = f
		if f == GTD {
			c.PrintWeights, c.PrintAll = true, true
			c.KeepNewlines, c.BlanklineSeparated = true, false
		}
		return nil
	}
}

// WithNewlineSegmentation makes every input line a chunk of its own.
func WithNewlineSegmentation() Option {
	return func(c *Config) error {
		c.BlanklineSeparated = false
		return nil
	}
}

// WithKeepNewlines passes line terminators on to the matcher. It implies
// newline segmentation.
func WithKeepNewlines() Option {
	return func(c *Config) error {
		c.KeepNewlines, c.BlanklineSeparated = true, false
		return nil
	}
}

// WithPrintAll prints non-matching text.
func WithPrintAll() Option {
	return func(c *Config) error {
		c.PrintAll = true
		return nil
	}
}

// WithPrintWeights prints weights.
func WithPrintWeights() Option {
	return func(c *Config) error {
		c.PrintWeights = true
		return nil
	}
}

// WithMultichar tokenizes input at multi-character symbols.
func WithMultichar() Option {
	return func(c *Config) error {
		c.TokenizeMultichar = true
		return nil
	}
}

// WithVerbose switches on informational messages.
func WithVerbose() Option {
	return func(c *Config) error {
		c.Verbose = true
		return nil
	}
}

// WithTimeCutoff limits the time spent matching a chunk. 0 means no limit.
func WithTimeCutoff(seconds float64) Option {
	return func(c *Config) error {
		if seconds < 0 || math.IsNaN(seconds) {
			return fmt.Errorf("%w: time cutoff %g", ErrInvalidOption, seconds)
		}
		c.TimeCutoff = time.Duration(seconds * float64(time.Second))
		return nil
	}
}

// WithSeparators sets the tag separator and the subreading separator.
func WithSeparators(tag, subreading string) Option {
	return func(c *Config) error {
		if tag == "" || subreading == "" {
			return fmt.Errorf("%w: empty separator", ErrInvalidOption)
		}
		c.TagSeparator, c.SubreadingSeparator = tag, subreading
		return nil
	}
}

// WithWeightTag sets the label of weight tags in gtd output.
func WithWeightTag(tag string) Option {
	return func(c *Config) error {
		c.WeightTag = tag
		return nil
	}
}
