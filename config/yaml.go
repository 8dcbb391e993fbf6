package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// profile is the YAML representation of a configuration. Absent keys leave
// the base configuration unchanged.
type profile struct {
	Format              *string  `yaml:"format"`
	Newline             *bool    `yaml:"newline"`
	KeepNewline         *bool    `yaml:"keep-newline"`
	PrintAll            *bool    `yaml:"print-all"`
	PrintWeights        *bool    `yaml:"print-weights"`
	TokenizeMultichar   *bool    `yaml:"tokenize-multichar"`
	TimeCutoff          *float64 `yaml:"time-cutoff"`
	TagSeparator        *string  `yaml:"tag-separator"`
	SubreadingSeparator *string  `yaml:"subreading-separator"`
	WeightTag           *string  `yaml:"weight-tag"`
	Verbose             *bool    `yaml:"verbose"`
}

// LoadYAML overlays a YAML profile onto base. Unknown keys are an error.
func LoadYAML(data []byte, base Config) (Config, error) {
	var p profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return base.With(p.options()...)
}

// LoadFile reads a YAML profile from a file and overlays it onto base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	tracer().Infof("loading profile %s", path)
	return LoadYAML(data, base)
}

func (p profile) options() []Option {
	var opts []Option
	if p.Format != nil { // first, as it may switch on other flags
		opts = append(opts, func(c *Config) error {
			f, err := ParseFormat(*p.Format)
			if err != nil {
				return err
			}
			return WithFormat(f)(c)
		})
	}
	setBool := func(v *bool, target func(*Config) *bool) {
		if v != nil {
			opts = append(opts, func(c *Config) error {
				*target(c) = *v
				return nil
			})
		}
	}
	if p.Newline != nil {
		nl := *p.Newline
		opts = append(opts, func(c *Config) error {
			c.BlanklineSeparated = !nl
			return nil
		})
	}
	if p.KeepNewline != nil {
		if *p.KeepNewline {
			opts = append(opts, WithKeepNewlines())
		} else {
			setBool(p.KeepNewline, func(c *Config) *bool { return &c.KeepNewlines })
		}
	}
	setBool(p.PrintAll, func(c *Config) *bool { return &c.PrintAll })
	setBool(p.PrintWeights, func(c *Config) *bool { return &c.PrintWeights })
	setBool(p.TokenizeMultichar, func(c *Config) *bool { return &c.TokenizeMultichar })
	setBool(p.Verbose, func(c *Config) *bool { return &c.Verbose })
	if p.TimeCutoff != nil {
		opts = append(opts, WithTimeCutoff(*p.TimeCutoff))
	}
	if p.TagSeparator != nil || p.SubreadingSeparator != nil {
		opts = append(opts, func(c *Config) error {
			tag, sub := c.TagSeparator, c.SubreadingSeparator
			if p.TagSeparator != nil {
				tag = *p.TagSeparator
			}
			if p.SubreadingSeparator != nil {
				sub = *p.SubreadingSeparator
			}
			return WithSeparators(tag, sub)(c)
		})
	}
	if p.WeightTag != nil {
		opts = append(opts, WithWeightTag(*p.WeightTag))
	}
	return opts
}
