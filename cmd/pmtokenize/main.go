package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/pmtok/config"
	"github.com/npillmayer/pmtok/tokenizer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// traceKeys are the tracers of all packages of the module.
var traceKeys = []string{
	"pmtok.fst", "pmtok.att", "pmtok.runtime", "pmtok.lexicon", "pmtok.tokenizer",
	"pmtok.segment", "pmtok.format", "pmtok.config", "pmtok.cli",
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// optionFlag is a command line switch which contributes a configuration
// option. Switches are collected in command line order.
type optionFlag struct {
	opts   *[]config.Option
	value  func(string) (config.Option, error)
	isBool bool
}

func (f optionFlag) String() string   { return "" }
func (f optionFlag) IsBoolFlag() bool { return f.isBool }

func (f optionFlag) Set(s string) error {
	opt, err := f.value(s)
	if err != nil {
		return err
	}
	*f.opts = append(*f.opts, opt)
	return nil
}

// run executes the command and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts []config.Option
	fs := flag.NewFlagSet("pmtokenize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	switches := []struct {
		short, long, usage string
		opt                config.Option
	}{
		{"n", "newline", "every line is a chunk", config.WithNewlineSegmentation()},
		{"k", "keep-newline", "keep line breaks in chunks", config.WithKeepNewlines()},
		{"a", "print-all", "print non-matching text", config.WithPrintAll()},
		{"w", "print-weights", "print weights", config.WithPrintWeights()},
		{"m", "tokenize-multichar", "recognize multi-character symbols", config.WithMultichar()},
		{"z", "segment", "print tokens only", config.WithFormat(config.Tokenize)},
		{"x", "xerox", "Xerox output", config.WithFormat(config.Xerox)},
		{"c", "cg", "Constraint Grammar output", config.WithFormat(config.CG)},
		{"g", "gtd", "Giellatekno/Divvun CG output", config.WithFormat(config.GTD)},
		{"f", "finnpos", "FinnPos output", config.WithFormat(config.FinnPos)},
		{"v", "verbose", "print informational messages", config.WithVerbose()},
	}
	for _, sw := range switches {
		opt := sw.opt
		f := optionFlag{opts: &opts, isBool: true, value: func(s string) (config.Option, error) {
			if on, err := strconv.ParseBool(s); err != nil || !on {
				return nil, fmt.Errorf("switch does not take a value")
			}
			return opt, nil
		}}
		fs.Var(f, sw.short, sw.usage)
		fs.Var(f, sw.long, sw.usage)
	}
	badCutoff := false
	cutoff := optionFlag{opts: &opts, value: func(s string) (config.Option, error) {
		secs, err := strconv.ParseFloat(s, 64)
		if err != nil || secs < 0 {
			badCutoff = true
			return nil, fmt.Errorf("not a time in seconds")
		}
		return config.WithTimeCutoff(secs), nil
	}}
	fs.Var(cutoff, "t", "time limit per chunk in seconds")
	fs.Var(cutoff, "time-cutoff", "time limit per chunk in seconds")
	cfgFile := fs.String("config", "", "YAML configuration profile")
	tlevel := fs.String("trace", "Error", "Trace level [Debug|Info|Error]")
	interactive := fs.Bool("i", false, "interactive mode")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if badCutoff {
			fmt.Fprintln(stderr, "Invalid argument for --time-cutoff")
		}
		return 1
	}
	setTraceLevel(*tlevel)
	switch {
	case fs.NArg() > 1:
		fmt.Fprintln(stderr, "More than one input file given")
		return 1
	case fs.NArg() == 0:
		fmt.Fprintln(stderr, "No input file given")
		return 1
	}
	archive := fs.Arg(0)
	//
	base := config.Default()
	if *cfgFile != "" {
		var err error
		if base, err = config.LoadFile(*cfgFile, base); err != nil {
			fmt.Fprintf(stderr, "Invalid configuration file %s: %v\n", *cfgFile, err)
			return 1
		}
	}
	cfg, err := base.With(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid options: %v\n", err)
		return 1
	}
	if cfg.Verbose && tracing.TraceLevelFromString(*tlevel) == tracing.LevelError {
		tracing.Select("pmtok.runtime").SetTraceLevel(tracing.LevelInfo)
	}
	tracer().Infof("%s", cfg)
	//
	c, err := tokenizer.Load(archive, tokenizer.RuntimeOptions(cfg)...)
	if err != nil {
		if errors.Is(err, tokenizer.ErrBadArchive) {
			fmt.Fprintf(stderr, "The archive in %s doesn't look right.\n"+
				"Did you make it with pmcompile, or does it contain a TOP transducer?\n", archive)
		} else {
			fmt.Fprintf(stderr, "Could not open file %s\n", archive)
		}
		tracer().Errorf("%v", err)
		return 1
	}
	p, err := tokenizer.NewProcessor(c, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if *interactive {
		if err := repl(p, cfg); err != nil {
			tracer().Errorf("%v", err)
			return 3
		}
		return 0
	}
	if err := p.Run(stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	if gtrace.SyntaxTracer != nil {
		gtrace.SyntaxTracer.SetTraceLevel(level)
	}
}
