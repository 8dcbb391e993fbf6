package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pmtok"
	"github.com/npillmayer/pmtok/config"
	"github.com/npillmayer/pmtok/format"
	"github.com/npillmayer/pmtok/tokenizer"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// repl starts interactive mode. Every line entered is a chunk; its analyses
// are printed in the configured format.
func repl(p *tokenizer.Processor, cfg config.Config) error {
	initDisplay()
	rl, err := readline.New("pmtok> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Welcome to pmtokenize, output format is " + cfg.Format.String())
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		text, lvv := p.Matcher().Match(line)
		if len(lvv) == 0 {
			pterm.Error.Println("no analysis")
			continue
		}
		pterm.Print(p.Formatter().RenderString(text, lvv))
		if cfg.Format == config.GTD {
			printSubreadings(lvv, cfg.SubreadingSeparator)
		}
	}
	println("Good bye!")
	return nil
}

// printSubreadings displays the subreadings of every analysis as a tree.
func printSubreadings(lvv pmtok.LocationVectorVector, sep string) {
	for _, lv := range lvv {
		if lv.IsNonMatching() {
			continue
		}
		ll := pterm.LeveledList{{Level: 0, Text: lv.Input()}}
		for _, loc := range lv {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: loc.Output})
			for _, sr := range format.Decompose(loc, sep) {
				text := sr.Text
				if sr.Input != "" {
					text += "  <" + sr.Input + ">"
				}
				ll = append(ll, pterm.LeveledListItem{Level: sr.Depth + 2, Text: text})
			}
		}
		tracer().Debugf("|ll| = %d", len(ll))
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	}
}
