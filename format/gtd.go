package format

import (
	"strings"

	"github.com/npillmayer/pmtok"
	"github.com/npillmayer/pmtok/config"
)

// gtdRenderer renders CG cohorts with subreadings.
type gtdRenderer struct {
	cfg config.Config
}

func (r gtdRenderer) group(b *strings.Builder, lv pmtok.LocationVector) {
	b.WriteString(`"<` + lv[0].Input + `>"` + "\n")
	if len(lv) == 1 && lv[0].Output == "" { // tokenized, but without analysis
		b.WriteString("\t\"" + lv[0].Input + "\" ?\n")
		return
	}
	for _, loc := range lv {
		if loc.Output == "" {
			continue
		}
		d := newDecomposer(loc, r.cfg.SubreadingSeparator)
		for sr, ok := d.next(); ok; sr, ok = d.next() {
			r.subreading(b, sr, loc.Weight)
		}
	}
}

// subreading writes a reading line. The first tag separator ends the lemma,
// every further one separates tags.
func (r gtdRenderer) subreading(b *strings.Builder, sr Subreading, weight float64) {
	sep, text := r.cfg.TagSeparator, sr.Text
	b.WriteString(strings.Repeat("\t", sr.Depth+1))
	b.WriteByte('"')
	i := 0
	if j := strings.Index(text, sep); j >= 0 {
		b.WriteString(text[:j])
		i = j + len(sep)
	}
	b.WriteByte('"')
	for {
		j := strings.Index(text[i:], sep)
		if j < 0 {
			break
		}
		b.WriteString(" " + text[i:i+j])
		i += j + len(sep)
	}
	if i < len(text) {
		b.WriteString(" " + text[i:])
	}
	if r.cfg.PrintWeights {
		b.WriteString(" <" + r.cfg.WeightTag + ":" + formatWeight(weight) + ">")
	}
	if sr.Input != "" {
		b.WriteString(` "<` + sr.Input + `>"`)
	}
	b.WriteByte('\n')
}

func (r gtdRenderer) nonMatching(b *strings.Builder, text string) {
	b.WriteString(":" + strings.ReplaceAll(text, "\n", `\n`) + "\n")
}

func (r gtdRenderer) noOutput(b *strings.Builder, text string) {
	writeUnknownCohort(b, text)
	b.WriteByte('\n')
}

func (r gtdRenderer) endChunk(b *strings.Builder) {
	b.WriteByte('\n')
}
