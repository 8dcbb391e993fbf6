package format

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/pmtok"
)

// finnposRenderer prints one line per span: the input, a blank feature
// column, all lemmas, all tags and a blank column.
type finnposRenderer struct{}

func (r finnposRenderer) group(b *strings.Builder, lv pmtok.LocationVector) {
	lemmas := treeset.NewWithStringComparator()
	tags := treeset.NewWithStringComparator()
	for _, loc := range lv {
		// the last space separates lemma and tag
		k := strings.LastIndexByte(loc.Output, ' ')
		if k < 0 {
			continue
		}
		if lemma := loc.Output[:k]; !strings.Contains(lemma, " ") {
			lemmas.Add(lemma)
		}
		if tag := loc.Output[k+1:]; !strings.Contains(tag, " ") {
			tags.Add(tag)
		}
	}
	b.WriteString(lv[0].Input + "\t_\t" + joinSet(lemmas) + "\t" + joinSet(tags) + "\t_\n")
}

func joinSet(set *treeset.Set) string {
	if set.Empty() {
		return "_"
	}
	strs := make([]string, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		strs = append(strs, it.Value().(string))
	}
	return strings.Join(strs, " ")
}

func (r finnposRenderer) nonMatching(b *strings.Builder, text string) {
	b.WriteString(text + "\t_\t_\t_\t_\n")
}

func (r finnposRenderer) noOutput(b *strings.Builder, text string) {
	r.nonMatching(b, text)
}

func (r finnposRenderer) endChunk(b *strings.Builder) {
	b.WriteByte('\n')
}
