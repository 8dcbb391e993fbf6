package att

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/pmtok/fst"
)

// Write encodes transducers into an archive. Transducers containing symbol
// class arcs are rejected with ErrFormat.
func Write(w io.Writer, ts ...*fst.Transducer) error {
	bw := bufio.NewWriter(w)
	for i, t := range ts {
		if i > 0 {
			bw.WriteString("--\n")
		}
		if err := writeOne(bw, t); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeOne(bw *bufio.Writer, t *fst.Transducer) error {
	if t.Name() != "" {
		fmt.Fprintf(bw, "#name\t%s\n", t.Name())
	}
	var labels []string
	for s := 0; s < t.StateCount(); s++ {
		for _, arc := range t.State(fst.StateID(s)).Arcs {
			if arc.Class != nil {
				return fmt.Errorf("%w: transducer %q has a symbol class arc %s", ErrFormat, t.Name(), arc)
			}
			labels = append(labels, arc.In, arc.Out)
		}
	}
	if extra := t.Alphabet().Difference(fst.NewAlphabet(labels...)); len(extra) > 0 {
		for i := range extra {
			extra[i] = encodeSymbol(extra[i])
		}
		fmt.Fprintf(bw, "#symbols\t%s\n", strings.Join(extra, "\t"))
	}
	for s := 0; s < t.StateCount(); s++ {
		st := t.State(fst.StateID(s))
		for _, arc := range st.Arcs {
			fmt.Fprintf(bw, "%d\t%d\t%s\t%s", s, arc.Target, encodeSymbol(arc.In), encodeSymbol(arc.Out))
			writeWeight(bw, arc.Weight)
		}
		if st.Final {
			fmt.Fprintf(bw, "%d", s)
			writeWeight(bw, st.FinalWeight)
		}
	}
	return nil
}

func writeWeight(bw *bufio.Writer, w float64) {
	if w != 0 {
		bw.WriteString("\t" + strconv.FormatFloat(w, 'g', -1, 64))
	}
	bw.WriteByte('\n')
}
