package tokenizer

import (
	"fmt"

	"github.com/npillmayer/pmtok/fst"
	"github.com/npillmayer/pmtok/runtime"
)

// DefaultLexiconName is the name given to lexicons without a name.
const DefaultLexiconName = "unknown_pmatch_tokenized_dict"

// Assemble creates a naive tokenizer around a lexicon. The tokenizer matches
// either a lexicon entry or a run of symbols which are neither whitespace nor
// punctuation, in both cases only between word boundaries. Fallback tokens
// carry the maximum weight, so lexicon entries always win.
//
// The lexicon is attached to the container as an RTN, under its own name.
func Assemble(lexicon *fst.Transducer, opts ...runtime.Option) (*runtime.Container, error) {
	name := lexicon.Name()
	if name == "" || name == fst.TopName {
		name = DefaultLexiconName
	}
	lexicon = lexicon.WithName(name)
	// word boundaries are whitespace, punctuation and the ends of the input
	wb := fst.Union(fst.WhitespaceAcceptor(), fst.PunctuationAcceptor())
	others := fst.SetFinalWeights(fst.Plus(fst.ExcList(wb)), fst.MaxWeight)
	wbList := fst.Union(fst.List(wb), fst.Symbol(fst.Boundary, fst.Boundary))
	center := fst.Union(others, fst.InsertCall(name))
	tok := fst.Concat(fst.LeftContext(wbList), center, fst.RightContext(wbList))
	tok = fst.Minimize(fst.AddDelimiters(tok)).WithName(fst.TopName)
	// harmonize: symbols of the tokenizer unknown to the lexicon are added
	// to the lexicon's alphabet, so both share symbol IDs
	missing := tok.Alphabet().Difference(lexicon.Alphabet())
	lexicon = lexicon.WithSymbols(missing...)
	tracer().Debugf("tokenizer %s around lexicon %s, %d symbols added", tok, lexicon, len(missing))
	symtab := runtime.NewSymbolTable()
	dict, err := runtime.Compile(lexicon, symtab, false)
	if err != nil {
		return nil, fmt.Errorf("compiling lexicon: %w", err)
	}
	top, err := runtime.Compile(tok, symtab, true)
	if err != nil {
		return nil, fmt.Errorf("compiling tokenizer: %w", err)
	}
	return runtime.NewContainer(top, symtab, []*runtime.Machine{dict}, opts...)
}
