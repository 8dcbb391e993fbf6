package att

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine scanner for AT&T records

const (
	tokField = iota + 1
	tokTab
	tokNewline
)

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

// recordLexer returns the (shared) DFA for splitting archives into records.
func recordLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`\t`), makeToken(tokTab))
		lexer.Add([]byte(`\r?\n`), makeToken(tokNewline))
		lexer.Add([]byte(`[^\t\n]+`), makeToken(tokField))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// scanRecords splits data into lines of tab-separated fields and calls
// record for every non-empty line. Line numbers start with 1.
func scanRecords(data []byte, record func(line int, fields []string) error) error {
	lx, err := recordLexer()
	if err != nil {
		return err
	}
	sc, err := lx.Scanner(data)
	if err != nil {
		return err
	}
	var fields []string
	line, last := 1, tokNewline
	flush := func() error {
		if last == tokTab {
			fields = append(fields, "")
		}
		if len(fields) == 0 {
			return nil
		}
		err := record(line, fields)
		fields = nil
		return err
	}
	for tok, err, eof := sc.Next(); !eof; tok, err, eof = sc.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return fmt.Errorf("%w: line %d: unreadable input at byte %d", ErrFormat, line, ui.FailTC)
			}
			return err
		}
		token := tok.(*lexmachine.Token)
		switch token.Type {
		case tokField:
			fields = append(fields, strings.TrimSuffix(token.Value.(string), "\r"))
		case tokTab:
			if last != tokField {
				fields = append(fields, "")
			}
		case tokNewline:
			if err := flush(); err != nil {
				return err
			}
			line++
		}
		last = token.Type
	}
	return flush()
}
