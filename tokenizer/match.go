package tokenizer

import (
	"strings"
	"time"

	"github.com/npillmayer/pmtok"
	"github.com/npillmayer/pmtok/runtime"
)

// Matcher locates analyses in chunks of text.
type Matcher struct {
	container *runtime.Container
	budget    time.Duration
}

// NewMatcher creates a matcher for a container. budget is the time limit per
// chunk, with 0 meaning no limit.
func NewMatcher(c *runtime.Container, budget time.Duration) *Matcher {
	return &Matcher{container: c, budget: budget}
}

// Match strips one trailing newline from chunk and locates analyses in the
// rest. It returns the text matched against together with the result.
// Results of a match under a time limit may be sub-optimal, but are always
// valid.
func (m *Matcher) Match(chunk string) (string, pmtok.LocationVectorVector) {
	text := strings.TrimSuffix(chunk, "\n")
	if text == "" {
		return text, nil
	}
	return text, m.container.Locate(text, m.budget)
}
