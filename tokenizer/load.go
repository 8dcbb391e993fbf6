package tokenizer

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pmtok/fst"
	"github.com/npillmayer/pmtok/fst/att"
	"github.com/npillmayer/pmtok/runtime"
)

// ErrBadArchive is returned by Load if an archive exists but its content is
// not usable.
var ErrBadArchive = errors.New("archive doesn't look right")

// Load reads an archive and creates a container from it. If the first
// transducer of the archive is named TOP, the archive is a complete
// container and further transducers are its RTNs. Otherwise the first
// transducer is a lexicon and Load assembles a tokenizer around it.
//
// Errors opening the file are returned as they are; everything else wraps
// ErrBadArchive.
func Load(path string, opts ...runtime.Option) (*runtime.Container, error) {
	ts, err := att.Open(path)
	if err != nil {
		if errors.Is(err, att.ErrFormat) {
			return nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
		}
		return nil, err
	}
	var c *runtime.Container
	if ts[0].Name() == fst.TopName {
		tracer().Infof("archive %s is a container with %d transducer(s)", path, len(ts))
		c, err = runtime.Link(ts, opts...)
	} else {
		tracer().Infof("archive %s holds lexicon %q", path, ts[0].Name())
		c, err = Assemble(ts[0], opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
	}
	return c, nil
}
