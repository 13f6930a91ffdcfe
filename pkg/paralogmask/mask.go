package paralogmask

import (
	"io"

	"github.com/bft-labs/paralogmask/internal/adapters/stdio"
	"github.com/bft-labs/paralogmask/internal/app"
	"github.com/bft-labs/paralogmask/internal/domain"
)

// Stats reports what a Mask call did.
type Stats = domain.Stats

// Flag and prefix recognised by Mask.
const (
	ParalogFlag   = domain.ParalogFlag
	CommentPrefix = domain.CommentPrefix
)

// Mask copies r to w, commenting out paralog blocks. It returns when r is
// exhausted or on the first read or write error. Output written before an
// error is not retracted. w receives one Write per emitted chunk, so
// wrapping it in a bufio.Writer is left to the caller.
func Mask(r io.Reader, w io.Writer, opts ...Option) (Stats, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := app.NewFilter(stdio.NewChunkReader(r, o.chunkSize), w, o.logger)
	return f.Run()
}
