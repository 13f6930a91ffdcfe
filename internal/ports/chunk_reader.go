package ports

import "io"

// ChunkReader yields the input as a sequence of chunks. Each chunk ends
// either with a newline or at the reader's size limit, in which case the
// next chunk continues the same physical line.
type ChunkReader interface {
	// Next returns the next non-empty chunk. The slice is only valid until
	// the following call. Next returns io.EOF once the stream is exhausted.
	Next() ([]byte, error)
}

// ErrEndOfStream indicates that no more chunks are available.
var ErrEndOfStream = io.EOF
