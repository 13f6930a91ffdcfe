package stdio

import (
	"bufio"
	"errors"
	"io"
)

// DefaultChunkSize is the largest chunk returned by a ChunkReader unless
// configured otherwise.
const DefaultChunkSize = 32768

// MinChunkSize is the smallest buffer bufio will honour.
const MinChunkSize = 16

// ChunkReader implements ports.ChunkReader over a bufio.Reader.
// A line longer than the chunk size is returned as several chunks; all but
// the last are exactly size bytes long and do not end in a newline.
type ChunkReader struct {
	br *bufio.Reader
}

// NewChunkReader returns a reader yielding chunks of at most size bytes.
// Sizes below MinChunkSize are raised to MinChunkSize.
func NewChunkReader(r io.Reader, size int) *ChunkReader {
	if size < MinChunkSize {
		size = MinChunkSize
	}
	return &ChunkReader{br: bufio.NewReaderSize(r, size)}
}

// Next returns the next chunk or io.EOF when the input is exhausted.
func (c *ChunkReader) Next() ([]byte, error) {
	chunk, err := c.br.ReadSlice('\n')
	switch {
	case err == nil, errors.Is(err, bufio.ErrBufferFull):
		return chunk, nil
	case errors.Is(err, io.EOF):
		if len(chunk) > 0 {
			// Unterminated final fragment; EOF is reported on the next call.
			return chunk, nil
		}
		return nil, io.EOF
	default:
		return nil, err
	}
}
