package stdio

import (
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Input is an opened input stream.
type Input struct {
	io.Reader

	// Mapped is true when the stream is served from a memory mapping.
	Mapped bool

	closer func() error
}

// Close releases the memory mapping, if any. The underlying file is not closed.
func (in *Input) Close() error {
	if in.closer == nil {
		return nil
	}
	err := in.closer()
	in.closer = nil
	return err
}

// OpenInput wraps r for reading. When useMMap is set and r is a non-empty
// regular file, the file is mapped read-only and served from its current
// offset. Anything else, including a failed mapping, is read as a stream.
func OpenInput(r io.Reader, useMMap bool) *Input {
	if useMMap {
		if f, ok := r.(*os.File); ok {
			if in, ok := mapFile(f); ok {
				return in
			}
		}
	}
	return &Input{Reader: r}
}

func mapFile(f *os.File) (*Input, bool) {
	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() || fi.Size() == 0 {
		return nil, false
	}
	off, err := f.Seek(0, io.SeekCurrent)
	if err != nil || off >= fi.Size() {
		return nil, false
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, false
	}
	return &Input{
		Reader: bytes.NewReader(mm[off:]),
		Mapped: true,
		closer: mm.Unmap,
	}, true
}
