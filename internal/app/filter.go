package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/paralogmask/internal/domain"
	"github.com/bft-labs/paralogmask/internal/ports"
)

// Filter copies chunks from a ChunkReader to a writer, commenting out
// every physical line of a paralog block.
type Filter struct {
	in     ports.ChunkReader
	out    io.Writer
	logger ports.Logger

	state   domain.FilterState
	stats   domain.Stats
	scratch []byte
}

// NewFilter creates a filter in the start-of-stream state.
func NewFilter(in ports.ChunkReader, out io.Writer, logger ports.Logger) *Filter {
	return &Filter{
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run processes the input until end of stream. It returns the first read or
// write error; output already written stands.
func (f *Filter) Run() (domain.Stats, error) {
	for {
		chunk, err := f.in.Next()
		if errors.Is(err, ports.ErrEndOfStream) {
			break
		}
		if err != nil {
			return f.stats, fmt.Errorf("read input: %w", err)
		}
		if err := f.Process(chunk); err != nil {
			return f.stats, err
		}
	}

	if f.state.MidLine {
		f.stats.Lines++
	}
	if f.state.Paralog {
		f.stats.Unclosed = true
		f.logger.Info("input ended inside a paralog block; output left as written",
			ports.Int64("line", f.stats.Lines))
	}
	return f.stats, nil
}

// Process emits a single chunk and advances the state. An empty chunk is
// ignored.
func (f *Filter) Process(chunk []byte) error {
	if len(chunk) == 0 {
		return nil
	}
	prev := f.state
	next, action := prev.Step(chunk)
	f.state = next
	f.stats.Chunks++

	if !prev.Paralog && next.Paralog {
		f.stats.Blocks++
		f.logger.Debug("paralog block opened", ports.Int64("line", f.stats.Lines+1))
	}
	if !next.MidLine {
		f.stats.Lines++
	}

	var err error
	switch action {
	case domain.ActionComment:
		f.stats.Commented++
		f.scratch = append(f.scratch[:0], domain.CommentPrefix...)
		f.scratch = append(f.scratch, chunk...)
		_, err = f.out.Write(f.scratch)
	case domain.ActionClose:
		f.logger.Debug("paralog block closed", ports.Int64("line", f.stats.Lines))
		_, err = f.out.Write(chunk)
	default:
		_, err = f.out.Write(chunk)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// State returns the current filter state.
func (f *Filter) State() domain.FilterState {
	return f.state
}
