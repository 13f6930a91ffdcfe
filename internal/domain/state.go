package domain

import "bytes"

const (
	// ParalogFlag marks the start of a block that must be commented out.
	// Only the value 1 is recognised.
	ParalogFlag = "# Paralog=1"

	// CommentPrefix is written in front of every physical line of a paralog block.
	CommentPrefix = "# "
)

var (
	paralogFlag = []byte(ParalogFlag)
	blankLine   = []byte("\n")
)

// Action describes how a chunk is emitted.
type Action int

const (
	// ActionPass emits the chunk verbatim outside a paralog region.
	ActionPass Action = iota
	// ActionComment emits CommentPrefix followed by the chunk.
	ActionComment
	// ActionContinue emits a continuation fragment of a line that was
	// already prefixed.
	ActionContinue
	// ActionClose emits the blank line that ends a paralog region, verbatim.
	ActionClose
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionPass:
		return "Pass"
	case ActionComment:
		return "Comment"
	case ActionContinue:
		return "Continue"
	case ActionClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// FilterState is carried from one chunk to the next.
// The zero value is the state at the start of a stream: outside any paralog
// region and at the beginning of a physical line, so a flag on line 1 is
// prefixed like any other.
type FilterState struct {
	// Paralog is true while chunks are being commented out.
	Paralog bool

	// MidLine is true when the previous chunk did not end with a newline,
	// so the next chunk continues a line that was already partially emitted.
	MidLine bool
}

// Step classifies chunk and returns the state for the next chunk.
// chunk must be non-empty.
func (s FilterState) Step(chunk []byte) (FilterState, Action) {
	next := FilterState{
		Paralog: s.Paralog,
		MidLine: chunk[len(chunk)-1] != '\n',
	}

	if bytes.HasPrefix(chunk, paralogFlag) {
		next.Paralog = true
	}

	if !next.Paralog {
		return next, ActionPass
	}
	if !s.MidLine && bytes.Equal(chunk, blankLine) {
		next.Paralog = false
		return next, ActionClose
	}
	if s.MidLine {
		return next, ActionContinue
	}
	return next, ActionComment
}

// Stats counts what happened during a run. Collecting them never changes
// the emitted output.
type Stats struct {
	// Chunks is the number of reads that returned data.
	Chunks int64
	// Lines is the number of physical lines, including a final unterminated one.
	Lines int64
	// Blocks is the number of paralog regions entered.
	Blocks int64
	// Commented is the number of chunks written with CommentPrefix.
	Commented int64
	// Unclosed reports that the input ended inside a paralog region.
	Unclosed bool
}
