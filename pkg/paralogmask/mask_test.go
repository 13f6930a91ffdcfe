package paralogmask

import (
	"bytes"
	"strings"
	"testing"

	logAdapter "github.com/bft-labs/paralogmask/internal/adapters/log"
	"github.com/bft-labs/paralogmask/internal/ports"
)

type recordingLogger struct {
	logAdapter.NoopLogger
	debug []string
}

func (r *recordingLogger) Debug(msg string, fields ...ports.Field) {
	r.debug = append(r.debug, msg)
}

func TestMask_Options(t *testing.T) {
	long := strings.Repeat("N", 100)
	input := "# Paralog=1\ns chr1 0 100 + 100 " + long + "\n\n"
	want := "# # Paralog=1\n# s chr1 0 100 + 100 " + long + "\n\n"

	logger := &recordingLogger{}
	var out bytes.Buffer
	stats, err := Mask(strings.NewReader(input), &out, WithChunkSize(16), WithLogger(logger))
	if err != nil {
		t.Fatalf("Mask() error: %v", err)
	}
	if out.String() != want {
		t.Errorf("output mismatch\n got: %q\nwant: %q", out.String(), want)
	}
	if stats.Chunks <= 3 {
		t.Errorf("Chunks = %d, expected the long line to be split", stats.Chunks)
	}
	if len(logger.debug) != 2 {
		t.Errorf("debug messages = %q, want open and close", logger.debug)
	}
}

func TestMask_NilLoggerKeepsDefault(t *testing.T) {
	var out bytes.Buffer
	if _, err := Mask(strings.NewReader("a\n"), &out, WithLogger(nil)); err != nil {
		t.Fatalf("Mask() error: %v", err)
	}
	if out.String() != "a\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestDefaultOptions_UsesNoopLogger(t *testing.T) {
	o := defaultOptions()
	if _, ok := o.logger.(*logAdapter.NoopLogger); !ok {
		t.Errorf("default logger = %T, want *log.NoopLogger", o.logger)
	}

	WithLogger(nil)(&o)
	if _, ok := o.logger.(*logAdapter.NoopLogger); !ok {
		t.Errorf("WithLogger(nil) replaced the default with %T", o.logger)
	}
}
