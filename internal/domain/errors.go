package domain

import "errors"

// Domain errors can be checked with errors.Is.
var (
	// ErrUsage is returned for invalid command-line usage. The CLI exits with
	// status 2 when it sees this error.
	ErrUsage = errors.New("paralogmask: usage")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("paralogmask: invalid configuration")
)
