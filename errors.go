package remember

import "errors"

var (
	// ErrClosed is returned when a file is written to, or a flush is
	// requested from, a stage that has already flushed.
	ErrClosed = errors.New("remember: stage is closed")

	// ErrFlushing is returned when a file is written while the stage is
	// replaying its cache.
	ErrFlushing = errors.New("remember: stage is flushing")
)
