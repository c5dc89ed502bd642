// Package types provides the shared configuration types for gdocfmt.
package types

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures the formatting pipeline.
type Options struct {
	NestFlatLists bool        // Move flat, class-levelled lists into their parent list item
	MonospaceCode bool        // Promote runs of monospace paragraphs to <pre> blocks
	MaxInputSize  int64       // Maximum bytes read by FormatReader, 0 for no limit
	Logger        *log.Logger // Receives per-pass debug output, nil discards
}

// DefaultOptions returns the default formatting options.
// Flat list nesting and monospace promotion are on, input size is limited to
// 10MB, and log output is discarded.
func DefaultOptions() Options {
	return Options{
		NestFlatLists: true,
		MonospaceCode: true,
		MaxInputSize:  10 * 1024 * 1024,
		Logger:        log.New(io.Discard),
	}
}
