package gdocfmt

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/mrjoshuak/gdocfmt/internal/transform"
)

// Formatter defines the interface for HTML normalization.
// It provides methods to format HTML strings or io.Readers.
type Formatter interface {
	// Format normalizes an HTML string
	Format(html string) (string, error)

	// FormatReader normalizes HTML read from an io.Reader
	FormatReader(r io.Reader) (string, error)
}

// Option represents a function that modifies Options.
// This follows the functional options pattern for configuring the formatter.
type Option func(*Options)

// WithNestFlatLists enables or disables nesting of flat lists.
// Google Docs exports nested lists as siblings whose class ends in the
// nesting level; when enabled those lists are moved into the preceding
// list item before levels are computed.
func WithNestFlatLists(enable bool) Option {
	return func(o *Options) {
		o.NestFlatLists = enable
	}
}

// WithMonospaceCode enables or disables promotion of monospace paragraphs.
// When enabled, consecutive paragraphs set entirely in a monospace font become
// a single <pre> block.
func WithMonospaceCode(enable bool) Option {
	return func(o *Options) {
		o.MonospaceCode = enable
	}
}

// WithMaxInputSize sets the maximum number of bytes FormatReader accepts.
// Zero disables the limit.
func WithMaxInputSize(size int64) Option {
	return func(o *Options) {
		o.MaxInputSize = size
	}
}

// WithLogger sets the logger that receives per-pass debug output.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// htmlFormatter is the concrete implementation of the Formatter interface.
type htmlFormatter struct {
	options     Options
	transformer *transform.Transformer
}

// Format normalizes an HTML string and returns the resulting fragment.
func (f *htmlFormatter) Format(html string) (string, error) {
	return f.transformer.Transform(html)
}

// FormatReader reads the whole input, enforcing MaxInputSize, and formats it.
func (f *htmlFormatter) FormatReader(r io.Reader) (string, error) {
	if f.options.MaxInputSize > 0 {
		r = io.LimitReader(r, f.options.MaxInputSize+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", transform.WrapInputError(err, "FormatReader", "reading input")
	}
	if f.options.MaxInputSize > 0 && int64(len(data)) > f.options.MaxInputSize {
		return "", transform.WrapInputError(ErrInputTooLarge, "FormatReader", "")
	}

	return f.Format(string(data))
}

// New creates a new Formatter with the provided options.
//
// Example:
//
//	f := gdocfmt.New(
//	    gdocfmt.WithMonospaceCode(false),
//	    gdocfmt.WithMaxInputSize(1<<20),
//	)
func New(opts ...Option) Formatter {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &htmlFormatter{
		options:     options,
		transformer: transform.New(options),
	}
}

// ProcessHTML normalizes rawHTML with the default options.
func ProcessHTML(rawHTML string) (string, error) {
	return transform.ProcessHTML(rawHTML)
}
