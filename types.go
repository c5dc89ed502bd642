package gdocfmt

import (
	"github.com/mrjoshuak/gdocfmt/internal/transform"
	"github.com/mrjoshuak/gdocfmt/types"
)

// Options configures the formatting pipeline.
type Options = types.Options

// DefaultOptions returns the default formatting options.
// Flat list nesting and monospace promotion are enabled, input is limited to
// 10MB, and log output is discarded.
func DefaultOptions() Options {
	return types.DefaultOptions()
}

// ErrInputTooLarge is returned by FormatReader when the input exceeds
// MaxInputSize.
var ErrInputTooLarge = transform.ErrInputTooLarge

// IsParseError reports whether err came from parsing the input.
func IsParseError(err error) bool {
	return transform.IsParseError(err)
}

// IsInputError reports whether err came from reading or limiting the input.
func IsInputError(err error) bool {
	return transform.IsInputError(err)
}

// BuildInfo contains version and build information for the gdocfmt library.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information for the gdocfmt library.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the gdocfmt library.
var Version = types.Version

// Name is the name of the gdocfmt library.
var Name = types.Name
