package hexdump

import (
	"fmt"

	"github.com/joshuapare/hexkit/pkg/types"
)

const (
	DefaultIndent       = 0
	DefaultBytesPerLine = 16
)

// Options controls the layout of a dump.
type Options struct {
	// Indent is the number of spaces written at the start of every line.
	// Default: 0
	Indent int

	// BytesPerLine is how many input bytes each line shows. Must be >= 1.
	// Default: 16
	BytesPerLine int

	// ShowASCII appends a gutter with the printable form of each byte.
	// Default: true
	ShowASCII bool
}

// DefaultOptions returns the standard 16-bytes-per-line layout with gutter.
func DefaultOptions() Options {
	return Options{
		Indent:       DefaultIndent,
		BytesPerLine: DefaultBytesPerLine,
		ShowASCII:    true,
	}
}

// Validate reports whether the options describe a renderable layout.
func (o Options) Validate() error {
	if o.BytesPerLine < 1 {
		return types.Wrap(types.ErrInvalidArgument,
			fmt.Sprintf("bytes per line must be >= 1, got %d", o.BytesPerLine), nil)
	}
	if o.Indent < 0 {
		return types.Wrap(types.ErrInvalidArgument,
			fmt.Sprintf("indent must be >= 0, got %d", o.Indent), nil)
	}
	return nil
}
