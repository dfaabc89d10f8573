package hexdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/hexkit/internal/buf"
	"github.com/joshuapare/hexkit/internal/shim"
	"github.com/joshuapare/hexkit/pkg/types"
)

// Char is the output character type: byte for narrow dumps, uint16 for wide.
type Char = shim.Char

// gap is the width of the blank column between the hex area and the gutter.
// It is reserved and always zero.
const gap = 0

const hexDigits = "0123456789ABCDEF"

// Dumper holds a rendered dump in its own buffer.
type Dumper[T Char] struct {
	buf shim.Buffer[T]

	opts      Options
	size      int // number of source bytes rendered
	lineSize  int // characters per line, newline included
	lineCount int
	visible   int // characters before the terminator
	released  bool
}

// Narrow is a dump stored as 8-bit characters.
type Narrow = Dumper[byte]

// Wide is a dump stored as 16-bit characters.
type Wide = Dumper[uint16]

// New renders all of data using opts.
func New[T Char](data []byte, opts Options) (*Dumper[T], error) {
	return NewN[T](data, len(data), opts)
}

// NewN renders the first n bytes of data using opts.
//
// It fails with types.ErrInvalidArgument when opts are invalid, when n is
// negative, or when data holds fewer than n bytes (including a nil data with
// n > 0). It fails with types.ErrCapacityExceeded when the output would not
// fit in a buffer. On failure no Dumper is returned.
func NewN[T Char](data []byte, n int, opts Options) (*Dumper[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch {
	case n < 0:
		return nil, types.Wrap(types.ErrInvalidArgument, fmt.Sprintf("negative length %d", n), nil)
	case data == nil && n > 0:
		return nil, types.Wrap(types.ErrInvalidArgument, fmt.Sprintf("nil data with length %d", n), nil)
	case n > len(data):
		return nil, types.Wrap(types.ErrInvalidArgument,
			fmt.Sprintf("length %d exceeds data size %d", n, len(data)), nil)
	}

	lineSize, err := lineSizeFor(opts)
	if err != nil {
		return nil, err
	}
	lineCount := buf.CeilDiv(n, opts.BytesPerLine)
	total, ok := buf.MulOverflowSafe(lineSize, lineCount)
	if ok {
		total, ok = buf.AddOverflowSafe(total, 1)
	}
	if !ok {
		return nil, types.Wrap(types.ErrCapacityExceeded,
			fmt.Sprintf("%d lines of %d chars", lineCount, lineSize), nil)
	}

	d := &Dumper[T]{
		opts:      opts,
		size:      n,
		lineSize:  lineSize,
		lineCount: lineCount,
	}
	if err := d.buf.EnsureCapacity(total); err != nil {
		return nil, err
	}
	d.render(data[:n])
	return d, nil
}

// NewNarrow renders data as 8-bit characters.
func NewNarrow(data []byte, opts Options) (*Narrow, error) {
	return New[byte](data, opts)
}

// NewWide renders data as 16-bit characters.
func NewWide(data []byte, opts Options) (*Wide, error) {
	return New[uint16](data, opts)
}

// Dump renders data and returns the result as a string.
func Dump(data []byte, opts Options) (string, error) {
	d, err := NewNarrow(data, opts)
	if err != nil {
		return "", err
	}
	defer d.Release()
	return d.String(), nil
}

// lineSizeFor returns the characters per line, trailing newline included.
func lineSizeFor(opts Options) (int, error) {
	bpl, indent := opts.BytesPerLine, opts.Indent
	perByte := 3 // "XX "
	if opts.ShowASCII {
		perByte = 4 // "XX " plus one gutter column
	}
	size, ok := buf.MulOverflowSafe(bpl, perByte)
	if ok {
		size, ok = buf.AddOverflowSafe(size, indent)
	}
	if !ok {
		return 0, types.Wrap(types.ErrCapacityExceeded,
			fmt.Sprintf("line of %d bytes with indent %d", bpl, indent), nil)
	}
	if opts.ShowASCII {
		// hex area, gap, gutter, newline
		return size + gap + 1, nil
	}
	// the last hex pair has no separator; its slot holds the newline
	return size, nil
}

func (d *Dumper[T]) render(data []byte) {
	out := d.buf.Contents()
	bpl, indent := d.opts.BytesPerLine, d.opts.Indent
	asciiPos := indent + bpl*3 + gap

	line := 0
	for p := 0; p < len(data); p += bpl {
		row := out[line : line+d.lineSize]
		for i := range row {
			row[i] = ' '
		}
		chunk := data[p:min(p+bpl, len(data))]
		for j, v := range chunk {
			row[indent+j*3] = T(hexDigits[v>>4])
			row[indent+j*3+1] = T(hexDigits[v&0x0f])
			if d.opts.ShowASCII {
				row[asciiPos+j] = gutter[T](v)
			}
		}
		row[d.lineSize-1] = '\n'
		line += d.lineSize
	}

	out[line] = 0
	d.visible = line
	if line > 0 {
		// the last line ends at the terminator, not a newline
		out[line-1] = 0
		d.visible = line - 1
	}
}

// gutter maps a byte to its gutter character. Values in [0x20, 0x80) are
// shown as themselves, 0x7F included.
func gutter[T Char](v byte) T {
	if v >= 0x20 && v < 0x80 {
		return T(v)
	}
	return '.'
}

// View returns the dump without its terminator. The slice is read-only and
// valid until Release.
func (d *Dumper[T]) View() []T {
	if d.released {
		return nil
	}
	return d.buf.View()[:d.visible:d.visible]
}

// Terminated returns the dump followed by its zero terminator.
func (d *Dumper[T]) Terminated() []T {
	if d.released {
		return nil
	}
	return d.buf.View()[: d.visible+1 : d.visible+1]
}

// String returns a copy of the dump as a Go string.
func (d *Dumper[T]) String() string {
	v := d.View()
	var b strings.Builder
	b.Grow(len(v))
	for _, c := range v {
		// every character a dump can contain is ASCII
		b.WriteByte(byte(c))
	}
	return b.String()
}

// Len returns the number of characters before the terminator.
func (d *Dumper[T]) Len() int { return len(d.View()) }

// Lines returns how many lines the dump has.
func (d *Dumper[T]) Lines() int { return d.lineCount }

// LineSize returns the characters per line including its newline.
func (d *Dumper[T]) LineSize() int { return d.lineSize }

// Size returns the number of source bytes rendered.
func (d *Dumper[T]) Size() int { return d.size }

// Options returns the layout the dump was rendered with.
func (d *Dumper[T]) Options() Options { return d.opts }

// Cap returns the capacity of the underlying buffer.
func (d *Dumper[T]) Cap() int { return d.buf.Cap() }

// OnHeap reports whether the dump outgrew the inline buffer.
func (d *Dumper[T]) OnHeap() bool { return d.buf.OnHeap() }

// Wide reports whether the dump stores 16-bit characters.
func (d *Dumper[T]) Wide() bool {
	return uint64(^T(0)) > 0xff
}

// WriteTo writes the dump to w. Narrow dumps are written as-is; wide dumps
// are written as UTF-16LE without a BOM.
func (d *Dumper[T]) WriteTo(w io.Writer) (int64, error) {
	var out []byte
	if d.Wide() {
		enc, err := d.UTF16LE(false)
		if err != nil {
			return 0, err
		}
		out = enc
	} else {
		out = []byte(d.String())
	}
	n, err := w.Write(out)
	return int64(n), err
}

// UTF16LE returns the dump encoded as UTF-16LE, with a leading BOM if bom is set.
func (d *Dumper[T]) UTF16LE(bom bool) ([]byte, error) {
	return EncodeUTF16(d.String(), bom)
}

// Release frees the heap storage behind the dump, if any. Views obtained
// earlier must not be used afterwards; accessors return empty results.
func (d *Dumper[T]) Release() {
	d.buf.Release()
	d.released = true
	d.visible = 0
}
