// Package hexdump renders byte slices as fixed-layout hexadecimal dumps.
//
// Each output line holds up to BytesPerLine bytes as uppercase hex pairs,
// optionally followed by an ASCII gutter:
//
//	41 42 43 0A                                     ABC.
//
// A Dumper computes the exact output size up front, reserves it in an
// inline-or-heap character buffer, and fills it in a single pass. Dumps of
// up to roughly a thousand characters never allocate beyond the Dumper
// itself.
//
// Two character widths are supported through one generic implementation:
//
//   - Narrow (Dumper[byte]) for byte-oriented text.
//   - Wide (Dumper[uint16]) for UTF-16 consumers; UTF16LE and WriteTo
//     produce little-endian bytes with an optional BOM.
//
// Both widths produce the same layout for the same input.
//
// Example:
//
//	d, err := hexdump.NewNarrow(data, hexdump.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer d.Release()
//	fmt.Println(d.String())
//
// A Dumper is immutable once constructed but is not safe for concurrent
// Release; use one instance per goroutine.
package hexdump
