// Package types holds the error taxonomy and shared limits used across hexkit.
//
// Errors carry a stable ErrKind so callers can branch on intent rather than
// text:
//
//	d, err := hexdump.NewNarrow(data, opts)
//	if errors.Is(err, types.ErrInvalidArgument) {
//	    // bad options or data/length mismatch
//	}
//
// This package has no dependencies beyond the standard library.
package types
