// Package shim provides an inline-or-heap character buffer.
//
// A Buffer starts out backed by a fixed array embedded in the value itself,
// so short outputs never touch the heap. When a caller needs more room than
// the current storage offers, the buffer swaps in a heap slice of exactly
// the requested size. Contents are not preserved across a grow: owners are
// expected to rewrite the whole buffer afterwards.
//
// A Buffer must not be copied after first use; keep it behind a pointer or
// embed it in a struct that is itself used through a pointer.
package shim

import (
	"fmt"

	"github.com/joshuapare/hexkit/pkg/types"
)

// Char is the set of character widths a Buffer can hold: 8-bit for narrow
// text and 16-bit for wide (UTF-16) text.
type Char interface {
	~uint8 | ~uint16
}

// InlineSize is the capacity of a Buffer before it first grows.
const InlineSize = types.InlineChars

// noCopy lets `go vet` flag accidental copies via the copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is a character buffer that lives inline until it has to grow.
// The zero value is ready to use with capacity InlineSize.
type Buffer[T Char] struct {
	_ noCopy

	heap   []T // nil while the inline array is in use
	allocs int
	inline [InlineSize]T
}

// Cap returns the number of characters currently available.
func (b *Buffer[T]) Cap() int {
	if b.heap != nil {
		return len(b.heap)
	}
	return InlineSize
}

// OnHeap reports whether the buffer has moved off its inline storage.
func (b *Buffer[T]) OnHeap() bool { return b.heap != nil }

// Allocs returns how many heap allocations the buffer has performed.
func (b *Buffer[T]) Allocs() int { return b.allocs }

// EnsureCapacity makes at least n characters available.
//
// If n fits in the current storage nothing happens. Otherwise any previous
// heap slice is dropped and a new one of exactly n characters is adopted;
// prior contents are lost. The buffer never shrinks.
//
// Requests larger than types.MaxBufferChars fail with
// types.ErrCapacityExceeded and leave the buffer unchanged.
func (b *Buffer[T]) EnsureCapacity(n int) error {
	if n < 0 {
		return types.Wrap(types.ErrInvalidArgument, fmt.Sprintf("negative capacity %d", n), nil)
	}
	if n <= b.Cap() {
		return nil
	}
	if n > types.MaxBufferChars {
		return types.Wrap(types.ErrCapacityExceeded,
			fmt.Sprintf("%d chars requested, limit %d", n, types.MaxBufferChars), nil)
	}
	// drop the old allocation before making the new one
	b.heap = nil
	b.heap = make([]T, n)
	b.allocs++
	return nil
}

// Contents returns the writable backing storage, Cap() characters long.
// It is meant for the buffer's owner while it fills the buffer.
func (b *Buffer[T]) Contents() []T {
	if b.heap != nil {
		return b.heap
	}
	return b.inline[:]
}

// View returns the current storage for reading. Callers must not modify it.
// The view is invalidated by the next grow or by Release.
func (b *Buffer[T]) View() []T {
	c := b.Contents()
	return c[:len(c):len(c)]
}

// Release drops the heap storage, if any, and returns the buffer to its
// inline array. Calling it again is a no-op.
func (b *Buffer[T]) Release() {
	b.heap = nil
}
