package types

// ============================================================================
// Buffer Limits
// ============================================================================

const (
	// InlineChars is the number of characters a formatting buffer holds
	// without touching the heap.
	InlineChars = 1024

	// MaxBufferChars is the largest capacity a formatting buffer will grow
	// to. Requests above it fail with ErrCapacityExceeded instead of
	// attempting the allocation.
	MaxBufferChars = 1 << 30
)
