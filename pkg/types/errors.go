package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalidArgument ErrKind = iota // precondition violated by the caller
	ErrKindResource                       // requested storage cannot be provided
	ErrKindUnsupported                    // valid request this platform cannot serve
	ErrKindIO                             // reading the input failed
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidArgument:
		return "invalid argument"
	case ErrKindResource:
		return "resource exhausted"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindIO:
		return "i/o"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so an error built
// with Wrap matches its sentinel under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidArgument indicates options or inputs that violate a precondition.
	ErrInvalidArgument = &Error{Kind: ErrKindInvalidArgument, Msg: "invalid argument"}
	// ErrCapacityExceeded indicates a buffer could not be grown to the requested size.
	ErrCapacityExceeded = &Error{Kind: ErrKindResource, Msg: "capacity exceeded"}
	// ErrUnsupported indicates a feature not available on this platform.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported"}
	// ErrRead indicates the input could not be read.
	ErrRead = &Error{Kind: ErrKindIO, Msg: "read failed"}
)

// Wrap returns a new error of the sentinel's kind carrying detail as its
// message and cause as the underlying error. errors.Is(Wrap(s, ...), s) holds.
func Wrap(sentinel *Error, detail string, cause error) error {
	msg := sentinel.Msg
	if detail != "" {
		msg += ": " + detail
	}
	return &Error{Kind: sentinel.Kind, Msg: msg, Err: cause}
}

// KindOf returns the ErrKind of err, or false if err is not a typed error.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}
