package ioerror

import (
	"errors"
	"fmt"
)

// ------ core constructors

// New creates an Error of the given kind.
//
// The message is derived from v:
//   - string: used as is
//   - error: its Error() text, and v becomes the cause returned by Unwrap()
//   - fmt.Stringer: its String() text
//   - nil: the kind's description
//   - anything else: fmt.Sprint(v)
func New(kind Kind, v any) *Error {
	msg, cause := messageOf(kind, v)

	return &Error{kind: kind, msg: msg, cause: cause}
}

// Newf creates an Error of the given kind with a formatted message.
// If the format wraps a single error with %w, that error becomes the cause.
func Newf(kind Kind, format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)

	return &Error{kind: kind, msg: err.Error(), cause: errors.Unwrap(err)}
}

// FromKind creates an Error carrying only a kind. Its message is the kind's description.
func FromKind(kind Kind) *Error {
	return &Error{kind: kind, msg: kind.String()}
}

// ------ shorthand constructors, one per kind; v is interpreted as in New

func AddrInUse(v any) *Error         { return New(KindAddrInUse, v) }
func AddrNotAvailable(v any) *Error  { return New(KindAddrNotAvailable, v) }
func AlreadyExists(v any) *Error     { return New(KindAlreadyExists, v) }
func BrokenPipe(v any) *Error        { return New(KindBrokenPipe, v) }
func ConnectionAborted(v any) *Error { return New(KindConnectionAborted, v) }
func ConnectionRefused(v any) *Error { return New(KindConnectionRefused, v) }
func ConnectionReset(v any) *Error   { return New(KindConnectionReset, v) }
func Interrupted(v any) *Error       { return New(KindInterrupted, v) }
func InvalidData(v any) *Error       { return New(KindInvalidData, v) }
func InvalidInput(v any) *Error      { return New(KindInvalidInput, v) }
func NotConnected(v any) *Error      { return New(KindNotConnected, v) }
func NotFound(v any) *Error          { return New(KindNotFound, v) }
func OutOfMemory(v any) *Error       { return New(KindOutOfMemory, v) }
func PermissionDenied(v any) *Error  { return New(KindPermissionDenied, v) }
func TimedOut(v any) *Error          { return New(KindTimedOut, v) }
func UnexpectedEOF(v any) *Error     { return New(KindUnexpectedEOF, v) }
func Unsupported(v any) *Error       { return New(KindUnsupported, v) }
func WouldBlock(v any) *Error        { return New(KindWouldBlock, v) }
func WriteZero(v any) *Error         { return New(KindWriteZero, v) }
func Other(v any) *Error             { return New(KindOther, v) }
