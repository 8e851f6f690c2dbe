package ioerror

import (
	"fmt"
	"io"
	"strings"

	"github.com/next-trace/scg-ioerror/contract"
)

// Kind is re-exported so callers only need to import this package.
type Kind = contract.Kind

const (
	KindOther             = contract.KindOther
	KindAddrInUse         = contract.KindAddrInUse
	KindAddrNotAvailable  = contract.KindAddrNotAvailable
	KindAlreadyExists     = contract.KindAlreadyExists
	KindBrokenPipe        = contract.KindBrokenPipe
	KindConnectionAborted = contract.KindConnectionAborted
	KindConnectionRefused = contract.KindConnectionRefused
	KindConnectionReset   = contract.KindConnectionReset
	KindInterrupted       = contract.KindInterrupted
	KindInvalidData       = contract.KindInvalidData
	KindInvalidInput      = contract.KindInvalidInput
	KindNotConnected      = contract.KindNotConnected
	KindNotFound          = contract.KindNotFound
	KindOutOfMemory       = contract.KindOutOfMemory
	KindPermissionDenied  = contract.KindPermissionDenied
	KindTimedOut          = contract.KindTimedOut
	KindUnexpectedEOF     = contract.KindUnexpectedEOF
	KindUnsupported       = contract.KindUnsupported
	KindWouldBlock        = contract.KindWouldBlock
	KindWriteZero         = contract.KindWriteZero
)

// Error is a categorized error.
//
// Fields:
//   - kind:    category tag, see Kind
//   - msg:     display message; for a context layer this is the context only
//   - cause:   optional underlying error exposed via Unwrap
//   - layered: msg is a context over cause, so Error() appends the cause text
type Error struct {
	kind    Kind
	msg     string
	cause   error
	layered bool
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.layered && e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Cause returns the underlying error. It lets github.com/pkg/errors.Cause walk the chain.
func (e *Error) Cause() error { return e.Unwrap() }

// ------ contract.Error getters

func (e *Error) Kind() Kind {
	if e == nil {
		return KindOther
	}

	return e.kind
}

// Message returns the message of this layer only, without the cause text.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}

	return e.msg
}

// Timeout reports whether the error is of KindTimedOut, matching the net.Error convention.
func (e *Error) Timeout() bool { return e.Kind() == KindTimedOut }

// Is reports whether target is the standard library sentinel for e's kind,
// so errors.Is(NotFound("x"), fs.ErrNotExist) holds.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}

	for _, s := range sentinels {
		if s.kind == e.kind && s.err == target {
			return true
		}
	}

	return false
}

// Format implements fmt.Formatter.
//
// %+v prints the cause chain with kinds, one link per line. Every other verb
// formats Error() as a string, honouring width, precision and flags.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = io.WriteString(s, e.detailed())
		return
	}

	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), e.Error())
}

func (e *Error) detailed() string {
	if e == nil {
		return "<nil>"
	}

	var links []string

	for link := range Chain(e) {
		if ie, ok := link.(*Error); ok {
			links = append(links, fmt.Sprintf("%s (%s)", ie.msg, ie.kind))
			continue
		}

		links = append(links, link.Error())
	}

	return strings.Join(links, "\n\tcaused by: ")
}

// messageOf converts a constructor payload into a display message. An error
// payload is also returned as the cause.
func messageOf(kind Kind, v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return kind.String(), nil
	case string:
		return x, nil
	case error:
		return x.Error(), x
	case fmt.Stringer:
		return x.String(), nil
	default:
		return fmt.Sprint(x), nil
	}
}
