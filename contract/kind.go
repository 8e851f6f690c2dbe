package contract

import "strconv"

// Kind classifies the nature of a failure. It mirrors the common OS-level error classes.
//
// The zero value is KindOther, the catch-all for errors without a more specific class.
type Kind uint8

const (
	KindOther Kind = iota
	KindAddrInUse
	KindAddrNotAvailable
	KindAlreadyExists
	KindBrokenPipe
	KindConnectionAborted
	KindConnectionRefused
	KindConnectionReset
	KindInterrupted
	KindInvalidData
	KindInvalidInput
	KindNotConnected
	KindNotFound
	KindOutOfMemory
	KindPermissionDenied
	KindTimedOut
	KindUnexpectedEOF
	KindUnsupported
	KindWouldBlock
	KindWriteZero

	kindCount
)

var kindText = [kindCount]string{
	KindOther:             "other error",
	KindAddrInUse:         "address in use",
	KindAddrNotAvailable:  "address not available",
	KindAlreadyExists:     "entity already exists",
	KindBrokenPipe:        "broken pipe",
	KindConnectionAborted: "connection aborted",
	KindConnectionRefused: "connection refused",
	KindConnectionReset:   "connection reset",
	KindInterrupted:       "operation interrupted",
	KindInvalidData:       "invalid data",
	KindInvalidInput:      "invalid input parameter",
	KindNotConnected:      "not connected",
	KindNotFound:          "entity not found",
	KindOutOfMemory:       "out of memory",
	KindPermissionDenied:  "permission denied",
	KindTimedOut:          "timed out",
	KindUnexpectedEOF:     "unexpected end of file",
	KindUnsupported:       "unsupported",
	KindWouldBlock:        "operation would block",
	KindWriteZero:         "write zero",
}

// String returns the human-readable description of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindText[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < kindCount }

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := KindOther; k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}
