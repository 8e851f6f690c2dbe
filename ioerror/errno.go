//go:build unix

package ioerror

import (
	"errors"
	"syscall"
)

var errnoKinds = map[syscall.Errno]Kind{
	syscall.EADDRINUSE:    KindAddrInUse,
	syscall.EADDRNOTAVAIL: KindAddrNotAvailable,
	syscall.EEXIST:        KindAlreadyExists,
	syscall.EPIPE:         KindBrokenPipe,
	syscall.ECONNABORTED:  KindConnectionAborted,
	syscall.ECONNREFUSED:  KindConnectionRefused,
	syscall.ECONNRESET:    KindConnectionReset,
	syscall.EINTR:         KindInterrupted,
	syscall.EINVAL:        KindInvalidInput,
	syscall.ENOTCONN:      KindNotConnected,
	syscall.ENOENT:        KindNotFound,
	syscall.ENOMEM:        KindOutOfMemory,
	syscall.EACCES:        KindPermissionDenied,
	syscall.EPERM:         KindPermissionDenied,
	syscall.ETIMEDOUT:     KindTimedOut,
	syscall.ENOSYS:        KindUnsupported,
	syscall.EAGAIN:        KindWouldBlock,
}

// FromErrno creates an Error for a raw OS error number. The kind is classified
// from the errno, the message is the errno text, and the errno is kept as the cause.
func FromErrno(errno syscall.Errno) *Error {
	return &Error{kind: classify(errno), msg: errno.Error(), cause: errno}
}

func errnoKind(err error) (Kind, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return KindOther, false
	}

	k, ok := errnoKinds[errno]

	return k, ok
}
