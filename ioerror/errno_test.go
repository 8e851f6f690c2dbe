//go:build unix

package ioerror_test

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-ioerror/ioerror"
)

func TestFromErrno(t *testing.T) {
	t.Parallel()

	cases := map[syscall.Errno]ioerror.Kind{
		syscall.ENOENT:       ioerror.KindNotFound,
		syscall.EEXIST:       ioerror.KindAlreadyExists,
		syscall.EACCES:       ioerror.KindPermissionDenied,
		syscall.ECONNREFUSED: ioerror.KindConnectionRefused,
		syscall.ETIMEDOUT:    ioerror.KindTimedOut,
		syscall.EAGAIN:       ioerror.KindWouldBlock,
		syscall.EISDIR:       ioerror.KindOther,
	}

	for errno, want := range cases {
		e := ioerror.FromErrno(errno)
		assert.Equal(t, want, e.Kind(), "errno %d", int(errno))
		assert.Equal(t, errno.Error(), e.Error())
		assert.True(t, errors.Is(e, errno))
	}
}

func TestKindOf_PathErrorErrno(t *testing.T) {
	t.Parallel()

	err := &os.PathError{Op: "dial", Path: "/run/app.sock", Err: syscall.ECONNREFUSED}
	assert.Equal(t, ioerror.KindConnectionRefused, ioerror.KindOf(err))

	e := ioerror.Context(err, "connecting to agent")
	require.Equal(t, ioerror.KindConnectionRefused, e.Kind())

	var errno syscall.Errno
	require.True(t, errors.As(e, &errno))
	assert.Equal(t, syscall.ECONNREFUSED, errno)
}
