package ioerror

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
)

// sentinels pairs kinds with the standard library errors that represent them.
// Order matters for classify: the first match wins.
var sentinels = []struct {
	kind Kind
	err  error
}{
	{KindNotFound, fs.ErrNotExist},
	{KindAlreadyExists, fs.ErrExist},
	{KindPermissionDenied, fs.ErrPermission},
	{KindUnexpectedEOF, io.ErrUnexpectedEOF},
	{KindWriteZero, io.ErrShortWrite},
	{KindBrokenPipe, io.ErrClosedPipe},
	{KindUnsupported, errors.ErrUnsupported},
	{KindTimedOut, os.ErrDeadlineExceeded},
}

func classify(err error) Kind {
	if k, ok := errnoKind(err); ok {
		return k
	}

	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimedOut
	case errors.Is(err, context.Canceled):
		return KindInterrupted
	}

	return KindOther
}
