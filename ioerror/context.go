package ioerror

import "fmt"

// Context layers msg over err. The result keeps err as its cause and
// inherits KindOf(err). Its Error() text is msg + ": " + err.Error().
//
// msg is interpreted as in New. Callers must check err != nil first: a nil
// err yields a nil *Error, which is non-nil once stored in an error
// interface. WithContext is the nil-safe composer for error returns.
func Context(err error, msg any) *Error {
	if err == nil {
		return nil
	}

	return Wrap(err, KindOf(err), msg)
}

// Contextf is Context with a formatted message. As with Context, callers
// must check err != nil first.
func Contextf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	return Wrap(err, KindOf(err), fmt.Sprintf(format, args...))
}

// Wrap is Context with an explicit kind, for callers that re-classify the failure.
// As with Context, callers must check err != nil first.
func Wrap(err error, kind Kind, msg any) *Error {
	if err == nil {
		return nil
	}

	text, _ := messageOf(kind, msg)

	return &Error{kind: kind, msg: text, cause: err, layered: true}
}

// WithContext returns a function that applies Context(err, msg). It composes
// at the point of use:
//
//	if err := load(path); err != nil {
//		return ioerror.WithContext("loading " + path)(err)
//	}
//
// A nil err maps to an untyped nil error.
func WithContext(msg any) func(error) error {
	return func(err error) error {
		if err == nil {
			return nil
		}

		return Context(err, msg)
	}
}
