package ioerror

import (
	"errors"
	"iter"
)

// Chain yields err followed by every error reachable through successive Unwrap() calls.
// Errors wrapping multiple errors (Unwrap() []error) end the chain.
func Chain(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		for e := err; e != nil; e = errors.Unwrap(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// Root returns the last error of the chain, or nil for a nil err.
func Root(err error) error {
	var root error
	for e := range Chain(err) {
		root = e
	}

	return root
}

// KindOf returns the kind of the first categorized error in the chain. Chains
// without one are classified from well-known standard library errors, and
// default to KindOther.
func KindOf(err error) Kind {
	if err == nil {
		return KindOther
	}

	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.kind
	}

	return classify(err)
}

// HasKind reports whether err is non-nil and KindOf(err) == kind.
func HasKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
