// Package contract exposes the minimal categorized error interface used by other packages.
//
// Implementations must be immutable after construction and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Never mutate kind, message or cause after construction.
//   - Return the display message from Message() without the cause text.
//   - Support errors.Unwrap via Unwrap().
type Error interface {
	error
	Kind() Kind
	Message() string
	Unwrap() error
}
