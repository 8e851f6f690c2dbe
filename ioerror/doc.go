// Package ioerror provides a small categorized error type with shorthand
// constructors and context wrapping.
//
// It exposes a single concrete type Error that implements contract.Error and
// integrates with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - A closed Kind tag mirroring common OS-level failure classes
//   - One constructor per kind (NotFound, InvalidData, UnexpectedEOF, ...)
//   - Context and WithContext layer a description over an error and keep it as the cause
//   - The kind of a wrapped error is inherited from the innermost categorized error
//   - Standard-library errors (fs.ErrNotExist, syscall.Errno, ...) are classified by KindOf
//
// Wrapped messages read from the outermost context to the root cause,
// separated by ": ":
//
//	err := ioerror.InvalidInput("bad utf8")
//	err = ioerror.Context(err, "reading config")
//	err.Error() // "reading config: bad utf8"
//	err.Kind()  // KindInvalidInput
//
// Values are immutable once constructed and safe to share between goroutines.
package ioerror
