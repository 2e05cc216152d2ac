package formatkit

import (
	"errors"
	"fmt"
	"io/fs"
)

// DetectError records an I/O failure at the detection boundary together
// with the operation and, when known, the file path that caused it.
// "No recognizable format" is never an error: it is the Unknown result,
// and zero-length input is the Empty result.
type DetectError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DetectError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("formatkit: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("formatkit: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *DetectError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that the file to detect
// does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsPermission reports whether an error indicates that permission was
// denied while opening the file to detect.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
