// Package process provides the portable model for inspecting another
// process: identifiers, memory addressing types, and the Process
// interface implemented by the per-OS backends.
package process

import "errors"

var (
	// ErrProcessNotOpen is returned when an operation requiring an open
	// process is attempted before the process has been successfully
	// opened or after it has been closed.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrAddressNotMapped is returned when a memory address is not found
	// within any mapped region of the target process.
	ErrAddressNotMapped = errors.New("address not mapped")

	// ErrReadFailed is returned when the remote read transport reports
	// failure or transfers fewer bytes than requested. The destination
	// buffer is indeterminate in that case.
	ErrReadFailed = errors.New("remote read failed")

	// ErrWriteFailed is returned on a failed or short remote write.
	ErrWriteFailed = errors.New("remote write failed")
)
