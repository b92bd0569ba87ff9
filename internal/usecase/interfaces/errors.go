package interfaces

import "errors"

// Errors shared by every persistence adapter.
var (
	// ErrStaleStatus means a conditional write found the booking in a different state than
	// the one it was read in. Nothing was written.
	ErrStaleStatus = errors.New("booking status changed concurrently")
	// ErrAlreadyExists means a create-if-absent write found an existing row.
	ErrAlreadyExists = errors.New("record already exists")
)
