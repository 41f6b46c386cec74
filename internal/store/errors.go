package store

import "errors"

// Sentinel errors returned by store implementations. Models translate these
// into the application error taxonomy.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (username/email).
	ErrDuplicate = errors.New("record already exists")

	// ErrAlreadySettled indicates a payment against a settled split.
	ErrAlreadySettled = errors.New("split already settled")

	// ErrPaymentsExist indicates deletion of an expense with recorded payments.
	ErrPaymentsExist = errors.New("expense has recorded payments")

	// ErrNotAvailable indicates a borrow attempt on an unavailable item.
	ErrNotAvailable = errors.New("item not available")
)
