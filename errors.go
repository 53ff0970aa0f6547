package cardbox

import (
	"errors"
	"fmt"
)

// ValidationError reports out-of-range or malformed input. The operation that
// returns it has not mutated anything.
type ValidationError struct {
	Field  string // Field is the offending input, e.g. "quantity".
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// invalid is a shorthand for a *ValidationError.
func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an operation on an id that does not exist.
type NotFoundError struct {
	Kind string // "item" or "sale"
	ID   int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s #%d not found", e.Kind, e.ID) }

// StorageError reports a failure of the persistence layer. It is fatal for
// the operation but leaves the stored data consistent.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// DuplicateError is the validation failure returned when adding an item whose
// key matches an existing item. Callers merge with Inventory.IncreaseQuantity.
type DuplicateError struct {
	ID       int64 // ID of the existing item.
	Quantity int   // Quantity currently held.
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("item already in inventory as #%d (quantity %d)", e.ID, e.Quantity)
}

// IsValidation reports whether err is a *ValidationError or a *DuplicateError.
func IsValidation(err error) bool {
	var v *ValidationError
	var d *DuplicateError
	return errors.As(err, &v) || errors.As(err, &d)
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsStorage reports whether err is a *StorageError.
func IsStorage(err error) bool {
	var s *StorageError
	return errors.As(err, &s)
}
