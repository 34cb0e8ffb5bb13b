package collection

import "errors"

// Sentinel errors returned by container operations. Callers match them with
// errors.Is; wrapped forms carry operation context.
var (
	// ErrOutOfRange - index >= Len(), or removal from an empty container.
	ErrOutOfRange = errors.New("collection: index out of range")

	// ErrNotFound - RemoveValue with a value that is not present.
	ErrNotFound = errors.New("collection: value not found")

	// ErrEmpty - Min/Max/Pop/Top on an empty container.
	ErrEmpty = errors.New("collection: container is empty")

	// ErrInvalidArgument - misconfigured options or a malformed path.
	ErrInvalidArgument = errors.New("collection: invalid argument")
)
