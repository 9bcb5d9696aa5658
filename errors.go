package own

import "errors"

var (
	// ErrEmpty is the panic value (wrapped) raised when the owned value of an
	// empty [Ptr] is dereferenced.
	ErrEmpty = errors.New("pointer is empty")

	// ErrCopied is the panic value raised when a [Ptr] that was copied by
	// value is used. Move ownership with [Ptr.Move] instead.
	ErrCopied = errors.New("illegal copy of owning pointer")

	// ErrGroupClosed is returned when a closer is added to a [Group] that has
	// already been closed, or when the group is closed twice.
	ErrGroupClosed = errors.New("group already closed")
)
