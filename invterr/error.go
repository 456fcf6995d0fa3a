package invterr

import "fmt"

// NotFound - Custom error to inform that no entry with the requested name exists
type NotFound struct {
	msg string
}

// NewNotFound - Returns a NotFound error naming the item that was looked for
func NewNotFound(name string) NotFound {
	return NotFound{msg: fmt.Sprintf("item %q not found", name)}
}

// Error - Used to notify that no entry was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "not found"
	}
	return E.msg
}

// Is - Matches any NotFound regardless of message
func (E NotFound) Is(target error) bool {
	_, ok := target.(NotFound)
	return ok
}

// TableFull - Custom error to inform that the index has no free slot left for a new name
type TableFull struct {
	msg string
}

// NewTableFull - Returns a TableFull error naming the item that could not be registered
func NewTableFull(name string, capacity int64) TableFull {
	return TableFull{msg: fmt.Sprintf("index full, no slot for %q in table of capacity %d", name, capacity)}
}

// Error - Used to notify that the index is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// Is - Matches any TableFull regardless of message
func (E TableFull) Is(target error) bool {
	_, ok := target.(TableFull)
	return ok
}

// InsufficientQuantity - Custom error to inform that a removal asked for more than is held
type InsufficientQuantity struct {
	msg string
}

// NewInsufficientQuantity - Returns an InsufficientQuantity error with requested and held quantities
func NewInsufficientQuantity(name string, requested, held int) InsufficientQuantity {
	return InsufficientQuantity{msg: fmt.Sprintf("cannot remove %d of %q, only %d held", requested, name, held)}
}

// Error - Used to notify that the held quantity is too small
func (E InsufficientQuantity) Error() string {
	if E.msg == "" {
		return "insufficient quantity"
	}
	return E.msg
}

// Is - Matches any InsufficientQuantity regardless of message
func (E InsufficientQuantity) Is(target error) bool {
	_, ok := target.(InsufficientQuantity)
	return ok
}

// InvalidArgument - Custom error to inform that an argument was rejected before any mutation
type InvalidArgument struct {
	msg string
}

// NewInvalidArgument - Returns an InvalidArgument error with a formatted message
func NewInvalidArgument(format string, args ...any) InvalidArgument {
	return InvalidArgument{msg: fmt.Sprintf(format, args...)}
}

// Error - Used to notify that an argument is invalid
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Matches any InvalidArgument regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}
