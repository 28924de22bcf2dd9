// Package errors holds the error taxonomy shared by the containers, plus a
// small accumulator for reporting several failures at once.
//
// Failures are raised at the point of violation and never retried. Callers
// match them with the standard library's errors.Is:
//
//	if _, err := l.PopFront(); errors.Is(err, dsaerrors.ErrEmptyContainer) { ... }
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContainer is returned by front, back and pop operations on a
	// sequence with zero elements.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrIndexOutOfRange is returned when an index falls outside the valid
	// range of the requested operation.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Empty wraps ErrEmptyContainer with the name of the failed operation.
func Empty(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmptyContainer)
}

// OutOfRange wraps ErrIndexOutOfRange with the failed operation, the
// offending index and the container length.
func OutOfRange(op string, index, length int) error {
	return fmt.Errorf("%s: %w: index %d, length %d", op, ErrIndexOutOfRange, index, length)
}

// Collection accumulates errors. It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add appends err, ignoring nil.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear empties the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError reports whether at least one error was added.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil, the single error, or all errors joined with
// errors.Join.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
