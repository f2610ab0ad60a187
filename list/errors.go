// SPDX-License-Identifier: MIT
// Package: lvlist/list
//
// errors.go — sentinel errors for the list package.
//
// Error policy:
//   • Allocation and construction failures are returned as errors that wrap
//     the cause (alloc.ErrOutOfMemory or the constructor's own error).
//   • Precondition violations (dereferencing End(), stale iterators, erasing
//     End(), popping an empty list, self-overlapping splices, splices across
//     incompatible allocators) panic with an error wrapping
//     ErrInvalidOperation. Recover and test with errors.Is when needed.
//   • Option constructors panic on meaningless input.

package list

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation marks a violated precondition. It is always delivered
// through panic.
var ErrInvalidOperation = errors.New("list: invalid operation")

// ErrCorrupted is returned by Validate when the node ring or the element
// count is inconsistent.
var ErrCorrupted = errors.New("list: corrupted")

// listErrorf wraps err with method context; err stays reachable for errors.Is.
func listErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// invalidOp builds the panic value for a violated precondition.
func invalidOp(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidOperation)
}

// corrupted builds a Validate failure.
func corrupted(format string, args ...interface{}) error {
	return fmt.Errorf("Validate: %s: %w", fmt.Sprintf(format, args...), ErrCorrupted)
}
