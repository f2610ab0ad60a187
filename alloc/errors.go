// SPDX-License-Identifier: MIT
// Package: lvlist/alloc
//
// errors.go — sentinel errors for the alloc package.
//
// Error policy:
//   • Only sentinel variables are exported; branch with errors.Is.
//   • Context is attached at the call site with allocErrorf (%w wrapping).

package alloc

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory indicates the capability refused to reserve storage.
var ErrOutOfMemory = errors.New("alloc: out of memory")

// ErrInvalidLayout indicates a malformed Layout or record count.
var ErrInvalidLayout = errors.New("alloc: invalid layout")

// allocErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable for errors.Is.
func allocErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
