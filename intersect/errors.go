// SPDX-License-Identifier: MIT
// Package intersect: sentinel error set.
// The combinatorial universe is fixed, so assembly cannot fail at
// runtime; the sentinels cover misuse of the public surface only and are
// matched via errors.Is.

package intersect

import "errors"

var (
	// ErrBadVariant indicates an AbsentPosition outside the three coupling
	// variants.
	ErrBadVariant = errors.New("intersect: unknown coupling variant")

	// ErrBadSquare indicates a matrix that is not the expected 105×105
	// Square (wrong shape or nil).
	ErrBadSquare = errors.New("intersect: not a 105×105 Square matrix")

	// ErrBadSquare101 indicates a matrix that is not the expected 101×101
	// Square101 (wrong shape or nil).
	ErrBadSquare101 = errors.New("intersect: not a 101×101 Square101 matrix")
)
