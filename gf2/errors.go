// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All operations
// MUST return these sentinels and tests MUST check them via errors.Is.
// No operation panics on caller-triggered conditions.

package gf2

import "errors"

// Every message is prefixed with "gf2: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary when context is essential; errors.Is still matches.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates an index or window outside valid bounds.
	// Public indexers (At/Set/Insert/Submatrix) MUST return this, not panic.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrBadBit indicates a value other than 0 or 1 where a field element
	// is required.
	ErrBadBit = errors.New("gf2: value is not a field element (want 0 or 1)")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("gf2: nil matrix")
)
