// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set.
// Public lookups MUST return these sentinels (matched via errors.Is) and
// never panic; the combinatorial universe is fixed, so the only error
// conditions are caller-supplied objects outside it.

package simplex

import "errors"

var (
	// ErrUnknownEdge indicates a pair that is not one of the 10 canonical edges.
	ErrUnknownEdge = errors.New("simplex: unknown edge")

	// ErrUnknownFace indicates a triple that is not one of the 10 canonical faces.
	ErrUnknownFace = errors.New("simplex: unknown face")

	// ErrEdgeNotInFace indicates an edge whose endpoints are not a subset
	// of the face's labels.
	ErrEdgeNotInFace = errors.New("simplex: edge is not a boundary edge of face")
)
