// SPDX-License-Identifier: MIT
// Package simplex: domain types and fixed-size constants.
// This file holds ONLY the combinatorial entities and the sizes the rest
// of the module relies on; enumerations live in simplex.go.

package simplex

// Combinatorial sizes of the boundary of the 4-simplex on labels {1..5}.
// These are structural facts, not tunables.
const (
	// MinLabel and MaxLabel bound the vertex label set {1..5}.
	MinLabel = 1
	MaxLabel = 5

	// NumLabels is the number of vertices of the boundary simplex.
	NumLabels = 5
	// NumEdges is the number of edges (pairs a<b), C(5,2).
	NumEdges = 10
	// NumFaces is the number of triangular faces (triples a<b<c), C(5,3).
	NumFaces = 10

	// EdgePointCount is the number of interior lattice points on one edge.
	EdgePointCount = 4
	// FacePointCount is the number of interior lattice points on one face.
	FacePointCount = 6
)

// Edge is an ordered pair of vertex labels with A < B.
// The interior lattice points of an edge are labeled 1..EdgePointCount in
// ascending order from A to B, so point 4 seen from A is point 1 seen
// from B (the identification E⁴_{a,b} ≡ E¹_{b,a}).
type Edge struct {
	A, B int // vertex labels, A < B
}

// Face is an ordered triple of vertex labels with A < B < C.
type Face struct {
	A, B, C int // vertex labels, A < B < C
}

// Contains reports whether label v is an endpoint of e.
// Complexity: O(1).
func (e Edge) Contains(v int) bool {
	return v == e.A || v == e.B
}

// Contains reports whether label v is a vertex of f.
// Complexity: O(1).
func (f Face) Contains(v int) bool {
	return v == f.A || v == f.B || v == f.C
}

// ContainsEdge reports whether both endpoints of e are vertices of f,
// i.e. e is one of the three boundary edges of f.
// Complexity: O(1).
func (f Face) ContainsEdge(e Edge) bool {
	return f.Contains(e.A) && f.Contains(e.B)
}
