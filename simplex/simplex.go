// SPDX-License-Identifier: MIT
// Package simplex: canonical enumerations and index lookups.

package simplex

// edgeTable and faceTable are built once at package init with the exact
// nested-loop orders the matrix layout is defined against. The index maps
// invert them for O(1) lookup.
var (
	edgeTable []Edge
	faceTable []Face
	edgeIndex map[Edge]int
	faceIndex map[Face]int
)

func init() {
	edgeTable = make([]Edge, 0, NumEdges)
	edgeIndex = make(map[Edge]int, NumEdges)
	// Enumeration order: outer b, inner a, keep a<b. Order is contractual.
	for b := MinLabel; b <= MaxLabel; b++ {
		for a := MinLabel; a <= MaxLabel; a++ {
			if a < b {
				edgeIndex[Edge{A: a, B: b}] = len(edgeTable)
				edgeTable = append(edgeTable, Edge{A: a, B: b})
			}
		}
	}

	faceTable = make([]Face, 0, NumFaces)
	faceIndex = make(map[Face]int, NumFaces)
	// Enumeration order: outer c, then b, then a, keep a<b<c.
	for c := MinLabel; c <= MaxLabel; c++ {
		for b := MinLabel; b <= MaxLabel; b++ {
			for a := MinLabel; a <= MaxLabel; a++ {
				if a < b && b < c {
					faceIndex[Face{A: a, B: b, C: c}] = len(faceTable)
					faceTable = append(faceTable, Face{A: a, B: b, C: c})
				}
			}
		}
	}
}

// Edges returns the 10 edges of the boundary simplex in canonical order.
// The returned slice is a fresh copy; callers may mutate it freely.
// Complexity: O(NumEdges).
func Edges() []Edge {
	out := make([]Edge, NumEdges)
	copy(out, edgeTable)

	return out
}

// Faces returns the 10 triangular faces in canonical order.
// The returned slice is a fresh copy; callers may mutate it freely.
// Complexity: O(NumFaces).
func Faces() []Face {
	out := make([]Face, NumFaces)
	copy(out, faceTable)

	return out
}

// EdgeIndex returns the 0-based position of e in the canonical edge order.
// Returns ErrUnknownEdge when e is not one of the 10 edges (wrong label
// range or A ≥ B).
// Complexity: O(1).
func EdgeIndex(e Edge) (int, error) {
	idx, ok := edgeIndex[e]
	if !ok {
		return 0, ErrUnknownEdge
	}

	return idx, nil
}

// FaceIndex returns the 0-based position of f in the canonical face order.
// Returns ErrUnknownFace when f is not one of the 10 faces.
// Complexity: O(1).
func FaceIndex(f Face) (int, error) {
	idx, ok := faceIndex[f]
	if !ok {
		return 0, ErrUnknownFace
	}

	return idx, nil
}

// Edges returns the three boundary edges of f, in the fixed order
// (B,C), (A,C), (A,B): the edge opposite A first, then opposite B, then
// opposite C.
// Complexity: O(1).
func (f Face) Edges() [3]Edge {
	return [3]Edge{
		{A: f.B, B: f.C},
		{A: f.A, B: f.C},
		{A: f.A, B: f.B},
	}
}

// Absent returns the one vertex label of f that is not an endpoint of e.
// This is the set difference f \ e for a boundary edge e of f; it selects
// the coupling-block variant during assembly.
// Returns ErrEdgeNotInFace when e is not a boundary edge of f.
// Complexity: O(1).
func (f Face) Absent(e Edge) (int, error) {
	if !f.ContainsEdge(e) {
		return 0, ErrEdgeNotInFace
	}
	if !e.Contains(f.A) {
		return f.A, nil
	}
	if !e.Contains(f.B) {
		return f.B, nil
	}

	return f.C, nil
}
