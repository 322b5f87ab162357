// SPDX-License-Identifier: MIT
// Package intersect: matrix assembly.
// Each region A–F of the block layout is built as an independent
// immutable value; BuildSquare composes them in one pass. Offsets are
// derived from positions in the canonical enumerations of package
// simplex, never from the raw label values.

package intersect

import (
	"github.com/katalvlaran/quintic/gf2"
	"github.com/katalvlaran/quintic/simplex"
)

// Region sizes and offsets of the Square layout
// [edge points ×40][face points ×60][vertices ×5].
const (
	// EdgeRegionSize is the number of edge-point classes E^l_{a,b}.
	EdgeRegionSize = simplex.NumEdges * simplex.EdgePointCount // 40
	// FaceRegionSize is the number of face-point classes E^l_{a,b,c}.
	FaceRegionSize = simplex.NumFaces * simplex.FacePointCount // 60
	// VertexRegionSize is the number of vertex classes L_i.
	VertexRegionSize = simplex.NumLabels // 5

	// SquareSize is the order of Square: 40+60+5.
	SquareSize = EdgeRegionSize + FaceRegionSize + VertexRegionSize // 105
	// ExceptionalCount is the number of exceptional classes shared by
	// Square and Square101.
	ExceptionalCount = EdgeRegionSize + FaceRegionSize // 100
	// Square101Size is the order of Square101: the exceptionals plus H.
	Square101Size = ExceptionalCount + 1 // 101

	edgeOffset   = 0
	faceOffset   = EdgeRegionSize
	vertexOffset = EdgeRegionSize + FaceRegionSize
)

// endpointSlot returns the offset, within an edge's 4-slot band, of the
// interior point nearest vertex v: point 1 for the lower endpoint,
// point 4 for the upper. v must be an endpoint of e.
func endpointSlot(e simplex.Edge, v int) int {
	if v == e.A {
		return slotNearLower
	}

	return slotNearUpper
}

// SubmatrixA builds the 40×40 edge-edge region.
//
// Algorithm Outline:
//  1. Place VertexBlock on each edge's own diagonal 4×4 slot (self term).
//  2. For each face (i,j,k), join its three boundary edges pairwise: at
//     each shared vertex, connect the interior point nearest that vertex
//     on one edge with the one nearest it on the other. That is six
//     symmetric off-diagonal 1-entries per face, landing on the +1/+4
//     slots: ((i,j)¹,(i,k)¹), ((i,j)⁴,(j,k)¹) and ((i,k)⁴,(j,k)⁴).
//
// Complexity: O(1) — fixed universe.
func SubmatrixA() (*gf2.Dense, error) {
	a, err := gf2.NewDense(EdgeRegionSize, EdgeRegionSize)
	if err != nil {
		return nil, err
	}

	// Self terms: one VertexBlock per edge.
	vb := VertexBlock()
	for idx := range simplex.Edges() {
		if err = a.Insert(vb, idx*simplex.EdgePointCount, idx*simplex.EdgePointCount); err != nil {
			return nil, err
		}
	}

	// Cross terms: for every face, couple its boundary edges at shared
	// vertices. Edge index lookup resolves to the canonical ordering, not
	// the pair values.
	for _, f := range simplex.Faces() {
		fe := f.Edges()
		for p := 0; p < len(fe); p++ {
			for q := p + 1; q < len(fe); q++ {
				shared := sharedVertex(fe[p], fe[q])

				var pi, qi int
				if pi, err = simplex.EdgeIndex(fe[p]); err != nil {
					return nil, err
				}
				if qi, err = simplex.EdgeIndex(fe[q]); err != nil {
					return nil, err
				}

				row := pi*simplex.EdgePointCount + endpointSlot(fe[p], shared)
				col := qi*simplex.EdgePointCount + endpointSlot(fe[q], shared)
				if err = a.Set(row, col, gf2.One); err != nil {
					return nil, err
				}
				if err = a.Set(col, row, gf2.One); err != nil {
					return nil, err
				}
			}
		}
	}

	return a, nil
}

// sharedVertex returns the label common to two distinct edges of one
// face. Two boundary edges of a face always share exactly one vertex.
func sharedVertex(e1, e2 simplex.Edge) int {
	if e2.Contains(e1.A) {
		return e1.A
	}

	return e1.B
}

// SubmatrixB builds the 60×40 face-edge region: a 6×4 coupling block at
// (face, edge) exactly when the edge's endpoints are a subset of the
// face's labels, with the variant chosen by the position of the absent
// label within the sorted triple. Blocks are inserted unmodified.
// Complexity: O(1) — fixed universe.
func SubmatrixB() (*gf2.Dense, error) {
	b, err := gf2.NewDense(FaceRegionSize, EdgeRegionSize)
	if err != nil {
		return nil, err
	}

	for fi, f := range simplex.Faces() {
		for ei, e := range simplex.Edges() {
			if !f.ContainsEdge(e) {
				continue
			}

			var missing int
			if missing, err = f.Absent(e); err != nil {
				return nil, err
			}

			var block *gf2.Dense
			if block, err = FaceCouplingBlock(absentPosition(f, missing)); err != nil {
				return nil, err
			}
			if err = b.Insert(block, fi*simplex.FacePointCount, ei*simplex.EdgePointCount); err != nil {
				return nil, err
			}
		}
	}

	return b, nil
}

// absentPosition maps the missing label to its rank within the face's
// sorted triple (A < B < C).
func absentPosition(f simplex.Face, missing int) AbsentPosition {
	switch missing {
	case f.A:
		return AbsentLowest
	case f.B:
		return AbsentMiddle
	default:
		return AbsentHighest
	}
}

// SubmatrixC builds the 5×40 vertex-edge region; it is exactly the
// VertexToEdgeBlock.
// Complexity: O(1).
func SubmatrixC() (*gf2.Dense, error) {
	return VertexToEdgeBlock()
}

// SubmatrixD builds the 60×60 face-face region: FaceBlock on each face's
// own diagonal 6×6 slot, zero everywhere else — distinct faces never
// couple.
// Complexity: O(1).
func SubmatrixD() (*gf2.Dense, error) {
	d, err := gf2.NewDense(FaceRegionSize, FaceRegionSize)
	if err != nil {
		return nil, err
	}

	fb := FaceBlock()
	for fi := range simplex.Faces() {
		if err = d.Insert(fb, fi*simplex.FacePointCount, fi*simplex.FacePointCount); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// SubmatrixF builds the 5×5 vertex-vertex region, the identity block.
// Complexity: O(1).
func SubmatrixF() (*gf2.Dense, error) {
	return IdentityBlock()
}

// BuildSquare assembles the full 105×105 intersection matrix from the
// regions. Region E (vertex-face) is identically zero and needs no
// construction; B and C land with their transposes via InsertSym.
// Complexity: O(1) — fixed universe.
func BuildSquare() (*gf2.Dense, error) {
	square, err := gf2.NewDense(SquareSize, SquareSize)
	if err != nil {
		return nil, err
	}

	a, err := SubmatrixA()
	if err != nil {
		return nil, err
	}
	if err = square.Insert(a, edgeOffset, edgeOffset); err != nil {
		return nil, err
	}

	b, err := SubmatrixB()
	if err != nil {
		return nil, err
	}
	if err = square.InsertSym(b, faceOffset, edgeOffset); err != nil {
		return nil, err
	}

	c, err := SubmatrixC()
	if err != nil {
		return nil, err
	}
	if err = square.InsertSym(c, vertexOffset, edgeOffset); err != nil {
		return nil, err
	}

	d, err := SubmatrixD()
	if err != nil {
		return nil, err
	}
	if err = square.Insert(d, faceOffset, faceOffset); err != nil {
		return nil, err
	}

	f, err := SubmatrixF()
	if err != nil {
		return nil, err
	}
	if err = square.Insert(f, vertexOffset, vertexOffset); err != nil {
		return nil, err
	}

	return square, nil
}

// BuildSquare101 derives the 101×101 matrix from an assembled Square:
// the leading 100×100 exceptional block copied unchanged, plus one basis
// element H with H³ = 1 at (101,101) and H²·D = 0 for every exceptional
// D (the rest of the new row/column stays zero).
// Returns ErrBadSquare when square is nil or not 105×105.
// Complexity: O(1).
func BuildSquare101(square *gf2.Dense) (*gf2.Dense, error) {
	if square == nil || square.Rows() != SquareSize || square.Cols() != SquareSize {
		return nil, ErrBadSquare
	}

	out, err := gf2.NewDense(Square101Size, Square101Size)
	if err != nil {
		return nil, err
	}

	leading, err := square.Submatrix(0, 0, ExceptionalCount, ExceptionalCount)
	if err != nil {
		return nil, err
	}
	if err = out.Insert(leading, 0, 0); err != nil {
		return nil, err
	}
	if err = out.Set(ExceptionalCount, ExceptionalCount, gf2.One); err != nil {
		return nil, err
	}

	return out, nil
}
