// SPDX-License-Identifier: MIT
// Package intersect: the block library.
// Fixed GF(2) blocks transcribing the local triple intersection patterns
// of the mirror quintic, plus the one derived block (VertexToEdgeBlock)
// that is assembled from the edge enumeration. Interior face points are
// labeled 1..6 row by row from the apex at the face's highest vertex
// downward; all face blocks share that labeling.

package intersect

import (
	"github.com/katalvlaran/quintic/gf2"
	"github.com/katalvlaran/quintic/simplex"
)

// AbsentPosition selects a face-edge coupling variant by where the face
// label missing from the edge sits within the sorted triple.
type AbsentPosition int

const (
	// AbsentLowest: the edge omits the smallest label of the face.
	AbsentLowest AbsentPosition = iota
	// AbsentMiddle: the edge omits the middle label of the face.
	AbsentMiddle
	// AbsentHighest: the edge omits the largest label of the face.
	AbsentHighest
)

// Interior-point slot offsets within one edge's 4-column (or 4-row) band.
// Point 1 sits next to the lower endpoint, point 4 next to the upper one.
const (
	slotNearLower = 0 // offset of E¹_{a,b}, nearest vertex a
	slotNearUpper = 3 // offset of E⁴_{a,b}, nearest vertex b
)

// vertexBlockRows is E^l·E^l on one edge: self-intersections on the
// diagonal and the coupling of the two middle points l=2,3.
var vertexBlockRows = [][]byte{
	{1, 0, 0, 0},
	{0, 1, 1, 0},
	{0, 1, 1, 0},
	{0, 0, 0, 1},
}

// faceBlockRows is the intersection pattern among the 6 interior points
// of a single face; identical for every face by symmetry of the simplex.
// The diagonal is zero: E³ is even for every face point.
var faceBlockRows = [][]byte{
	{0, 1, 1, 0, 0, 0},
	{1, 0, 1, 1, 1, 0},
	{1, 1, 0, 0, 1, 1},
	{0, 1, 0, 0, 1, 0},
	{0, 1, 1, 1, 0, 1},
	{0, 0, 1, 0, 1, 0},
}

// couplingRows are the three face-edge coupling variants, indexed by
// AbsentPosition. Rows are the 6 face points, columns the 4 edge points
// of the coupled boundary edge. Each variant couples the three face
// points nearest the edge to the edge's interior points; which face
// points those are depends only on which label the edge omits.
var couplingRows = [3][][]byte{
	AbsentLowest: {
		{0, 0, 1, 1},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	AbsentMiddle: {
		{0, 0, 1, 1},
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 1, 0, 0},
	},
	AbsentHighest: {
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 1},
		{0, 1, 1, 0},
		{1, 1, 0, 0},
	},
}

// mustRows wraps gf2.FromRows for the package's compile-time constant
// tables. A failure here is a programmer error in the tables above, so
// panicking in this private helper is acceptable.
func mustRows(rows [][]byte) *gf2.Dense {
	m, err := gf2.FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// VertexBlock returns the 4×4 within-edge intersection block.
// The result is a fresh copy; callers may mutate it freely.
// Complexity: O(1).
func VertexBlock() *gf2.Dense {
	return mustRows(vertexBlockRows)
}

// FaceBlock returns the 6×6 within-face intersection block.
// The result is a fresh copy; callers may mutate it freely.
// Complexity: O(1).
func FaceBlock() *gf2.Dense {
	return mustRows(faceBlockRows)
}

// FaceCouplingBlock returns the 6×4 face-edge coupling variant for the
// given absent-label position. The block is always inserted unmodified,
// never transposed or permuted.
// Returns ErrBadVariant for a value outside the three variants.
// Complexity: O(1).
func FaceCouplingBlock(pos AbsentPosition) (*gf2.Dense, error) {
	if pos < AbsentLowest || pos > AbsentHighest {
		return nil, ErrBadVariant
	}

	return mustRows(couplingRows[pos]), nil
}

// VertexToEdgeBlock builds the 5×40 vertex-edge block by iterating over
// the canonical edges: L_i²·E¹_{i,j} = 1 when i is the edge's lower
// endpoint and L_i²·E⁴_{i,j} = 1 when i is the upper endpoint (note the
// identification E⁴_{i,j} ≡ E¹_{j,i}).
// Complexity: O(NumEdges).
func VertexToEdgeBlock() (*gf2.Dense, error) {
	block, err := gf2.NewDense(simplex.NumLabels, simplex.NumEdges*simplex.EdgePointCount)
	if err != nil {
		return nil, err
	}
	for idx, e := range simplex.Edges() {
		base := idx * simplex.EdgePointCount
		if err = block.Set(e.A-simplex.MinLabel, base+slotNearLower, gf2.One); err != nil {
			return nil, err
		}
		if err = block.Set(e.B-simplex.MinLabel, base+slotNearUpper, gf2.One); err != nil {
			return nil, err
		}
	}

	return block, nil
}

// IdentityBlock returns the 5×5 vertex-vertex block: L_i³ = 1 mod 2 on
// the diagonal, L_i²·L_j = 0 off it.
// Complexity: O(1).
func IdentityBlock() (*gf2.Dense, error) {
	return gf2.Identity(simplex.NumLabels)
}
