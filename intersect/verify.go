// SPDX-License-Identifier: MIT
// Package intersect: structural verification and rank comparison.
// The checks recompute, per region, invariants that are algebraic
// consequences of the intersection theory (symmetry plus exact non-zero
// counts per row/column). They are diagnostic, never fatal: Verify runs
// every check, reports all results, and always computes both ranks.

package intersect

import (
	"github.com/katalvlaran/quintic/gf2"
)

// Expected non-zero counts, repeating per 4-slot edge band or 6-slot face
// band of the respective region.
var (
	aRowPattern = []int{4, 2, 2, 4}       // region A rows, per edge band
	bRowPattern = []int{4, 2, 2, 4, 2, 4} // region B rows, per face band
	bColPattern = []int{3, 6, 6, 3}       // region B columns, per edge band
	cColPattern = []int{1, 0, 0, 1}       // region C columns, per edge band
	dColPattern = []int{2, 4, 4, 2, 4, 2} // region D columns, per face band
)

// cRowWeight is the expected non-zero count of every region C row: each
// vertex lies on exactly 4 edges.
const cRowWeight = 4

// Report carries the outcome of every structural check and the rank
// comparison. All fields are plain values for an external report sink to
// render; no check influences control flow.
type Report struct {
	// Global symmetry of the two assembled matrices.
	SquareSymmetric    bool
	Square101Symmetric bool

	// Per-region count invariants.
	ARowCounts  bool // A rows: [4,2,2,4] per edge band
	BRowCounts  bool // B rows: [4,2,2,4,2,4] per face band
	BColCounts  bool // B cols: [3,6,6,3] per edge band
	CRowCounts  bool // C rows: exactly 4 each
	CColCounts  bool // C cols: [1,0,0,1] per edge band
	DColCounts  bool // D cols: [2,4,4,2,4,2] per face band
	EZero       bool // E region identically zero
	FIdentity   bool // F region equals I₅
	LeadingCopy bool // Square101 leading 100×100 equals Square's

	// Rank engine output.
	RankSquare    int
	RankSquare101 int
	RanksEqual    bool
}

// AllPassed reports whether every boolean check succeeded.
func (r Report) AllPassed() bool {
	return r.SquareSymmetric && r.Square101Symmetric &&
		r.ARowCounts && r.BRowCounts && r.BColCounts &&
		r.CRowCounts && r.CColCounts && r.DColCounts &&
		r.EZero && r.FIdentity && r.LeadingCopy && r.RanksEqual
}

// Verify runs every structural check on an assembled Square/Square101
// pair and computes both GF(2) ranks.
//
// Policy (diagnostic-first): a failed check is recorded as false and the
// remaining checks still run; ranks are computed regardless of prior
// outcomes. The only errors are shape errors on the inputs themselves.
//
// Complexity: O(n²) scans plus O(n³) for the two rank computations.
func Verify(square, square101 *gf2.Dense) (Report, error) {
	var rep Report

	if square == nil || square.Rows() != SquareSize || square.Cols() != SquareSize {
		return rep, ErrBadSquare
	}
	if square101 == nil || square101.Rows() != Square101Size || square101.Cols() != Square101Size {
		return rep, ErrBadSquare101
	}

	rep.SquareSymmetric = square.IsSymmetric()
	rep.Square101Symmetric = square101.IsSymmetric()

	// Region windows. The offsets are the fixed layout constants; the
	// extraction itself cannot fail after the shape checks above.
	regionA, err := square.Submatrix(edgeOffset, edgeOffset, EdgeRegionSize, EdgeRegionSize)
	if err != nil {
		return rep, err
	}
	regionB, err := square.Submatrix(faceOffset, edgeOffset, FaceRegionSize, EdgeRegionSize)
	if err != nil {
		return rep, err
	}
	regionC, err := square.Submatrix(vertexOffset, edgeOffset, VertexRegionSize, EdgeRegionSize)
	if err != nil {
		return rep, err
	}
	regionD, err := square.Submatrix(faceOffset, faceOffset, FaceRegionSize, FaceRegionSize)
	if err != nil {
		return rep, err
	}
	regionE, err := square.Submatrix(vertexOffset, faceOffset, VertexRegionSize, FaceRegionSize)
	if err != nil {
		return rep, err
	}
	regionF, err := square.Submatrix(vertexOffset, vertexOffset, VertexRegionSize, VertexRegionSize)
	if err != nil {
		return rep, err
	}

	rep.ARowCounts = weightsMatch(regionA.RowWeights(), aRowPattern)
	rep.BRowCounts = weightsMatch(regionB.RowWeights(), bRowPattern)
	rep.BColCounts = weightsMatch(regionB.ColWeights(), bColPattern)
	rep.CRowCounts = weightsUniform(regionC.RowWeights(), cRowWeight)
	rep.CColCounts = weightsMatch(regionC.ColWeights(), cColPattern)
	rep.DColCounts = weightsMatch(regionD.ColWeights(), dColPattern)
	rep.EZero = regionE.IsZero()
	rep.FIdentity = regionF.IsIdentity()

	leadingSquare, err := square.Submatrix(0, 0, ExceptionalCount, ExceptionalCount)
	if err != nil {
		return rep, err
	}
	leading101, err := square101.Submatrix(0, 0, ExceptionalCount, ExceptionalCount)
	if err != nil {
		return rep, err
	}
	rep.LeadingCopy = gf2.Equal(leadingSquare, leading101)

	// Rank engine: always runs, independent of the checks above.
	rep.RankSquare = square.Rank()
	rep.RankSquare101 = square101.Rank()
	rep.RanksEqual = rep.RankSquare == rep.RankSquare101

	return rep, nil
}

// weightsMatch reports whether weights equals pattern repeated across its
// whole length. len(weights) must be a multiple of len(pattern); a
// leftover means the region shape is wrong and the check fails.
func weightsMatch(weights, pattern []int) bool {
	if len(weights)%len(pattern) != 0 {
		return false
	}
	for i, w := range weights {
		if w != pattern[i%len(pattern)] {
			return false
		}
	}

	return true
}

// weightsUniform reports whether every weight equals want.
func weightsUniform(weights []int, want int) bool {
	for _, w := range weights {
		if w != want {
			return false
		}
	}

	return true
}
