package intersect_test

import (
	"testing"

	"github.com/katalvlaran/quintic/gf2"
	"github.com/katalvlaran/quintic/intersect"
	"github.com/katalvlaran/quintic/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at is a test helper for checked element access.
func at(t *testing.T, m *gf2.Dense, i, j int) byte {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// TestSubmatrixA_Structure checks shape, symmetry, the per-edge diagonal
// blocks and the exact row counts.
func TestSubmatrixA_Structure(t *testing.T) {
	a, err := intersect.SubmatrixA()
	require.NoError(t, err)
	require.Equal(t, intersect.EdgeRegionSize, a.Rows())
	require.Equal(t, intersect.EdgeRegionSize, a.Cols())

	assert.True(t, a.IsSymmetric())

	vb := intersect.VertexBlock()
	for idx := range simplex.Edges() {
		diag, err := a.Submatrix(idx*4, idx*4, 4, 4)
		require.NoError(t, err)
		assert.True(t, gf2.Equal(diag, vb), "diagonal block of edge %d", idx)
	}

	want := make([]int, 0, intersect.EdgeRegionSize)
	for range simplex.Edges() {
		want = append(want, 4, 2, 2, 4)
	}
	assert.Equal(t, want, a.RowWeights())
}

// TestSubmatrixA_FaceCouplings walks the six off-diagonal entries of one
// face by hand. Face (1,2,3) has edges (1,2)=index 0, (1,3)=index 1,
// (2,3)=index 2; the shared-vertex rule lands on
// ((1,2)¹,(1,3)¹), ((1,2)⁴,(2,3)¹), ((1,3)⁴,(2,3)⁴).
func TestSubmatrixA_FaceCouplings(t *testing.T) {
	a, err := intersect.SubmatrixA()
	require.NoError(t, err)

	assert.Equal(t, gf2.One, at(t, a, 0, 4), "(1,2) point 1 ↔ (1,3) point 1 at vertex 1")
	assert.Equal(t, gf2.One, at(t, a, 3, 8), "(1,2) point 4 ↔ (2,3) point 1 at vertex 2")
	assert.Equal(t, gf2.One, at(t, a, 7, 11), "(1,3) point 4 ↔ (2,3) point 4 at vertex 3")

	// Mirrors.
	assert.Equal(t, gf2.One, at(t, a, 4, 0))
	assert.Equal(t, gf2.One, at(t, a, 8, 3))
	assert.Equal(t, gf2.One, at(t, a, 11, 7))

	// Middle points never couple across edges.
	assert.Equal(t, gf2.Zero, at(t, a, 1, 4))
	assert.Equal(t, gf2.Zero, at(t, a, 2, 8))
}

// TestSubmatrixB_Structure checks the subset rule, the variant selection
// and the exact row/column counts.
func TestSubmatrixB_Structure(t *testing.T) {
	b, err := intersect.SubmatrixB()
	require.NoError(t, err)
	require.Equal(t, intersect.FaceRegionSize, b.Rows())
	require.Equal(t, intersect.EdgeRegionSize, b.Cols())

	for fi, f := range simplex.Faces() {
		for ei, e := range simplex.Edges() {
			sub, err := b.Submatrix(fi*6, ei*4, 6, 4)
			require.NoError(t, err)
			if f.ContainsEdge(e) {
				assert.False(t, sub.IsZero(), "face %v edge %v must couple", f, e)
			} else {
				assert.True(t, sub.IsZero(), "face %v edge %v must not couple", f, e)
			}
		}
	}

	// Face (1,3,4) is index 2; its edge (1,4) omits the middle label 3,
	// so the block at (face 2, edge (1,4)=index 3) is the middle variant.
	sub, err := b.Submatrix(2*6, 3*4, 6, 4)
	require.NoError(t, err)
	want, err := intersect.FaceCouplingBlock(intersect.AbsentMiddle)
	require.NoError(t, err)
	assert.True(t, gf2.Equal(sub, want))

	wantRows := make([]int, 0, intersect.FaceRegionSize)
	for range simplex.Faces() {
		wantRows = append(wantRows, 4, 2, 2, 4, 2, 4)
	}
	assert.Equal(t, wantRows, b.RowWeights())

	wantCols := make([]int, 0, intersect.EdgeRegionSize)
	for range simplex.Edges() {
		wantCols = append(wantCols, 3, 6, 6, 3)
	}
	assert.Equal(t, wantCols, b.ColWeights())
}

// TestSubmatrixD_Structure checks the block-diagonal face-face region.
func TestSubmatrixD_Structure(t *testing.T) {
	d, err := intersect.SubmatrixD()
	require.NoError(t, err)

	assert.True(t, d.IsSymmetric())

	fb := intersect.FaceBlock()
	for fi := range simplex.Faces() {
		diag, err := d.Submatrix(fi*6, fi*6, 6, 6)
		require.NoError(t, err)
		assert.True(t, gf2.Equal(diag, fb), "diagonal block of face %d", fi)
	}

	// All cross-face blocks are zero.
	for fi := range simplex.Faces() {
		for fj := range simplex.Faces() {
			if fi == fj {
				continue
			}
			cross, err := d.Submatrix(fi*6, fj*6, 6, 6)
			require.NoError(t, err)
			assert.True(t, cross.IsZero(), "faces %d,%d must not couple", fi, fj)
		}
	}

	wantCols := make([]int, 0, intersect.FaceRegionSize)
	for range simplex.Faces() {
		wantCols = append(wantCols, 2, 4, 4, 2, 4, 2)
	}
	assert.Equal(t, wantCols, d.ColWeights())
}

// TestBuildSquare_Composition verifies the assembled matrix region by
// region against the independent submatrix builders.
func TestBuildSquare_Composition(t *testing.T) {
	square, err := intersect.BuildSquare()
	require.NoError(t, err)
	require.Equal(t, intersect.SquareSize, square.Rows())
	require.Equal(t, intersect.SquareSize, square.Cols())

	assert.True(t, square.IsSymmetric())

	a, err := intersect.SubmatrixA()
	require.NoError(t, err)
	gotA, err := square.Submatrix(0, 0, 40, 40)
	require.NoError(t, err)
	assert.True(t, gf2.Equal(gotA, a), "region A")

	b, err := intersect.SubmatrixB()
	require.NoError(t, err)
	gotB, err := square.Submatrix(40, 0, 60, 40)
	require.NoError(t, err)
	assert.True(t, gf2.Equal(gotB, b), "region B")
	gotBt, err := square.Submatrix(0, 40, 40, 60)
	require.NoError(t, err)
	assert.True(t, gf2.Equal(gotBt, b.Transpose()), "region Bᵗ")

	c, err := intersect.SubmatrixC()
	require.NoError(t, err)
	gotC, err := square.Submatrix(100, 0, 5, 40)
	require.NoError(t, err)
	assert.True(t, gf2.Equal(gotC, c), "region C")

	d, err := intersect.SubmatrixD()
	require.NoError(t, err)
	gotD, err := square.Submatrix(40, 40, 60, 60)
	require.NoError(t, err)
	assert.True(t, gf2.Equal(gotD, d), "region D")

	gotE, err := square.Submatrix(100, 40, 5, 60)
	require.NoError(t, err)
	assert.True(t, gotE.IsZero(), "region E")

	gotF, err := square.Submatrix(100, 100, 5, 5)
	require.NoError(t, err)
	assert.True(t, gotF.IsIdentity(), "region F")
}

// TestBuildSquare101 verifies the derived 101×101 matrix: leading block
// copied exactly, H self-intersection at the corner, rest of the new
// row/column zero.
func TestBuildSquare101(t *testing.T) {
	square, err := intersect.BuildSquare()
	require.NoError(t, err)
	square101, err := intersect.BuildSquare101(square)
	require.NoError(t, err)

	require.Equal(t, intersect.Square101Size, square101.Rows())
	require.Equal(t, intersect.Square101Size, square101.Cols())
	assert.True(t, square101.IsSymmetric())

	wantLeading, err := square.Submatrix(0, 0, 100, 100)
	require.NoError(t, err)
	gotLeading, err := square101.Submatrix(0, 0, 100, 100)
	require.NoError(t, err)
	assert.True(t, gf2.Equal(gotLeading, wantLeading))

	assert.Equal(t, gf2.One, at(t, square101, 100, 100), "H³ = 1")
	for i := 0; i < 100; i++ {
		assert.Equal(t, gf2.Zero, at(t, square101, 100, i), "H²·D row")
		assert.Equal(t, gf2.Zero, at(t, square101, i, 100), "H²·D col")
	}
}

// TestBuildSquare101_BadInput checks the shape sentinel.
func TestBuildSquare101_BadInput(t *testing.T) {
	_, err := intersect.BuildSquare101(nil)
	assert.ErrorIs(t, err, intersect.ErrBadSquare)

	small, err := gf2.NewDense(10, 10)
	require.NoError(t, err)
	_, err = intersect.BuildSquare101(small)
	assert.ErrorIs(t, err, intersect.ErrBadSquare)
}

// TestRanks pins the published rank values: both matrices have GF(2)
// rank 73, in particular the hyperplane class adds no new mod-2 rank.
func TestRanks(t *testing.T) {
	square, err := intersect.BuildSquare()
	require.NoError(t, err)
	square101, err := intersect.BuildSquare101(square)
	require.NoError(t, err)

	assert.Equal(t, 73, square.Rank())
	assert.Equal(t, 73, square101.Rank())
}
