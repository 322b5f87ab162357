package intersect_test

import (
	"testing"

	"github.com/katalvlaran/quintic/gf2"
	"github.com/katalvlaran/quintic/intersect"
	"github.com/katalvlaran/quintic/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVertexBlock pins the 4×4 within-edge pattern: self-intersections on
// the diagonal plus the coupling of the two middle points.
func TestVertexBlock(t *testing.T) {
	want, err := gf2.FromRows([][]byte{
		{1, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 1},
	})
	require.NoError(t, err)

	vb := intersect.VertexBlock()
	assert.True(t, gf2.Equal(vb, want))
	assert.True(t, vb.IsSymmetric())
}

// TestFaceBlock checks shape, symmetry, zero diagonal and the exact
// column counts of the within-face pattern.
func TestFaceBlock(t *testing.T) {
	fb := intersect.FaceBlock()
	require.Equal(t, simplex.FacePointCount, fb.Rows())
	require.Equal(t, simplex.FacePointCount, fb.Cols())

	assert.True(t, fb.IsSymmetric())
	assert.Equal(t, []int{2, 4, 4, 2, 4, 2}, fb.ColWeights())

	for i := 0; i < fb.Rows(); i++ {
		v, err := fb.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, gf2.Zero, v, "face-point self term is even, diagonal must be 0")
	}
}

// TestFaceCouplingBlock checks the three variants: each couples three of
// the six face points to the edge band with column counts [1,2,2,1], and
// the variants differ only in which face points carry the coupling.
func TestFaceCouplingBlock(t *testing.T) {
	rowWeights := map[intersect.AbsentPosition][]int{
		intersect.AbsentLowest:  {2, 2, 0, 2, 0, 0},
		intersect.AbsentMiddle:  {2, 0, 2, 0, 0, 2},
		intersect.AbsentHighest: {0, 0, 0, 2, 2, 2},
	}

	for pos, wantRows := range rowWeights {
		block, err := intersect.FaceCouplingBlock(pos)
		require.NoError(t, err, "variant %d", pos)
		require.Equal(t, simplex.FacePointCount, block.Rows())
		require.Equal(t, simplex.EdgePointCount, block.Cols())

		assert.Equal(t, []int{1, 2, 2, 1}, block.ColWeights(), "variant %d", pos)
		assert.Equal(t, wantRows, block.RowWeights(), "variant %d", pos)
	}

	_, err := intersect.FaceCouplingBlock(intersect.AbsentPosition(3))
	assert.ErrorIs(t, err, intersect.ErrBadVariant)
	_, err = intersect.FaceCouplingBlock(intersect.AbsentPosition(-1))
	assert.ErrorIs(t, err, intersect.ErrBadVariant)
}

// TestVertexToEdgeBlock checks the derived 5×40 block: every vertex meets
// its 4 incident edges at the near endpoint slot.
func TestVertexToEdgeBlock(t *testing.T) {
	block, err := intersect.VertexToEdgeBlock()
	require.NoError(t, err)
	require.Equal(t, simplex.NumLabels, block.Rows())
	require.Equal(t, intersect.EdgeRegionSize, block.Cols())

	assert.Equal(t, []int{4, 4, 4, 4, 4}, block.RowWeights())

	wantCols := make([]int, 0, intersect.EdgeRegionSize)
	for range simplex.Edges() {
		wantCols = append(wantCols, 1, 0, 0, 1)
	}
	assert.Equal(t, wantCols, block.ColWeights())

	// Spot-check endpoints: edge (2,5) sits at index 7, so L_2 meets its
	// point 1 and L_5 its point 4.
	idx, err := simplex.EdgeIndex(simplex.Edge{A: 2, B: 5})
	require.NoError(t, err)
	v, err := block.At(1, idx*simplex.EdgePointCount)
	require.NoError(t, err)
	assert.Equal(t, gf2.One, v, "L_2 · E¹_{2,5}")
	v, err = block.At(4, idx*simplex.EdgePointCount+3)
	require.NoError(t, err)
	assert.Equal(t, gf2.One, v, "L_5 · E⁴_{2,5}")
	v, err = block.At(2, idx*simplex.EdgePointCount)
	require.NoError(t, err)
	assert.Equal(t, gf2.Zero, v, "L_3 is not an endpoint of (2,5)")
}

// TestIdentityBlock checks the vertex-vertex region constant.
func TestIdentityBlock(t *testing.T) {
	block, err := intersect.IdentityBlock()
	require.NoError(t, err)
	assert.True(t, block.IsIdentity())
	assert.Equal(t, simplex.NumLabels, block.Rows())
}

// TestBlocks_FreshCopies verifies constructors hand out independent
// values: mutating one copy must not leak into the next.
func TestBlocks_FreshCopies(t *testing.T) {
	first := intersect.FaceBlock()
	require.NoError(t, first.Set(0, 0, gf2.One))

	second := intersect.FaceBlock()
	v, err := second.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, gf2.Zero, v, "block constants must not be shared state")
}
