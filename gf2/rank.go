// SPDX-License-Identifier: MIT
// Package gf2: rank via Gaussian elimination over the two-element field.

package gf2

// Rank computes the rank of m over GF(2) by row reduction.
//
// Algorithm Outline:
//  1. Work on a clone; m itself is never mutated.
//  2. For each column, search rows below the current pivot row for a 1.
//  3. Swap that row up, then XOR it into every other row holding a 1 in
//     the pivot column (Gauss–Jordan; over GF(2) the multiplier is
//     always 1, so elimination is a plain XOR of row slices).
//  4. The number of pivots found is the rank.
//
// There are no fraction or rounding concerns: every non-zero entry is a
// unit, so any 1 is a valid pivot.
//
// Complexity: O(r·c·min(r,c)) bit operations, O(r·c) extra memory.
func (m *Dense) Rank() int {
	work := m.Clone()
	rank := 0

	for col := 0; col < work.c && rank < work.r; col++ {
		// Pivot search: first non-zero entry at or below row `rank`.
		pivot := -1
		for row := rank; row < work.r; row++ {
			if work.data[row*work.c+col] != Zero {
				pivot = row

				break
			}
		}
		if pivot < 0 {
			continue // column is already clear below the pivot row
		}

		work.swapRows(rank, pivot)

		// Clear every other 1 in this column with a row XOR.
		for row := 0; row < work.r; row++ {
			if row != rank && work.data[row*work.c+col] != Zero {
				work.xorRows(row, rank)
			}
		}
		rank++
	}

	return rank
}

// swapRows exchanges rows i and j in place. Complexity: O(c).
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// xorRows adds (XOR) row src into row dst in place. Complexity: O(c).
func (m *Dense) xorRows(dst, src int) {
	rd := m.data[dst*m.c : (dst+1)*m.c]
	rs := m.data[src*m.c : (src+1)*m.c]
	for k := 0; k < m.c; k++ {
		rd[k] ^= rs[k]
	}
}
