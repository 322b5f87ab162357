// SPDX-License-Identifier: MIT
// Package gf2: structural predicates and whole-matrix transforms.
// Tight loops operate on the flat row-major buffer directly; all traversal
// orders are fixed i→j for determinism.

package gf2

// Equal reports whether a and b have identical shape and entries.
// Complexity: O(r·c).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether m is square and equal to its transpose.
// Over GF(2) equality is exact; there is no epsilon policy.
// Complexity: O(r·c).
func (m *Dense) IsSymmetric() bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if m.data[i*m.c+j] != m.data[j*m.c+i] {
				return false
			}
		}
	}

	return true
}

// Transpose returns a new matrix with rows and columns exchanged.
// Complexity: O(r·c).
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]byte, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// IsZero reports whether every entry of m is 0.
// Complexity: O(r·c).
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != Zero {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is a square identity matrix.
// Complexity: O(r·c).
func (m *Dense) IsIdentity() bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			want := Zero
			if i == j {
				want = One
			}
			if m.data[i*m.c+j] != want {
				return false
			}
		}
	}

	return true
}

// RowWeights returns the number of non-zero entries in each row.
// Complexity: O(r·c).
func (m *Dense) RowWeights() []int {
	weights := make([]int, m.r)
	for i := 0; i < m.r; i++ {
		count := 0
		for j := 0; j < m.c; j++ {
			if m.data[i*m.c+j] != Zero {
				count++
			}
		}
		weights[i] = count
	}

	return weights
}

// ColWeights returns the number of non-zero entries in each column.
// Complexity: O(r·c).
func (m *Dense) ColWeights() []int {
	weights := make([]int, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.data[i*m.c+j] != Zero {
				weights[j]++
			}
		}
	}

	return weights
}
