// Package gf2 provides dense matrices over the two-element field GF(2),
// with safe accessors, structural predicates and Gaussian-elimination rank.
//
// What:
//
//   - Dense — a row-major matrix of bits (one byte per entry, values 0/1).
//   - Bounds-checked At/Set returning sentinel errors, never panicking.
//   - Insert/InsertSym — block placement, the assembly primitive for
//     composing large symmetric matrices from small constant blocks.
//   - Submatrix — copy-based extraction of a rectangular window.
//   - IsSymmetric, Equal, Transpose, RowWeights, ColWeights.
//   - Rank — row reduction over GF(2): addition is XOR, so there are no
//     pivoting or stability concerns; any non-zero pivot is exact.
//
// Why:
//
//	Intersection numbers mod 2 need exact field arithmetic. Generic
//	float or int matrices with manual mod-2 reduction invite transcription
//	bugs; a dedicated bit-matrix type keeps the algebra honest and the
//	invariant checks (symmetry, row/column weights) one call away.
//
// Complexity:
//
//   - At/Set: O(1); Clone/Equal/Transpose: O(r·c).
//   - Insert/Submatrix: O(h·w) for the block window.
//   - RowWeights/ColWeights: O(r·c).
//   - Rank: O(r·c·min(r,c)) bit operations.
//
// Errors:
//
//   - ErrBadShape: non-positive construction dimensions.
//   - ErrOutOfRange: index or window outside the matrix.
//   - ErrBadBit: a value other than 0 or 1.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNilMatrix: nil receiver or operand.
//
// Determinism: fixed i→j loop orders everywhere; no map iteration.
package gf2
