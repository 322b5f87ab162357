// Package intersect assembles the mod-2 triple intersection matrices of
// the toric divisor classes on the mirror quintic, verifies their
// structural invariants, and compares their GF(2) ranks.
//
// What:
//
//	The divisor classes are indexed by the lattice points on the boundary
//	of the 4-simplex over labels {1..5}: 4 interior points per edge
//	(40 classes E^l_{a,b}), 6 interior points per triangular face
//	(60 classes E^l_{a,b,c}) and one class L_i per vertex. Square is the
//	105×105 symmetric matrix with entry (X,Y) = X²·Y mod 2 in the basis
//	[edge points ×40][face points ×60][vertices ×5]; Square101 restricts
//	to the 100 exceptional classes and adjoins the hyperplane class H
//	with H³ = 1 and H²·D = 0 for every exceptional D.
//
// The 3×3 block layout of Square (regions named A–F):
//
//	        edges   faces  verts
//	      ┌  A      Bᵗ     Cᵗ ┐      A 40×40   B 60×40   C 5×40
//	      │  B      D      Eᵗ │      D 60×60   E 5×60 (zero)
//	      └  C      E      F  ┘      F 5×5 (identity)
//
// Each region is built as an independent immutable value from a small
// library of constant blocks and the canonical enumerations of package
// simplex, then composed by BuildSquare in one pass; nothing mutates a
// region after placement except the symmetric mirror of the placement
// itself.
//
// Why verify:
//
//	The block constants transcribe intersection numbers from a published
//	reference. The per-row/column non-zero counts of every region are
//	algebraic consequences of the intersection theory, so Verify recomputes
//	them (plus symmetry) as redundant cross-checks against transcription
//	error. Checks are diagnostic, never fatal: every check runs, all
//	results are reported, and both ranks are computed regardless.
//
// Complexity:
//
//   - BuildSquare/BuildSquare101: O(1) — fixed 105×105 universe.
//   - Verify: O(n²) scans plus two O(n³) GF(2) rank computations.
//
// See examples/ at the repository root for a runnable report.
package intersect
