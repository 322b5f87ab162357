// Package quintic computes the triple intersection numbers, mod 2, of the
// toric divisor classes on the mirror quintic Calabi–Yau threefold, and
// cross-checks the GF(2) rank of the resulting intersection matrices.
//
// 🚀 What is quintic?
//
//	A small, deterministic library that assembles two symmetric matrices
//	over the two-element field from the combinatorics of the boundary of
//	a 4-simplex:
//		• Square    — 105×105, indexed by the 40 edge-point, 60 face-point
//		              and 5 vertex divisor classes; entry (X,Y) = X²·Y mod 2
//		• Square101 — 101×101, the 100 exceptional classes plus the
//		              hyperplane class H
//	and then verifies their structural invariants and compares their ranks.
//
// ✨ Why choose quintic?
//
//   - Exact – GF(2) arithmetic only, no floating point, no rounding
//   - Deterministic – fixed enumeration orders, no map iteration
//   - Self-checking – every submatrix carries redundant count invariants
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	simplex/   — canonical edge/face enumerations of the boundary simplex
//	gf2/       — dense GF(2) matrices: safe accessors, weights, rank
//	intersect/ — block library, matrix assembly, verification, rank report
//
// Quick ASCII picture of the Square block layout:
//
//	        edges   faces  verts
//	      ┌  A      Bᵗ     Cᵗ ┐
//	      │  B      D      Eᵗ │
//	      └  C      E      F  ┘
//
// Dive into intersect/doc.go for the geometry and examples/ for a runnable
// report.
package quintic
