// Package simplex enumerates the vertices, edges and triangular faces of
// the boundary of the 4-dimensional simplex on the label set {1..5}, in
// the fixed canonical orders the intersection-matrix assembly depends on.
//
// What:
//
//   - Edge — an ordered pair (A,B), A<B; exactly 10 of them.
//   - Face — an ordered triple (A,B,C), A<B<C; exactly 10 of them.
//   - Edges/Faces return the canonical enumerations; EdgeIndex/FaceIndex
//     map an object back to its 0-based position in them.
//   - Small pure predicates: Edge.Contains, Face.Contains, Face.Absent,
//     Face.Edges.
//
// Why:
//
//	Block placement in the intersection matrices addresses submatrix
//	offsets by *index position* in these enumerations, not by the label
//	values themselves. The orders are therefore part of the contract:
//
//	  Edges: for b in 1..5 { for a in 1..5 if a<b }  →
//	    (1,2),(1,3),(2,3),(1,4),(2,4),(3,4),(1,5),(2,5),(3,5),(4,5)
//	  Faces: for c in 1..5 { for b { for a if a<b<c }}  →
//	    (1,2,3),(1,2,4),(1,3,4),(2,3,4),(1,2,5),
//	    (1,3,5),(2,3,5),(1,4,5),(2,4,5),(3,4,5)
//
// Complexity:
//
//   - Edges, Faces: O(1) (copies of fixed 10-element tables).
//   - EdgeIndex, FaceIndex: O(1) table lookup.
//   - Predicates: O(1).
//
// Errors:
//
//   - ErrUnknownEdge: pair outside the canonical 10.
//   - ErrUnknownFace: triple outside the canonical 10.
//   - ErrEdgeNotInFace: Absent called with an edge not on the face.
//
// All operations are pure and deterministic; no map iteration anywhere.
package simplex
