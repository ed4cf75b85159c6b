// Package matrix implements dense row reduction: reduced row-echelon form
// via Gauss-Jordan elimination, and matrix inversion built on top of it.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - SwapRows, the shared row-exchange primitive (same or different matrices).
//   - ReduceEchelon, in-place reduction of any R×C matrix.
//   - Invert / Inverse, Gauss-Jordan inversion of a square matrix through the
//     augmented matrix [A | I], failing with ErrSingular or ErrNonSquare.
//   - Mul, AllClose, NewIdentity and Rank for verification.
//   - ToGonum / FromGonum for exchange with gonum.org/v1/gonum/mat.
//
// Pivoting is naive: the first non-zero candidate in a column is taken.
// Exact comparison against zero is the default; WithPivotTolerance relaxes it.
//
// Kernels hold no package-level state, so calls on disjoint matrices may run
// concurrently. Calls that share a matrix need external locking.
package matrix
