// Package gaussjordan is a small, dependency-light toolkit for dense row
// reduction: reduced row-echelon form and Gauss-Jordan matrix inversion.
//
// What is inside:
//
//	matrix/            - Dense storage, SwapRows, ReduceEchelon, Invert/Inverse,
//	                     verification helpers and the gonum bridge
//	samples/           - fixed sample matrices and a seeded random generator
//	internal/logging/  - slog-backed Logger used by the command
//	cmd/gaussjordan/   - walkthrough CLI
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{4, 7.5}, {3, 13.799}})
//	if err := matrix.Invert(m); err != nil {
//		// matrix.ErrSingular or matrix.ErrNonSquare
//	}
//
// Pivoting is naive (first non-zero candidate) with exact zero comparison by
// default. It is not a general linear-algebra library: no LU/QR/SVD and no
// sparse storage.
//
//	go get github.com/katalvlaran/gaussjordan
package gaussjordan
