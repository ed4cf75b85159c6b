// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks around row reduction.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity to build the expected result of A·A⁻¹ in checks.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity(m.Rows())
}

// Rank returns the number of pivot columns found by ReduceEchelon on a copy of m.
// The input is not mutated. Complexity: O(r*c*min(r,c)).
//
// AI-Hints: Rank(A) == A.Rows() is an O(n^3) invertibility probe for square A,
// using the same pivot tolerance Invert would use.
func Rank(m Matrix, opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)

	scratch, err := denseCopyOf(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(reduceDense(scratch, o.pivotTol)), nil
}
