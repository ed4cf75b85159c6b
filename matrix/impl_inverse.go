// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan inversion on top of ReduceEchelon.
//
// Blueprint:
//
//	Stage 1 (Validate): m non-nil and square.
//	Stage 2 (Augment):  allocate [A | I] of shape n×2n.
//	Stage 3 (Reduce):   ReduceEchelon kernel on the augmented matrix.
//	Stage 4 (Check):    every column of the left block must own a pivot; else ErrSingular.
//	Stage 5 (Extract):  copy the right block back into m.
//
// Singularity and overflow are detected before Stage 5, so a failed Invert on a
// *Dense leaves m untouched.

package matrix

import "fmt"

// Invert replaces the square matrix m with its inverse, in place.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); resolve options.
//   - Stage 2: build aug = [m | I] as a fresh *Dense (local to this call).
//   - Stage 3: reduceDense(aug, tol) returns the pivot columns.
//   - Stage 4: pivots[k] must equal k for k < n; the first gap is reported.
//   - Stage 5: write aug[:, n:2n] into m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (with the first column lacking a pivot),
//     ErrNaNInf when the inverse overflows a *Dense that rejects non-finite values,
//     At/Set failures of non-*Dense implementations.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the augmented matrix.
//
// AI-Hints:
//   - Use Inverse when the input must stay intact.
//   - For nearly singular input pass WithPivotTolerance to get ErrSingular
//     instead of an inverse dominated by round-off.
func Invert(m Matrix, opts ...Option) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opInvert, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	aug, err := augmentWithIdentity(m)
	if err != nil {
		return matrixErrorf(opInvert, err)
	}

	pivots := reduceDense(aug, o.pivotTol)
	if col := firstMissingPivot(pivots, n); col >= 0 {
		return matrixErrorf(opInvert, fmt.Errorf("no pivot in column %d: %w", col, ErrSingular))
	}

	// Extract the right block.
	if d, ok := m.(*Dense); ok {
		if d.validateNaNInf {
			if err = findNonFinite(aug, n); err != nil {
				return matrixErrorf(opInvert, err)
			}
		}
		for i := 0; i < n; i++ {
			copy(d.rowSlice(i), aug.rowSlice(i)[n:])
		}

		return nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, aug.data[i*aug.c+n+j]); err != nil {
				return matrixErrorf(opInvert, err)
			}
		}
	}

	return nil
}

// Inverse returns A⁻¹ as a new matrix and leaves m unchanged.
// Thin wrapper: Clone → Invert.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	out := m.Clone()
	if err := Invert(out, opts...); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return out, nil
}

// augmentWithIdentity builds [m | I] for a square m. The numeric policy is
// off on the scratch buffer.
func augmentWithIdentity(m Matrix) (*Dense, error) {
	n := m.Rows()
	aug, err := NewDense(n, 2*n)
	if err != nil {
		return nil, err
	}
	aug.validateNaNInf = false

	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			copy(aug.rowSlice(i)[:n], d.rowSlice(i))
			aug.data[i*aug.c+n+i] = 1
		}

		return aug, nil
	}

	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			aug.data[i*aug.c+j] = v
		}
		aug.data[i*aug.c+n+i] = 1
	}

	return aug, nil
}

// firstMissingPivot returns the smallest column k < n without a pivot, or -1.
// pivots is ascending and duplicate-free, so the left block is complete
// exactly when pivots[k] == k for every k < n.
func firstMissingPivot(pivots []int, n int) int {
	for k := 0; k < n; k++ {
		if k >= len(pivots) || pivots[k] != k {
			return k
		}
	}

	return -1
}
