// SPDX-License-Identifier: MIT
// Package matrix: row operations and Gauss-Jordan reduction.
//
// Purpose:
//   - SwapRows: exchange one row of a matrix with one row of another (or the same) matrix.
//   - ReduceEchelon: in-place reduction to reduced row-echelon form.
//
// Determinism:
//   - Columns are swept left to right; the pivot is the FIRST candidate row
//     whose entry is non-zero (no magnitude-based selection). For a given input
//     and tolerance the sequence of row operations is fixed.
//
// Notes:
//   - Shape is never changed; only element values are rewritten.
//   - Non-*Dense matrices are reduced through a *Dense scratch copy and written
//     back with Set, so all arithmetic happens in one kernel.

package matrix

import "fmt"

// SwapRows exchanges row ra of a with row rb of b, element by element.
// Implementation:
//   - Stage 1: nil checks, column-count check, index checks (no mutation yet).
//   - Stage 2: *Dense pair → swap contiguous sub-slices in place.
//   - Stage 3: otherwise read both rows via At, then write them crosswise via Set.
//
// Behavior highlights:
//   - a and b may be the same matrix; this is the ordinary in-place row swap.
//   - Swapping a row with itself is a no-op.
//   - Row counts of a and b may differ; only the column counts must match.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Cols), ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1) for *Dense, O(c) for the generic path.
func SwapRows(a, b Matrix, ra, rb int) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateSameCols(a, b); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(a, ra); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(b, rb); err != nil {
		return matrixErrorf(opSwapRows, err)
	}

	// Fast path: two *Dense operands share the flat layout.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			swapDenseRows(da, db, ra, rb)

			return nil
		}
	}

	// Generic path: snapshot both rows before writing either one. A self-swap
	// writes each value back unchanged. Interface operands are never compared,
	// since their dynamic types need not be comparable.
	cols := a.Cols()
	rowA := make([]float64, cols)
	rowB := make([]float64, cols)
	var err error
	for j := 0; j < cols; j++ {
		if rowA[j], err = a.At(ra, j); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
		if rowB[j], err = b.At(rb, j); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
	}
	for j := 0; j < cols; j++ {
		if err = a.Set(ra, j, rowB[j]); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
		if err = b.Set(rb, j, rowA[j]); err != nil {
			return matrixErrorf(opSwapRows, err)
		}
	}

	return nil
}

// swapDenseRows swaps rows without validation. Indices must be in range and
// a.c == b.c.
func swapDenseRows(a, b *Dense, ra, rb int) {
	if a == b && ra == rb {
		return
	}
	x, y := a.rowSlice(ra), b.rowSlice(rb)
	for j := range x {
		x[j], y[j] = y[j], x[j]
	}
}

// ReduceEchelon reduces m in place to reduced row-echelon form (Gauss-Jordan).
// Implementation:
//   - Stage 1: ValidateNotNil(m); resolve options (pivot tolerance).
//   - Stage 2: for each column left to right, while unfilled rows remain:
//     find the first row at or below the current lead row with a non-zero
//     entry; swap it up; scale it so the pivot is 1; subtract multiples of it
//     from every other row (above and below) to clear the column.
//   - Stage 3: columns with no candidate are left as they are.
//
// Behavior highlights:
//   - Rectangular input is valid; all-zero input is returned unchanged.
//   - Idempotent: reducing an already reduced matrix changes nothing.
//   - Zero rows sink to the bottom.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when a *Dense with the finite-value policy on
//     would overflow (m is left unchanged); At/Set failures of non-*Dense
//     implementations.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(1) for *Dense without the finite-value
//     policy, O(r*c) otherwise.
//
// AI-Hints:
//   - Use WithPivotTolerance for data where round-off leaves tiny residues
//     that should not become pivots.
func ReduceEchelon(m Matrix, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opReduce, err)
	}
	o := gatherOptions(opts...)

	if _, err := reduceEchelon(m, o.pivotTol); err != nil {
		return matrixErrorf(opReduce, err)
	}

	return nil
}

// reduceEchelon dispatches to the *Dense kernel, staging non-Dense input
// through a scratch copy. It returns the pivot columns in ascending order.
func reduceEchelon(m Matrix, tol float64) ([]int, error) {
	if d, ok := m.(*Dense); ok {
		if !d.validateNaNInf {
			return reduceDense(d, tol), nil
		}
		// Reduce a copy so an overflow leaves d untouched.
		scratch := &Dense{r: d.r, c: d.c, data: append([]float64(nil), d.data...)}
		pivots := reduceDense(scratch, tol)
		if err := findNonFinite(scratch, 0); err != nil {
			return nil, err
		}
		copy(d.data, scratch.data)

		return pivots, nil
	}

	scratch, err := denseCopyOf(m)
	if err != nil {
		return nil, err
	}
	pivots := reduceDense(scratch, tol)
	if err = writeBack(m, scratch); err != nil {
		return nil, err
	}

	return pivots, nil
}

// reduceDense is the Gauss-Jordan kernel on the flat buffer.
// Pivot column k (k-th entry of the result) ends up as row k.
func reduceDense(d *Dense, tol float64) []int {
	r, c := d.r, d.c
	pivots := make([]int, 0, min(r, c))

	var (
		lead, col, row, i, j, p int
		pivot, f                float64
		leadRow, cur            []float64
	)
	for col = 0; col < c && lead < r; col++ {
		// First non-zero entry at or below the lead row.
		p = -1
		for row = lead; row < r; row++ {
			if !isZero(d.data[row*c+col], tol) {
				p = row
				break
			}
		}
		if p < 0 {
			continue // no pivot in this column
		}
		if p != lead {
			swapDenseRows(d, d, p, lead)
		}

		// Normalize the pivot row so the pivot becomes exactly 1.
		leadRow = d.rowSlice(lead)
		pivot = leadRow[col]
		for j = 0; j < c; j++ {
			leadRow[j] /= pivot
		}
		leadRow[col] = 1

		// Clear the column above and below the pivot.
		for i = 0; i < r; i++ {
			if i == lead {
				continue
			}
			cur = d.rowSlice(i)
			f = cur[col]
			if f == 0 {
				continue
			}
			if isZero(f, tol) {
				cur[col] = 0 // flush residue below tolerance
				continue
			}
			for j = 0; j < c; j++ {
				cur[j] -= f * leadRow[j]
			}
			cur[col] = 0
		}

		pivots = append(pivots, col)
		lead++
	}

	return pivots
}

// denseCopyOf materializes any Matrix as a *Dense (numeric policy off so the
// copy accepts whatever the source holds).
func denseCopyOf(m Matrix) (*Dense, error) {
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	d.validateNaNInf = false

	var v float64
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("read (%d,%d): %w", i, j, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// writeBack copies src into dst element by element via dst.Set.
// Shapes must match.
func writeBack(dst Matrix, src *Dense) error {
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			if err := dst.Set(i, j, src.data[i*src.c+j]); err != nil {
				return fmt.Errorf("write (%d,%d): %w", i, j, err)
			}
		}
	}

	return nil
}
