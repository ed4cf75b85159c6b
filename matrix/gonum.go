// SPDX-License-Identifier: MIT
// Package matrix: bridge to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand matrices to gonum for rendering (mat.Formatted) and for independent
//     cross-checks (mat.Dense.Inverse, mat.Det) without re-implementing them here.
//
// Notes:
//   - Both directions copy; no storage is shared with gonum.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if d, ok := m.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)

		return mat.NewDense(d.r, d.c, buf), nil
	}

	scratch, err := denseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(scratch.r, scratch.c, scratch.data), nil
}

// FromGonum copies any gonum matrix into a new *Dense, applying the numeric
// policy resolved from opts (NaN/±Inf rejected by default).
//
// Errors:
//   - ErrNilMatrix for a nil source (including typed-nil gonum pointers), ErrInvalidDimensions for an empty one,
//     ErrNaNInf under the default policy.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if isNilGonum(g) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := g.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	d.validateNaNInf = o.validateNaNInf

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = g.At(i, j)
			if d.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// isNilGonum catches a nil interface and the typed-nil pointers of gonum's
// concrete matrix types, whose Dims would panic.
func isNilGonum(g mat.Matrix) bool {
	switch t := g.(type) {
	case nil:
		return true
	case *mat.Dense:
		return t == nil
	case *mat.VecDense:
		return t == nil
	case *mat.SymDense:
		return t == nil
	case *mat.TriDense:
		return t == nil
	}

	return false
}
