// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", mustDense(t, 2, 3), mustDense(t, 2, 3), nil},
		{"row mismatch", mustDense(t, 2, 3), mustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", mustDense(t, 2, 3), mustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquareNonNil(mustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(mustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
}

func TestValidateSameCols(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSameCols(mustDense(t, 1, 4), mustDense(t, 7, 4)))
	require.ErrorIs(t, matrix.ValidateSameCols(mustDense(t, 2, 2), mustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateRowIndex(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 3, 1)
	require.NoError(t, matrix.ValidateRowIndex(m, 0))
	require.NoError(t, matrix.ValidateRowIndex(m, 2))
	require.ErrorIs(t, matrix.ValidateRowIndex(m, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRowIndex(m, -1), matrix.ErrIndexOutOfBounds)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(mustDense(t, 2, 3), mustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(mustDense(t, 2, 3), mustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, mustDense(t, 1, 1)), matrix.ErrNilMatrix)
}
