// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Kernels return these
// sentinels (optionally wrapped with an operation tag) and tests match them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so logs can be grepped.
// Context is attached at the call site with fmt.Errorf("<op>: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> numeric policy -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) and SwapRows return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// rows of different length in SwapRows, Mul where a.Cols != b.Rows,
	// ragged input to NewDenseFromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Invert when the left block of the augmented
	// matrix leaves a column without a pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// errors.Is(err, ErrIndexOutOfBounds) and errors.Is(err, ErrOutOfRange) are equivalent.
var ErrIndexOutOfBounds = ErrOutOfRange
