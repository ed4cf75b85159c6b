// SPDX-License-Identifier: MIT

package samples

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gaussjordan/matrix"
)

var (
	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("samples: nil random source")

	// ErrInvalidBounds is returned for NaN/±Inf bounds or a non-positive maxDim.
	ErrInvalidBounds = errors.New("samples: invalid bounds")
)

// Random returns a rows×cols matrix with entries drawn uniformly from [lo, hi).
// The bounds may be given in either order. lo == hi yields a constant matrix.
//
// Errors: ErrNilSource, ErrInvalidBounds, matrix.ErrInvalidDimensions.
func Random(rng *rand.Rand, rows, cols int, lo, hi float64) (*matrix.Dense, error) {
	if rng == nil {
		return nil, ErrNilSource
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: [%g, %g)", ErrInvalidBounds, lo, hi)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("samples: random %dx%d: %w", rows, cols, err)
	}

	span := hi - lo
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = m.Set(i, j, lo+rng.Float64()*span); err != nil {
				return nil, fmt.Errorf("samples: random %dx%d: %w", rows, cols, err)
			}
		}
	}

	return m, nil
}

// RandomSquare draws n uniformly from 1..maxDim and returns an n×n Random matrix.
func RandomSquare(rng *rand.Rand, maxDim int, lo, hi float64) (*matrix.Dense, error) {
	if rng == nil {
		return nil, ErrNilSource
	}
	if maxDim <= 0 {
		return nil, fmt.Errorf("%w: maxDim %d", ErrInvalidBounds, maxDim)
	}
	n := rng.Intn(maxDim) + 1

	return Random(rng, n, n, lo, hi)
}
