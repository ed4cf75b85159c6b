// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances for floating-point comparisons in inversion checks.
const (
	rtolInv = 1e-9
	atolInv = 1e-9
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Kernels then take the generic At/Set path instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fromRows builds a *Dense from a literal or fails the test.
func fromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// fillDenseRand fills m with values in [-1,1) from a seeded source.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// randomInvertible returns an n×n strictly diagonally dominant matrix,
// which is always invertible.
func randomInvertible(tb testing.TB, rng *rand.Rand, n int) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*20 - 10
			if i == j {
				v += float64(n) * 20
			}
			require.NoError(tb, m.Set(i, j, v))
		}
	}

	return m
}

// requireIdentityProduct asserts a·inv ≈ I within the inversion tolerances.
func requireIdentityProduct(tb testing.TB, a, inv matrix.Matrix) {
	tb.Helper()
	prod, err := matrix.Mul(a, inv)
	require.NoError(tb, err)
	I, err := matrix.IdentityLike(a)
	require.NoError(tb, err)
	ok, err := matrix.AllClose(prod, I, rtolInv, atolInv)
	require.NoError(tb, err)
	require.Truef(tb, ok, "A·A⁻¹ is not the identity:\n%v", prod)
}

// Sample matrices shared by inversion tests (all invertible).
var (
	sample2 = [][]float64{
		{4, 7.5},
		{3.0, 13.799},
	}
	sample3 = [][]float64{
		{4, 7.5, 13.244},
		{3.0, 13.799, 1.009},
		{4.7398, 140.1, 37.0001},
	}
	sample5 = [][]float64{
		{2, 11, 3, 9, 4},
		{5, 10, 12, 13, 14},
		{6, 8, 15, 16, 7},
		{17, 18, 19, 20, 21},
		{22, 23, 24, 25, 26},
	}
)
