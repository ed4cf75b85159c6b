// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumRoundTrip(t *testing.T) {
	a := fromRows(t, sample3)

	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	g.Set(0, 0, -1) // no shared storage
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	got, err := back.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, -1.0, got)

	viaGeneric, err := matrix.ToGonum(hide{a})
	require.NoError(t, err)
	require.True(t, mat.Equal(viaGeneric, mat.NewDense(3, 3, flatten(sample3))))
}

func TestFromGonum_Policy(t *testing.T) {
	g := mat.NewDense(1, 2, []float64{1, math.Inf(1)})

	_, err := matrix.FromGonum(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	d, err := matrix.FromGonum(g, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := d.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonum_TypedNil(t *testing.T) {
	var d *mat.Dense
	var v *mat.VecDense
	for _, g := range []mat.Matrix{d, v} {
		require.NotPanics(t, func() {
			_, err := matrix.FromGonum(g)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

// TestInverse_AgreesWithGonum cross-checks Gauss-Jordan against gonum's LU-based inverse.
func TestInverse_AgreesWithGonum(t *testing.T) {
	for _, rows := range [][][]float64{sample2, sample3, sample5} {
		a := fromRows(t, rows)

		ours, err := matrix.Inverse(a)
		require.NoError(t, err)

		g, err := matrix.ToGonum(a)
		require.NoError(t, err)
		require.NotZero(t, mat.Det(g))
		var ginv mat.Dense
		require.NoError(t, ginv.Inverse(g))

		theirs, err := matrix.FromGonum(&ginv)
		require.NoError(t, err)
		ok, err := matrix.AllClose(ours, theirs, 1e-8, 1e-10)
		require.NoError(t, err)
		require.Truef(t, ok, "ours:\n%v\ngonum:\n%v", ours, theirs)
	}
}

// TestRank_AgreesWithGonumDet: a zero determinant means rank < n.
func TestRank_AgreesWithGonumDet(t *testing.T) {
	singular := fromRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}})

	g, err := matrix.ToGonum(singular)
	require.NoError(t, err)
	require.InDelta(t, 0, mat.Det(g), 1e-12)

	rank, err := matrix.Rank(singular)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
}

func flatten(rows [][]float64) []float64 {
	out := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}
