// SPDX-License-Identifier: MIT

package samples

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// table holds the hardcoded sample matrices. Entry 2 is deliberately 5×4 so
// callers see ErrNonSquare from Invert.
var table = [][][]float64{
	{
		{4, 7.5},
		{3.0, 13.799},
	},
	{
		{4, 7.5, 13.244},
		{3.0, 13.799, 1.009},
		{4.7398, 140.1, 37.0001},
	},
	{
		{4, 7.5, 13.244, 5},
		{3.0, 13.799, 1.009, 42},
		{4.7398, 140.1, 37.0001, 399},
		{4, 7.5, 13.244, 24},
		{16, 29.1, 44, 7},
	},
	{
		{2, 11, 3, 9, 4},
		{5, 10, 12, 13, 14},
		{6, 8, 15, 16, 7},
		{17, 18, 19, 20, 21},
		{22, 23, 24, 25, 26},
	},
}

// echelonExample has a zero first row, a pivot for column 0 in row 1 and a
// lone entry in column 2.
var echelonExample = [][]float64{
	{0, 0, 0},
	{1, 0, 0},
	{0, 0, 3},
}

// Fixtures returns fresh copies of the sample matrices, in table order.
// Mutating a returned matrix never affects later calls.
func Fixtures() ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, 0, len(table))
	for i, rows := range table {
		m, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("samples: fixture %d: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// EchelonExample returns a fresh copy of the row-echelon walkthrough input.
func EchelonExample() *matrix.Dense {
	m, err := matrix.NewDenseFromRows(echelonExample)
	if err != nil {
		panic(err) // static literal; cannot fail
	}

	return m
}
