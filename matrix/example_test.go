package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// ExampleReduceEchelon shows zero rows sinking below the pivot rows.
func ExampleReduceEchelon() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 3},
	})
	_ = matrix.ReduceEchelon(m)
	fmt.Print(m)

	// Output:
	// [1, 0, 0]
	// [0, 0, 1]
	// [0, 0, 0]
}

// ExampleInvert inverts a permutation-scaled matrix in place.
func ExampleInvert() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 2},
		{4, 0},
	})
	if err := matrix.Invert(m); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)

	// Output:
	// [0, 0.25]
	// [0.5, 0]
}

// ExampleInvert_singular shows the explicit failure on a singular input.
func ExampleInvert_singular() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{2, 4},
	})
	err := matrix.Invert(m)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	fmt.Println(err)

	// Output:
	// true
	// Invert: no pivot in column 1: matrix: singular matrix
}
