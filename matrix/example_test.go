package matrix_test

import (
	"fmt"

	"github.com/kepler123/cachematrix/matrix"
)

// ExampleInverse inverts a 2×2 matrix and prints it row by row.
func ExampleInverse() {
	A, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})
	inv, err := matrix.Inverse(A)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(inv)

	// Output:
	// [0.5, 0]
	// [0, 0.25]
}

// ExampleInverse_singular shows the sentinel returned for a singular input.
func ExampleInverse_singular() {
	A, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(A)
	fmt.Println(err)

	// Output:
	// Inverse: zero pivot in column 1: matrix: singular matrix
}
