// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/Jason-buaa/AxisInterp/matrix"
)

// ExampleNewDenseFromRows copies a table body and reads a column back.
func ExampleNewDenseFromRows() {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 10},
		{20, 30},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	col, _ := m.Col(1, nil)
	fmt.Println(m.Rows(), m.Cols(), col)
	fmt.Print(m)
	// Output:
	// 2 2 [10 30]
	// [0, 10]
	// [20, 30]
}

// ExampleDense_Set shows the finite-value policy.
func ExampleDense_Set() {
	m, _ := matrix.NewDense(1, 1)
	err := m.Set(0, 0, math.NaN())
	fmt.Println(errors.Is(err, matrix.ErrNaNInf))
	fmt.Println(err)
	// Output:
	// true
	// Dense.Set(0,0): matrix: NaN or Inf encountered
}
