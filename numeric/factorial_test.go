package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlearn/numeric"
)

func TestFactorial_Known(t *testing.T) {
	cases := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeric.Factorial(tc.n), "Factorial(%d)", tc.n)
		assert.Equal(t, tc.want, numeric.FactorialIter(tc.n), "FactorialIter(%d)", tc.n)
	}
}

func TestFactorial_Negative(t *testing.T) {
	for _, n := range []int{-1, -3, -100} {
		assert.Equal(t, numeric.Undefined, numeric.Factorial(n))
		assert.Equal(t, numeric.Undefined, numeric.FactorialIter(n))
	}
}

// TestFactorial_FormsAgree checks both formulations against a running
// product for every input whose result fits in int64.
func TestFactorial_FormsAgree(t *testing.T) {
	want := int64(1)
	for n := 0; n <= numeric.MaxFactorialInput; n++ {
		if n > 1 {
			want *= int64(n)
		}
		assert.Equal(t, want, numeric.Factorial(n), "recursive n=%d", n)
		assert.Equal(t, numeric.Factorial(n), numeric.FactorialIter(n), "forms disagree at n=%d", n)
	}
}
