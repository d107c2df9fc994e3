package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/numeric"
)

func TestGCD_Scenario(t *testing.T) {
	assert.Equal(t, 6, numeric.GCD(48, 18))
	assert.Equal(t, 6, numeric.GCDRecursive(48, 18))
}

func TestGCD_ZeroOperands(t *testing.T) {
	assert.Equal(t, 0, numeric.GCD(0, 0))
	assert.Equal(t, 0, numeric.GCDRecursive(0, 0))
	for _, a := range []int{1, 7, 42} {
		assert.Equal(t, a, numeric.GCD(a, 0), "GCD(%d, 0)", a)
		assert.Equal(t, a, numeric.GCD(0, a), "GCD(0, %d)", a)
		assert.Equal(t, a, numeric.GCDRecursive(a, 0), "GCDRecursive(%d, 0)", a)
	}
}

// TestGCD_DividesBoth exhaustively checks the divisor property and the
// agreement of both forms on a small grid.
func TestGCD_DividesBoth(t *testing.T) {
	for a := 0; a <= 60; a++ {
		for b := 0; b <= 60; b++ {
			if a == 0 && b == 0 {
				continue
			}
			g := numeric.GCD(a, b)
			require.Positive(t, g, "GCD(%d, %d)", a, b)
			assert.Zero(t, a%g, "GCD(%d, %d)=%d must divide a", a, b, g)
			assert.Zero(t, b%g, "GCD(%d, %d)=%d must divide b", a, b, g)
			assert.Equal(t, g, numeric.GCDRecursive(a, b), "forms disagree at (%d, %d)", a, b)
			// no larger common divisor exists
			for d := g + 1; d <= a || d <= b; d++ {
				if a%d == 0 && b%d == 0 {
					t.Fatalf("GCD(%d, %d)=%d but %d divides both", a, b, g, d)
				}
			}
		}
	}
}
