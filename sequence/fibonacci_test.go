package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/sequence"
)

func TestFibonacci_Scenario(t *testing.T) {
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}, sequence.Fibonacci(10))
	assert.Equal(t, 55, sequence.FibRecursive(10))
	assert.Equal(t, 55, sequence.FibIter(10))
}

func TestFibonacci_Edges(t *testing.T) {
	for _, n := range []int{-5, -1, 0} {
		got := sequence.Fibonacci(n)
		assert.NotNil(t, got, "n=%d", n)
		assert.Empty(t, got, "n=%d", n)
	}
	assert.Equal(t, []int{0}, sequence.Fibonacci(1))
	assert.Equal(t, []int{0, 1}, sequence.Fibonacci(2))
}

// TestFibonacci_Recurrence checks length, seed terms and the recurrence,
// and that both point queries match the prefix.
func TestFibonacci_Recurrence(t *testing.T) {
	for n := 0; n <= 40; n++ {
		fib := sequence.Fibonacci(n)
		require.Len(t, fib, n)
		if n > 0 {
			assert.Equal(t, 0, fib[0])
		}
		if n > 1 {
			assert.Equal(t, 1, fib[1])
		}
		for i := 2; i < n; i++ {
			assert.Equal(t, fib[i-1]+fib[i-2], fib[i], "n=%d i=%d", n, i)
		}
	}

	prefix := sequence.Fibonacci(26)
	for i, want := range prefix {
		assert.Equal(t, want, sequence.FibRecursive(i), "FibRecursive(%d)", i)
		assert.Equal(t, want, sequence.FibIter(i), "FibIter(%d)", i)
	}
}
