package sequence_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/sequence"
)

// sortedInts returns [0, 2, 4, …] of length n.
func sortedInts(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = 2 * i
	}

	return s
}

// BenchmarkSearch_100000 contrasts linear and binary search for a miss.
func BenchmarkSearch_100000(b *testing.B) {
	s := sortedInts(100000)
	b.ResetTimer()
	b.Run("linear", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = sequence.LinearSearch(s, 1)
		}
	})
	b.Run("binary", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = sequence.BinarySearch(s, 1)
		}
	})
}

// BenchmarkFib_25 contrasts the exponential and linear point queries.
func BenchmarkFib_25(b *testing.B) {
	b.Run("recursive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = sequence.FibRecursive(25)
		}
	})
	b.Run("iterative", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = sequence.FibIter(25)
		}
	})
}
