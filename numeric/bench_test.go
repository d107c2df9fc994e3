package numeric_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/numeric"
)

// BenchmarkFactorial compares the recursive and iterative forms at n=20.
func BenchmarkFactorial(b *testing.B) {
	b.Run("recursive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = numeric.Factorial(numeric.MaxFactorialInput)
		}
	})
	b.Run("iterative", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = numeric.FactorialIter(numeric.MaxFactorialInput)
		}
	})
}

// BenchmarkCountPrimes_10000 counts primes below 10^4 by trial division.
func BenchmarkCountPrimes_10000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = numeric.CountPrimes(10000)
	}
}

// BenchmarkSieve_10000 builds the reference table for the same range.
func BenchmarkSieve_10000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = numeric.Sieve(10000)
	}
}
