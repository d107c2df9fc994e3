package sequence

// Fibonacci returns the first n Fibonacci numbers F0=0, F1=1, Fi=Fi-1+Fi-2.
//
//   - n <= 0 → empty (non-nil) slice
//   - n == 1 → [0]
//   - n >= 2 → [0 1 1 2 …] of length n
//
// Complexity: Time O(n), Memory O(n).
func Fibonacci(n int) []int {
	if n <= 0 {
		return []int{}
	}

	fib := make([]int, 0, n)
	fib = append(fib, 0)
	if n == 1 {
		return fib
	}

	fib = append(fib, 1)
	for i := 2; i < n; i++ {
		fib = append(fib, fib[i-1]+fib[i-2])
	}

	return fib
}

// FibRecursive returns F(n) by the direct double recursion
// F(n) = F(n-1) + F(n-2), with F(n) = n for n <= 1.
//
// Running time is exponential in n; prefer FibIter outside of teaching.
func FibRecursive(n int) int {
	if n <= 1 {
		return n
	}

	return FibRecursive(n-1) + FibRecursive(n-2)
}

// FibIter returns F(n) in linear time with two running terms.
// It agrees with FibRecursive on every input.
func FibIter(n int) int {
	if n <= 1 {
		return n
	}

	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b
}
