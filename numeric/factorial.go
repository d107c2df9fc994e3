package numeric

// Factorial returns n! computed by the direct recurrence n! = n·(n-1)!.
//
// Contract:
//   - n < 0   → Undefined (-1)
//   - n <= 1  → 1
//   - n >= 2  → 1·2·…·n
//
// Results are exact for n <= MaxFactorialInput; beyond that the int64
// product overflows and the value is unspecified.
//
// Complexity: Time O(n), Memory O(n) (recursion depth).
func Factorial(n int) int64 {
	if n < 0 {
		return Undefined
	}
	if n <= 1 {
		return 1
	}

	return int64(n) * Factorial(n-1)
}

// FactorialIter returns n! as the iterative product 2·3·…·n.
// It agrees with Factorial on every input.
//
// Complexity: Time O(n), Memory O(1).
func FactorialIter(n int) int64 {
	if n < 0 {
		return Undefined
	}

	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i) // accumulate product
	}

	return result
}
