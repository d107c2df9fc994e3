package numeric

// GCD returns the greatest common divisor of a and b by Euclid's algorithm.
//
// Algorithm:
//  1. While b != 0, replace (a, b) with (b, a mod b).
//  2. Return a.
//
// GCD(a, 0) = a and GCD(0, 0) = 0. Callers pass non-negative integers;
// the result for negative input is not defined.
//
// Complexity: Time O(log min(a, b)), Memory O(1).
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// GCDRecursive is the tail-recursive form of GCD with the same invariant
// gcd(a, b) = gcd(b, a mod b).
func GCDRecursive(a, b int) int {
	if b == 0 {
		return a
	}

	return GCDRecursive(b, a%b)
}
