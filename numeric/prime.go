package numeric

// IsPrime reports whether n is prime.
//
// Algorithm:
//  1. Reject n < 2.
//  2. Accept 2.
//  3. Reject every other even n.
//  4. Try odd divisors i = 3, 5, 7, … while i*i <= n.
//
// A composite n always has a factor no larger than ⌊√n⌋, so step 4 is
// exhaustive. The bound is checked in integers to avoid float rounding
// near large squares.
//
// Complexity: Time O(√n), Memory O(1).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	for i := 3; i <= n/i; i += 2 { // i <= n/i is i*i <= n without overflow
		if n%i == 0 {
			return false
		}
	}

	return true
}

// Sieve returns a table of length limit+1 where table[i] reports whether i
// is prime (sieve of Eratosthenes). A negative limit yields an empty table.
//
// Complexity: Time O(n log log n), Memory O(n).
func Sieve(limit int) []bool {
	if limit < 0 {
		return []bool{}
	}

	table := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		table[i] = true
	}
	for p := 2; p <= limit/p; p++ {
		if !table[p] {
			continue
		}
		for m := p * p; m <= limit; m += p {
			table[m] = false // strike multiples
		}
	}

	return table
}

// CountPrimes returns the number of primes in [2, limit].
func CountPrimes(limit int) int {
	count := 0
	for n := 2; n <= limit; n++ {
		if IsPrime(n) {
			count++
		}
	}

	return count
}
