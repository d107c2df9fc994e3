// Package numeric implements the classic integer routines every
// introductory course starts with: factorial, greatest common divisor
// and primality by trial division.
//
// What:
//
//   - Factorial / FactorialIter: n! by direct recurrence and by an
//     iterative product. Both return -1 for negative n.
//   - GCD / GCDRecursive: Euclid's algorithm, iterative and tail-recursive.
//   - IsPrime: trial division by odd candidates up to ⌊√n⌋.
//   - Sieve / CountPrimes: Eratosthenes table and a prime counter, handy
//     as a reference oracle for IsPrime.
//   - Divide: float division that reports ErrDivisionByZero.
//
// Why:
//
//   - Every formulation ships in two shapes (recursive and iterative) so
//     the two can be checked against each other.
//   - Failures are reported in-band (sentinel -1) exactly like the
//     templates learners copy from; only Divide uses a Go error.
//
// Complexity:
//
//   - Factorial, FactorialIter: Time O(n), Memory O(n) / O(1)
//   - GCD, GCDRecursive:        Time O(log min(a,b))
//   - IsPrime:                  Time O(√n), Memory O(1)
//   - Sieve:                    Time O(n log log n), Memory O(n)
//
// Errors:
//
//   - ErrDivisionByZero  divisor is zero in Divide
package numeric
